package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Vladislav-tech/cryptolive/config"
	"github.com/Vladislav-tech/cryptolive/internal/favorites"
	"github.com/Vladislav-tech/cryptolive/internal/stream"
	"github.com/Vladislav-tech/cryptolive/internal/ticker"
	"github.com/Vladislav-tech/cryptolive/pkg/binance"
	"github.com/Vladislav-tech/cryptolive/pkg/localstore"
	"github.com/Vladislav-tech/cryptolive/pkg/storage/postgres"

	"go.uber.org/zap"
)

// Collector owns one ingestion pipeline: a ticker stream for a fixed symbol
// set, the coalescer in front of the snapshot store, and the favorites
// manager. Its lifecycle is 1:1 with the connection's: Stop tears everything
// down, and a new symbol set means a new Collector.
type Collector struct {
	store     *ticker.Store
	coalescer *ticker.Coalescer
	ws        *binance.WSClient
	favorites *favorites.Manager
	logger    *zap.Logger

	mu      sync.Mutex
	status  binance.Status
	stopped bool
	done    chan struct{}
}

// Start builds and launches the pipeline: favorites backend, REST snapshot
// bootstrap, then the WebSocket stream.
func Start(cfg *config.Config, logger *zap.Logger) (*Collector, error) {
	manager, err := buildFavorites(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("favorites backend: %w", err)
	}

	store := ticker.NewStore()
	coalescer := ticker.NewCoalescer(store, cfg.Binance.WS.FlushDelay, logger)

	symbols := cfg.Binance.WS.Symbols
	if len(symbols) == 0 {
		symbols = binance.DefaultSymbols
	}

	// Seed the store from REST so the list isn't empty while the first
	// stream updates trickle in. Failure is non-fatal.
	restClient := binance.NewRESTClient(cfg.Binance.REST.BaseURL, cfg.Binance.REST.Timeout)
	bootstrap(restClient, store, symbols, cfg.Binance.REST.Timeout, logger)

	c := &Collector{
		store:     store,
		coalescer: coalescer,
		favorites: manager,
		logger:    logger,
		done:      make(chan struct{}),
	}

	wsClient := binance.NewWSClient(cfg.Binance.WS.URL, symbols, logger)
	wsClient.SetMessageHandler(stream.MakeMessageHandler(logger, coalescer))
	wsClient.SetStatusHandler(func(st binance.Status) {
		c.mu.Lock()
		c.status = st
		c.mu.Unlock()
	})
	c.ws = wsClient

	if err := wsClient.Connect(); err != nil {
		coalescer.Stop()
		return nil, err
	}
	go wsClient.Listen()

	// Periodically log tracked symbol count for visibility.
	go func() {
		tick := time.NewTicker(5 * time.Second)
		defer tick.Stop()
		for {
			select {
			case <-c.done:
				return
			case <-tick.C:
				logger.Info("tracked symbols",
					zap.Int("count", store.Len()),
					zap.Int("pending", coalescer.PendingCount()))
			}
		}
	}()

	return c, nil
}

// Store returns the snapshot store. Consumers read derived lists only.
func (c *Collector) Store() *ticker.Store {
	return c.store
}

// Favorites returns the favorites manager.
func (c *Collector) Favorites() *favorites.Manager {
	return c.favorites
}

// Status returns the last known connection state. On a transport fault the
// store keeps its last snapshots; only this flag goes down.
func (c *Collector) Status() binance.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Stop tears the pipeline down: the pending flush timer is cancelled before
// the socket closes, so nothing flushes into a dying store. Stop is
// idempotent.
func (c *Collector) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	c.mu.Unlock()

	close(c.done)
	c.coalescer.Stop()
	if err := c.ws.Close(); err != nil {
		c.logger.Warn("failed to close WebSocket", zap.Error(err))
	}
}

func buildFavorites(cfg *config.Config, logger *zap.Logger) (*favorites.Manager, error) {
	switch cfg.Favorites.Backend {
	case "postgres":
		client, err := postgres.InitializeAndMigrateFavoriteRecord(cfg.Postgres, cfg.Log.Environment, true)
		if err != nil {
			return nil, err
		}
		return favorites.NewManager(favorites.NewPostgresBackend(client), logger), nil
	case "memory":
		return favorites.NewManager(favorites.NewMemoryBackend(), logger), nil
	default:
		store, err := localstore.Open(cfg.Favorites.Path)
		if err != nil {
			return nil, err
		}
		return favorites.NewManager(favorites.NewLocalBackend(store), logger), nil
	}
}

func bootstrap(restClient *binance.RESTClient, store *ticker.Store,
	symbols []string, timeout time.Duration, logger *zap.Logger) {

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	tickers, err := restClient.Get24hTickers(ctx, symbols)
	if err != nil {
		logger.Warn("failed to bootstrap snapshots from REST", zap.Error(err))
		return
	}

	now := time.Now()
	updates := make(map[string]ticker.Snapshot, len(tickers))
	for _, t := range tickers {
		snap := ticker.FromTicker24h(t, now)
		updates[snap.Symbol] = snap
	}
	store.Merge(updates)
	logger.Info("bootstrapped snapshots", zap.Int("count", len(updates)))
}
