package ticker

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultFlushDelay is the coalescing window applied when none is configured.
const DefaultFlushDelay = 50 * time.Millisecond

type flushState int

const (
	stateIdle flushState = iota
	stateBuffering
	stateFlushing
)

// Coalescer bounds the rate at which raw stream updates become store merges.
// A 20-symbol ticker feed can emit several messages per symbol per second;
// committing each one individually would trigger excessive downstream work.
//
// Policy: debounce, not throttle. Every buffered update reschedules the single
// shared flush timer, so under sustained arrival faster than the window the
// flush is pushed out until a gap appears. That starvation is accepted in
// exchange for burst suppression.
//
// Within one window the last update per symbol wins; windows are strictly
// ordered because buffering and flushing are serialized on one mutex.
type Coalescer struct {
	mu      sync.Mutex
	pending map[string]Snapshot
	timer   *time.Timer
	delay   time.Duration
	store   *Store
	state   flushState
	stopped bool
	logger  *zap.Logger
}

func NewCoalescer(store *Store, delay time.Duration, logger *zap.Logger) *Coalescer {
	if delay <= 0 {
		delay = DefaultFlushDelay
	}
	return &Coalescer{
		pending: make(map[string]Snapshot),
		delay:   delay,
		store:   store,
		state:   stateIdle,
		logger:  logger,
	}
}

// Put buffers one decoded snapshot, overwriting any pending update for the
// same symbol, and restarts the flush timer.
func (c *Coalescer) Put(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}

	c.pending[snap.Symbol] = snap
	c.state = stateBuffering

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.flush)
}

// flush commits every buffered update as a single merge and clears the
// buffer. Flushing an empty buffer is a no-op.
func (c *Coalescer) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timer = nil
	if c.stopped || len(c.pending) == 0 {
		c.state = stateIdle
		return
	}

	c.state = stateFlushing
	c.store.Merge(c.pending)
	c.logger.Debug("flushed pending updates", zap.Int("count", len(c.pending)))

	c.pending = make(map[string]Snapshot)
	c.state = stateIdle
}

// Stop cancels any pending flush and discards buffered updates. A stopped
// coalescer ignores further Put calls, so nothing can flush into a store
// that is being torn down.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = make(map[string]Snapshot)
	c.state = stateIdle
}

// PendingCount returns the number of buffered, not-yet-committed updates.
func (c *Coalescer) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
