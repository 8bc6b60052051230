package binance

import (
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Status describes the connection state as seen by the owner. A successful
// connect clears any prior error; an error or close marks the feed down while
// previously ingested data stays available.
type Status struct {
	Connected bool
	Err       string
}

// WSClient owns one multiplexed ticker connection for a fixed symbol set.
// The subscription set is immutable for the lifetime of the connection;
// streaming a different set means building a new client.
//
// There is no automatic reconnection: a dropped connection is surfaced through
// the status handler and stays down until the owner rebuilds the pipeline.
type WSClient struct {
	url     string
	streams []string
	logger  *zap.Logger

	handler  func([]byte)
	onStatus func(Status)

	mu      sync.Mutex
	conn    *websocket.Conn
	status  Status
	closing bool
}

// NewWSClient creates a client subscribed to the ticker channel of each given
// symbol. Symbols are lowercased; an empty list falls back to DefaultSymbols.
func NewWSClient(url string, symbols []string, logger *zap.Logger) *WSClient {
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	streams := make([]string, len(symbols))
	for i, s := range symbols {
		streams[i] = strings.ToLower(strings.TrimSpace(s)) + TickerStreamSuffix
	}
	return &WSClient{
		url:     url,
		streams: streams,
		logger:  logger,
	}
}

// SetMessageHandler sets the function to handle incoming raw frames.
func (c *WSClient) SetMessageHandler(h func([]byte)) {
	c.handler = h
}

// SetStatusHandler sets the function notified on every connection state change.
func (c *WSClient) SetStatusHandler(h func(Status)) {
	c.onStatus = h
}

// Streams returns the combined stream names this client subscribes to.
func (c *WSClient) Streams() []string {
	out := make([]string, len(c.streams))
	copy(out, c.streams)
	return out
}

// Connect opens the combined-stream connection. It does not start the listener.
func (c *WSClient) Connect() error {
	endpoint := c.url + "?streams=" + strings.Join(c.streams, StreamSeparator)

	conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
	if err != nil {
		c.logger.Error("failed to connect to WebSocket", zap.String("url", c.url), zap.Error(err))
		c.setStatus(Status{Connected: false, Err: err.Error()})
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.closing = false
	c.mu.Unlock()

	c.logger.Info("WebSocket connected",
		zap.String("url", c.url), zap.Int("streams", len(c.streams)))
	c.setStatus(Status{Connected: true}) // clears any prior error

	return nil
}

// Listen reads frames until the connection drops or Close is called, invoking
// the message handler synchronously for each frame. Handlers therefore never
// run concurrently with each other.
func (c *WSClient) Listen() {
	for {
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn == nil {
			return
		}

		_, msg, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			closing := c.closing
			c.mu.Unlock()

			if closing || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				c.logger.Info("WebSocket closed")
				c.setStatus(Status{Connected: false})
			} else {
				c.logger.Error("WebSocket read error", zap.Error(err))
				c.setStatus(Status{Connected: false, Err: err.Error()})
			}
			return
		}

		if c.handler != nil {
			c.handler(msg)
		}
	}
}

// Close gracefully shuts the connection down. It is idempotent: closing an
// already-closed or never-opened client is a no-op.
func (c *WSClient) Close() error {
	c.mu.Lock()
	conn := c.conn
	if conn == nil {
		c.mu.Unlock()
		return nil
	}
	c.conn = nil
	c.closing = true
	c.mu.Unlock()

	deadline := time.Now().Add(time.Second)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	return conn.Close()
}

// Status returns the last reported connection state.
func (c *WSClient) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// IsConnected reports whether the connection is currently up.
func (c *WSClient) IsConnected() bool {
	return c.Status().Connected
}

func (c *WSClient) setStatus(st Status) {
	c.mu.Lock()
	c.status = st
	h := c.onStatus
	c.mu.Unlock()

	if h != nil {
		h(st)
	}
}
