package stream

import (
	"encoding/json"
	"time"

	"github.com/Vladislav-tech/cryptolive/internal/ticker"
	"github.com/Vladislav-tech/cryptolive/pkg/binance"

	"go.uber.org/zap"
)

// MakeMessageHandler returns a function that handles incoming WebSocket
// frames by decoding the combined-stream envelope and buffering the ticker
// update in the coalescer.
//
// Malformed frames are logged and dropped; they never surface as a visible
// error and never take the connection down.
func MakeMessageHandler(logger *zap.Logger, coalescer *ticker.Coalescer) func(msg []byte) {
	return func(msg []byte) {
		var parsed binance.StreamMessage
		if err := json.Unmarshal(msg, &parsed); err != nil {
			logger.Warn("failed to parse stream payload", zap.Error(err))
			return
		}

		// Subscription acks and other control frames carry no data envelope.
		if parsed.Data.Symbol == "" {
			return
		}

		coalescer.Put(ticker.FromEvent(parsed.Data, time.Now()))
	}
}
