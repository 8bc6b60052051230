package binance

// StreamMessage is the envelope wrapping every payload on a combined stream.
// Frames without a ticker payload (subscription acks, unknown streams) carry
// an empty Data and are dropped by the consumer.
type StreamMessage struct {
	Stream string      `json:"stream"` // stream name, e.g. "btcusdt@ticker"
	Data   TickerEvent `json:"data"`
}

// TickerEvent is a single 24h rolling-window ticker update. Binance sends
// numeric fields as decimal strings; they stay strings until a consumer
// needs arithmetic.
type TickerEvent struct {
	EventType          string `json:"e"` // event type, "24hrTicker"
	EventTime          int64  `json:"E"` // event time (ms since epoch)
	Symbol             string `json:"s"` // e.g. "BTCUSDT"
	PriceChange        string `json:"p"` // 24h absolute price change
	PriceChangePercent string `json:"P"` // 24h percent price change
	LastPrice          string `json:"c"` // last traded price
	High               string `json:"h"` // 24h high
	Low                string `json:"l"` // 24h low
	Volume             string `json:"v"` // 24h base asset volume
	QuoteVolume        string `json:"q"` // 24h quote asset volume
}

// Ticker24h is one entry of the REST 24hr statistics response
// (GET /api/v3/ticker/24hr).
type Ticker24h struct {
	Symbol             string `json:"symbol"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	LastPrice          string `json:"lastPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
}
