package binance

const (
	// DefaultStreamURL is the combined-stream endpoint. Individual stream names
	// are passed in the "streams" query parameter.
	DefaultStreamURL = "wss://stream.binance.com:9443/stream"

	// DefaultRESTBaseURL serves the 24h ticker statistics used to seed the store.
	DefaultRESTBaseURL = "https://api.binance.com"

	// TickerStreamSuffix is appended to a lowercase symbol to form its stream
	// name, e.g. "btcusdt@ticker".
	TickerStreamSuffix = "@ticker"

	// StreamSeparator joins stream names in the combined subscription list.
	StreamSeparator = "/"
)

// DefaultSymbols is the built-in subscription set of 20 major USDT pairs,
// used when the caller supplies no symbols of its own.
var DefaultSymbols = []string{
	"btcusdt", "ethusdt", "bnbusdt", "xrpusdt", "adausdt",
	"dogeusdt", "solusdt", "dotusdt", "maticusdt", "shibusdt",
	"ltcusdt", "trxusdt", "avaxusdt", "linkusdt", "uniusdt",
	"atomusdt", "etcusdt", "xlmusdt", "nearusdt", "algousdt",
}
