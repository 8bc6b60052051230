package ticker

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Vladislav-tech/cryptolive/pkg/binance"
)

// Snapshot is the latest known state for one symbol. A new update replaces
// the whole value; fields are never merged individually.
//
// Numeric fields are kept as fixed two-decimal strings, ready for display.
// Volume is scaled by 1/1000 (display unit "K").
type Snapshot struct {
	Symbol             string
	Price              string
	PriceChange        string
	PriceChangePercent string
	Volume             string
	High               string
	Low                string
	LastUpdate         time.Time // ingestion time, freshness only — not an ordering key
}

// FromEvent converts a stream ticker event into a display-ready snapshot.
// Malformed numeric fields format as "0.00" rather than poisoning the frame.
func FromEvent(ev binance.TickerEvent, now time.Time) Snapshot {
	return Snapshot{
		Symbol:             ev.Symbol,
		Price:              fixed2(ev.LastPrice),
		PriceChange:        fixed2(ev.PriceChange),
		PriceChangePercent: fixed2(ev.PriceChangePercent),
		Volume:             fixed2Scaled(ev.Volume, 1000),
		High:               fixed2(ev.High),
		Low:                fixed2(ev.Low),
		LastUpdate:         now,
	}
}

// FromTicker24h converts a REST 24h statistics entry into a snapshot,
// applying the same formatting as the stream path.
func FromTicker24h(t binance.Ticker24h, now time.Time) Snapshot {
	return Snapshot{
		Symbol:             t.Symbol,
		Price:              fixed2(t.LastPrice),
		PriceChange:        fixed2(t.PriceChange),
		PriceChangePercent: fixed2(t.PriceChangePercent),
		Volume:             fixed2Scaled(t.Volume, 1000),
		High:               fixed2(t.HighPrice),
		Low:                fixed2(t.LowPrice),
		LastUpdate:         now,
	}
}

func fixed2(s string) string {
	return strconv.FormatFloat(parseNum(s), 'f', 2, 64)
}

func fixed2Scaled(s string, divisor float64) string {
	return strconv.FormatFloat(parseNum(s)/divisor, 'f', 2, 64)
}

// parseNum parses a decimal string, treating failures, NaN and infinities
// as 0 so comparisons stay total.
func parseNum(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
