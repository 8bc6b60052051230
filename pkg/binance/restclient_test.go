package binance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGet24hTickers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/ticker/24hr" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		var symbols []string
		if err := json.Unmarshal([]byte(r.URL.Query().Get("symbols")), &symbols); err != nil {
			t.Errorf("symbols param is not a JSON array: %v", err)
		}
		if len(symbols) != 2 || symbols[0] != "BTCUSDT" {
			t.Errorf("expected uppercased symbols, got %v", symbols)
		}

		json.NewEncoder(w).Encode([]Ticker24h{
			{Symbol: "BTCUSDT", LastPrice: "50000.1", PriceChangePercent: "2.5", Volume: "1000"},
			{Symbol: "ETHUSDT", LastPrice: "3000.2", PriceChangePercent: "-1.2", Volume: "2000"},
		})
	}))
	defer srv.Close()

	client := NewRESTClient(srv.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tickers, err := client.Get24hTickers(ctx, []string{"btcusdt", "ethusdt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickers) != 2 {
		t.Fatalf("expected 2 tickers, got %d", len(tickers))
	}
	if tickers[0].Symbol != "BTCUSDT" || tickers[0].LastPrice != "50000.1" {
		t.Errorf("unexpected first ticker: %+v", tickers[0])
	}
}

func TestGet24hTickersServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewRESTClient(srv.URL, 5*time.Second)

	_, err := client.Get24hTickers(context.Background(), []string{"nope"})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
