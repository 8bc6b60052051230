package ticker

import (
	"testing"
	"time"
)

func snap(symbol, price, changePct, volume string) Snapshot {
	return Snapshot{
		Symbol:             symbol,
		Price:              price,
		PriceChange:        changePct,
		PriceChangePercent: changePct,
		Volume:             volume,
		High:               price,
		Low:                price,
		LastUpdate:         time.Now(),
	}
}

func TestStoreMergeReplacesWholesale(t *testing.T) {
	store := NewStore()

	store.Merge(map[string]Snapshot{
		"BTCUSDT": snap("BTCUSDT", "50000.00", "2.50", "10.00"),
	})
	store.Merge(map[string]Snapshot{
		"BTCUSDT": snap("BTCUSDT", "50020.00", "2.60", "11.00"),
	})

	got, ok := store.Get("BTCUSDT")
	if !ok {
		t.Fatal("expected BTCUSDT in store")
	}
	if got.Price != "50020.00" {
		t.Errorf("expected replaced price 50020.00, got %s", got.Price)
	}
	if store.Len() != 1 {
		t.Errorf("expected exactly one snapshot, got %d", store.Len())
	}
}

func TestStoreNeverInventsSymbols(t *testing.T) {
	store := NewStore()
	store.Merge(map[string]Snapshot{
		"BTCUSDT": snap("BTCUSDT", "50000.00", "2.50", "10.00"),
	})

	if _, ok := store.Get("ETHUSDT"); ok {
		t.Error("store contains a symbol no message ever mentioned")
	}
}

func TestStoreEmptyMergeIsNoop(t *testing.T) {
	store := NewStore()
	store.Merge(map[string]Snapshot{
		"BTCUSDT": snap("BTCUSDT", "50000.00", "2.50", "10.00"),
	})
	before := store.Version()

	store.Merge(map[string]Snapshot{})
	store.Merge(nil)

	if store.Version() != before {
		t.Errorf("empty merge bumped version: %d -> %d", before, store.Version())
	}
}

func TestStoreListKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	store.Merge(map[string]Snapshot{
		"ETHUSDT": snap("ETHUSDT", "3000.00", "-1.20", "5.00"),
	})
	store.Merge(map[string]Snapshot{
		"BTCUSDT": snap("BTCUSDT", "50000.00", "2.50", "10.00"),
	})
	// Updating an existing symbol must not move it.
	store.Merge(map[string]Snapshot{
		"ETHUSDT": snap("ETHUSDT", "3010.00", "-1.00", "5.50"),
	})

	list := store.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(list))
	}
	if list[0].Symbol != "ETHUSDT" || list[1].Symbol != "BTCUSDT" {
		t.Errorf("unexpected order: %s, %s", list[0].Symbol, list[1].Symbol)
	}
	if list[0].Price != "3010.00" {
		t.Errorf("expected updated price for ETHUSDT, got %s", list[0].Price)
	}
}

func TestStoreListReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Merge(map[string]Snapshot{
		"BTCUSDT": snap("BTCUSDT", "50000.00", "2.50", "10.00"),
	})

	list := store.List()
	list[0].Price = "0.00"

	again := store.List()
	if again[0].Price != "50000.00" {
		t.Error("mutating a returned list leaked into the store")
	}
}

func TestStoreVersionSignalsChange(t *testing.T) {
	store := NewStore()
	if store.Version() != 0 {
		t.Fatalf("fresh store version = %d", store.Version())
	}

	store.Merge(map[string]Snapshot{
		"BTCUSDT": snap("BTCUSDT", "50000.00", "2.50", "10.00"),
	})
	if store.Version() != 1 {
		t.Errorf("expected version 1 after merge, got %d", store.Version())
	}

	// Reading must not look like a change.
	store.List()
	store.List()
	if store.Version() != 1 {
		t.Errorf("List bumped version to %d", store.Version())
	}
}
