package ticker

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCoalescerLastWriteWinsWithinWindow(t *testing.T) {
	store := NewStore()
	c := NewCoalescer(store, 50*time.Millisecond, zap.NewNop())
	defer c.Stop()

	// Three updates for the same symbol within one window.
	c.Put(snap("BTCUSDT", "50000.00", "2.50", "10.00"))
	c.Put(snap("BTCUSDT", "50010.00", "2.55", "10.10"))
	c.Put(snap("BTCUSDT", "50020.00", "2.60", "10.20"))

	if store.Len() != 0 {
		t.Fatal("updates committed before the flush timer fired")
	}

	time.Sleep(200 * time.Millisecond)

	got, ok := store.Get("BTCUSDT")
	if !ok {
		t.Fatal("expected BTCUSDT after flush")
	}
	if got.Price != "50020.00" {
		t.Errorf("expected only the last update committed, got price %s", got.Price)
	}
	if store.Version() != 1 {
		t.Errorf("expected a single batched merge, got version %d", store.Version())
	}
}

func TestCoalescerBatchesAcrossSymbols(t *testing.T) {
	store := NewStore()
	c := NewCoalescer(store, 50*time.Millisecond, zap.NewNop())
	defer c.Stop()

	c.Put(snap("BTCUSDT", "50000.00", "2.50", "10.00"))
	c.Put(snap("ETHUSDT", "3000.00", "-1.20", "5.00"))

	if c.PendingCount() != 2 {
		t.Fatalf("expected 2 pending updates, got %d", c.PendingCount())
	}

	time.Sleep(200 * time.Millisecond)

	if store.Len() != 2 {
		t.Errorf("expected both symbols committed, got %d", store.Len())
	}
	if c.PendingCount() != 0 {
		t.Errorf("buffer not cleared after flush: %d pending", c.PendingCount())
	}
	if store.Version() != 1 {
		t.Errorf("expected one merge for the whole batch, got version %d", store.Version())
	}
}

func TestCoalescerStopCancelsPendingFlush(t *testing.T) {
	store := NewStore()
	c := NewCoalescer(store, 50*time.Millisecond, zap.NewNop())

	c.Put(snap("BTCUSDT", "50000.00", "2.50", "10.00"))
	c.Stop()

	time.Sleep(200 * time.Millisecond)

	if store.Len() != 0 {
		t.Error("flush fired into the store after Stop")
	}
	if store.Version() != 0 {
		t.Errorf("store mutated after Stop, version %d", store.Version())
	}
}

func TestCoalescerIgnoresPutAfterStop(t *testing.T) {
	store := NewStore()
	c := NewCoalescer(store, 50*time.Millisecond, zap.NewNop())
	c.Stop()

	c.Put(snap("BTCUSDT", "50000.00", "2.50", "10.00"))

	if c.PendingCount() != 0 {
		t.Errorf("stopped coalescer buffered an update, %d pending", c.PendingCount())
	}
}

func TestCoalescerWindowsAreOrdered(t *testing.T) {
	store := NewStore()
	c := NewCoalescer(store, 30*time.Millisecond, zap.NewNop())
	defer c.Stop()

	for i := 0; i < 3; i++ {
		c.Put(snap("BTCUSDT", fmt.Sprintf("%d.00", 50000+i), "2.50", "10.00"))
		time.Sleep(150 * time.Millisecond) // let each window flush before the next
	}

	got, _ := store.Get("BTCUSDT")
	if got.Price != "50002.00" {
		t.Errorf("expected last window's value, got %s", got.Price)
	}
	if store.Version() != 3 {
		t.Errorf("expected 3 ordered flushes, got version %d", store.Version())
	}
}
