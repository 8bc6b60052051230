package localstore

import (
	"path/filepath"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if tok := store.Token(); tok != "" {
		t.Errorf("fresh store has token %q", tok)
	}

	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("set token failed: %v", err)
	}
	if tok := store.Token(); tok != "abc123" {
		t.Errorf("expected abc123, got %q", tok)
	}

	if err := store.ClearToken(); err != nil {
		t.Fatalf("clear token failed: %v", err)
	}
	if tok := store.Token(); tok != "" {
		t.Errorf("token survived clear: %q", tok)
	}
}

func TestSymbolsPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := store.SetSymbols([]string{"ethusdt", "btcusdt"}); err != nil {
		t.Fatalf("set symbols failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got := reopened.Symbols()
	if len(got) != 2 || got[0] != "ethusdt" || got[1] != "btcusdt" {
		t.Errorf("unexpected symbols after reopen: %v", got)
	}
}

func TestCorruptSymbolsReadAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := store.Set(KeySymbols, "not a json array"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if got := store.Symbols(); got != nil {
		t.Errorf("expected nil for corrupt entry, got %v", got)
	}
}

func TestDeleteAbsentKeyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := store.Delete("nothing"); err != nil {
		t.Errorf("deleting absent key errored: %v", err)
	}
}
