package ticker

import (
	"sort"
	"sync"
)

// Store holds the authoritative latest-known snapshot per symbol. It is
// mutated only through Merge; consumers read derived snapshots and never
// write back.
type Store struct {
	mu      sync.Mutex
	data    map[string]Snapshot
	order   []string // symbols in first-insertion order
	list    []Snapshot
	dirty   bool
	version uint64
}

func NewStore() *Store {
	return &Store{
		data: make(map[string]Snapshot),
	}
}

// Merge inserts or replaces the snapshot for every symbol in updates.
// Replacement is wholesale — no per-field merging. An empty batch is a
// no-op and does not bump the version.
func (s *Store) Merge(updates map[string]Snapshot) {
	if len(updates) == 0 {
		return
	}

	// Apply new symbols in sorted order so list order is deterministic.
	symbols := make([]string, 0, len(updates))
	for sym := range updates {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sym := range symbols {
		if _, ok := s.data[sym]; !ok {
			s.order = append(s.order, sym)
		}
		s.data[sym] = updates[sym]
	}
	s.dirty = true
	s.version++
}

// List returns the current snapshots in first-insertion symbol order.
// The derived slice is rebuilt only after a merge, not on every call.
func (s *Store) List() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirty {
		s.list = make([]Snapshot, 0, len(s.order))
		for _, sym := range s.order {
			s.list = append(s.list, s.data[sym])
		}
		s.dirty = false
	}

	out := make([]Snapshot, len(s.list))
	copy(out, s.list)
	return out
}

// Get returns the snapshot for one symbol, if present.
func (s *Store) Get(symbol string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.data[symbol]
	return snap, ok
}

// Len returns the number of tracked symbols.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Version increments on every mutating merge. Consumers can compare versions
// to skip re-deriving views when nothing changed.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}
