package favorites

import (
	"github.com/Vladislav-tech/cryptolive/pkg/localstore"
)

// LocalBackend persists the favorite set under the "symbols" key of a
// file-backed local store: a JSON array of lowercase symbols, newest-first,
// no duplicates — the same layout the web dashboard keeps in localStorage.
type LocalBackend struct {
	store *localstore.Store
}

func NewLocalBackend(store *localstore.Store) *LocalBackend {
	return &LocalBackend{store: store}
}

func (b *LocalBackend) List() ([]string, error) {
	return b.store.Symbols(), nil
}

func (b *LocalBackend) Add(symbol string) error {
	prev := b.store.Symbols()
	for _, s := range prev {
		if s == symbol {
			return nil
		}
	}
	return b.store.SetSymbols(append([]string{symbol}, prev...))
}

func (b *LocalBackend) Remove(symbol string) error {
	prev := b.store.Symbols()
	out := make([]string, 0, len(prev))
	removed := false
	for _, s := range prev {
		if s == symbol {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if !removed {
		return nil
	}
	return b.store.SetSymbols(out)
}
