package favorites

// MemoryBackend keeps the favorite set in process memory. Used in tests and
// when no persistence is configured.
type MemoryBackend struct {
	symbols []string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) List() ([]string, error) {
	out := make([]string, len(b.symbols))
	copy(out, b.symbols)
	return out, nil
}

func (b *MemoryBackend) Add(symbol string) error {
	for _, s := range b.symbols {
		if s == symbol {
			return nil
		}
	}
	b.symbols = append([]string{symbol}, b.symbols...)
	return nil
}

func (b *MemoryBackend) Remove(symbol string) error {
	out := b.symbols[:0]
	for _, s := range b.symbols {
		if s != symbol {
			out = append(out, s)
		}
	}
	b.symbols = out
	return nil
}
