package favorites

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Backend persists the ordered favorite set. Implementations must keep
// symbols lowercase, deduplicated, and newest-added-first.
type Backend interface {
	List() ([]string, error)
	Add(symbol string) error
	Remove(symbol string) error
}

// Manager serializes every favorite mutation behind one mutex, so two
// in-process writers can never interleave a read-modify-write on the
// underlying storage. Persistence faults degrade to no-ops: they are logged
// and the call returns as if nothing happened.
type Manager struct {
	mu      sync.Mutex
	backend Backend
	logger  *zap.Logger
}

func NewManager(backend Backend, logger *zap.Logger) *Manager {
	return &Manager{
		backend: backend,
		logger:  logger,
	}
}

// Add marks symbol as a favorite. Symbols are stored lowercase; adding an
// existing favorite is a no-op.
func (m *Manager) Add(symbol string) {
	sym := normalize(symbol)
	if sym == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.backend.Add(sym); err != nil {
		m.logger.Warn("failed to add favorite", zap.String("symbol", sym), zap.Error(err))
	}
}

// Remove unmarks symbol. Removing an absent favorite is a no-op.
func (m *Manager) Remove(symbol string) {
	sym := normalize(symbol)
	if sym == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.backend.Remove(sym); err != nil {
		m.logger.Warn("failed to remove favorite", zap.String("symbol", sym), zap.Error(err))
	}
}

// List returns the favorites newest-first. A read failure reads as empty.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	symbols, err := m.backend.List()
	if err != nil {
		m.logger.Warn("failed to list favorites", zap.Error(err))
		return nil
	}
	return symbols
}

// Contains reports whether symbol is currently a favorite.
func (m *Manager) Contains(symbol string) bool {
	sym := normalize(symbol)
	for _, s := range m.List() {
		if s == sym {
			return true
		}
	}
	return false
}

func normalize(symbol string) string {
	return strings.ToLower(strings.TrimSpace(symbol))
}
