package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys.
const (
	KeyToken   = "token"   // opaque session token
	KeySymbols = "symbols" // JSON array of lowercase favorite symbols, newest-first
)

// Store is a file-backed key-value store, the daemon's stand-in for the
// dashboard's browser localStorage. Values are stored as strings; structured
// values (the favorites list) are JSON-encoded strings, matching the layout
// the web client writes.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// Open loads the store at path, starting empty if the file does not exist.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	return s, nil
}

// Get returns the raw value for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores the value for key and persists the whole map.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.persist()
}

// Delete removes key and persists. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.persist()
}

// Token returns the stored session token, or "" if none.
func (s *Store) Token() string {
	tok, _ := s.Get(KeyToken)
	return tok
}

func (s *Store) SetToken(token string) error {
	return s.Set(KeyToken, token)
}

func (s *Store) ClearToken() error {
	return s.Delete(KeyToken)
}

// Symbols returns the stored favorite symbols, newest-first. A missing or
// corrupt entry reads as empty.
func (s *Store) Symbols() []string {
	raw, ok := s.Get(KeySymbols)
	if !ok {
		return nil
	}
	var symbols []string
	if err := json.Unmarshal([]byte(raw), &symbols); err != nil {
		return nil
	}
	return symbols
}

func (s *Store) SetSymbols(symbols []string) error {
	raw, err := json.Marshal(symbols)
	if err != nil {
		return fmt.Errorf("encode symbols: %w", err)
	}
	return s.Set(KeySymbols, string(raw))
}

// persist writes the map to disk. Caller holds s.mu.
func (s *Store) persist() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
