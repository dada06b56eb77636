package arena

import (
	"sync"

	"golang.org/x/exp/maps"
)

// A Store is the key-value persistence boundary the arena writes game
// records through. Implementations only need byte-slice get and set; the
// arena never enumerates keys.
type Store interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) ([]byte, bool)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte)
}

// MemStore is an in-process Store backed by a map. The arena itself runs
// its operations one at a time, but the store is safe for concurrent use
// so tests and local tooling can read it freely.
type MemStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

// Get implements Store.
func (s *MemStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

// Set implements Store.
func (s *MemStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), value...)
}

// Snapshot returns a copy of the store's contents, useful for asserting
// that an operation left persisted state untouched.
func (s *MemStore) Snapshot() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.m)
}
