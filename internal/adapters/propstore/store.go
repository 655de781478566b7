// Package propstore implements the process-wide property store that resolved
// user properties are published to at invocation start.
package propstore

import "sync"

// Store implements ports.PropertyStore with a mutex-guarded map. Published
// properties live for the remainder of the process; nothing resets them
// between invocations, so tests snapshot and restore around each run.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Set publishes a property.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the published value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Snapshot returns a copy of the full store contents.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]string, len(s.values))
	for k, v := range s.values {
		snapshot[k] = v
	}
	return snapshot
}

// Restore replaces the store contents with the given snapshot.
func (s *Store) Restore(props map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string, len(props))
	for k, v := range props {
		s.values[k] = v
	}
}
