package config

import (
	"errors"
	"sync"
)

// ErrNoSession is returned by Store.All when no live snapshot has been
// loaded.
var ErrNoSession = errors.New("config: no active session")

// Store holds the live configuration snapshot for the current session.
// Readers get a copy; the snapshot is replaced wholesale, never edited.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates a Store with no active snapshot.
func NewStore() *Store {
	return &Store{}
}

// Replace installs a new snapshot.
func (s *Store) Replace(values map[string]string) {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	s.mu.Lock()
	s.values = copied
	s.mu.Unlock()
}

// Clear removes the active snapshot.
func (s *Store) Clear() {
	s.mu.Lock()
	s.values = nil
	s.mu.Unlock()
}

// All returns a copy of the current snapshot, or ErrNoSession when none
// is loaded.
func (s *Store) All() (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.values == nil {
		return nil, ErrNoSession
	}
	copied := make(map[string]string, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied, nil
}
