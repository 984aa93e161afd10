package session

import (
	"sync"

	"github.com/jonathan/resume-forge/internal/types"
)

// MemoryStore is the in-memory Store implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*types.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*types.Session)}
}

// Get returns the session for id, or false when unknown.
func (m *MemoryStore) Get(id string) (*types.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Put stores or replaces the session for id.
func (m *MemoryStore) Put(id string, s *types.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
}

// Contains reports whether id is known.
func (m *MemoryStore) Contains(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[id]
	return ok
}
