// Package session provides storage for in-flight resume sessions.
// Sessions live for the process lifetime; durable persistence is out of scope.
package session

import "github.com/jonathan/resume-forge/internal/types"

// Store holds sessions keyed by their opaque identifier. Implementations
// must be safe for concurrent use by multiple request handlers; operations
// on any single session are serialized by the request layer.
type Store interface {
	// Get returns the session for id, or false when unknown.
	Get(id string) (*types.Session, bool)
	// Put stores or replaces the session for id.
	Put(id string, s *types.Session)
	// Contains reports whether id is known.
	Contains(id string) bool
}
