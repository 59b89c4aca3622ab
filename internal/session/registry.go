package session

import (
	"fmt"
	"sync"

	"github.com/Veraticus/wastewise/internal/common"
)

// Registry holds independent sessions by ID.
type Registry struct {
	advisor  Advisor
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry whose sessions use a.
func NewRegistry(a Advisor) *Registry {
	return &Registry{
		advisor:  a,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new idle session.
func (r *Registry) Create() *Session {
	s := New(r.advisor)

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	return s
}

// Get returns the session with id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, common.ErrNotFound)
	}
	return s, nil
}

// Delete removes a session; an in-flight classification on it is discarded.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s: %w", id, common.ErrNotFound)
	}
	s.Reset()
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
