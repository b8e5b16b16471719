// Package session models a single build session and the application guard
// that makes orchestrator applies idempotent within it. A session lives as
// long as the surrounding build; the guard is set on the first successful
// apply and only cleared when the session ends.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Session identifies one build session of the host engine.
type Session struct {
	id string

	mu      sync.Mutex
	applied bool
}

// New creates a session with a fresh unique identifier.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Applied reports whether the orchestrator has already been applied to this
// session.
func (s *Session) Applied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

// MarkApplied sets the application guard. It is called only after a fully
// successful apply.
func (s *Session) MarkApplied() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = true
}
