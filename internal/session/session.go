// Package session holds the identity of the currently logged-in user.
// This is a single-seat desktop application: at most one identity is
// active at a time, owned by the presentation layer and passed by handle
// into the components that need it. It replaces hidden globals with an
// explicit object.
package session

import (
	"sync"
	"time"

	"github.com/triunfo/balanzas/internal/models"
)

// Session is the process-wide login state. The zero value is a logged-out
// session; use New so the clock is set.
type Session struct {
	mu        sync.RWMutex
	now       func() time.Time
	username  string
	role      models.Role
	startedAt time.Time
	active    bool
}

// New returns a logged-out session using the wall clock.
func New() *Session {
	return &Session{now: time.Now}
}

// Start records a successful login. Any previously active identity is
// replaced.
func (s *Session) Start(username string, role models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	s.role = role
	s.startedAt = s.now()
	s.active = true
}

// Clear ends the session. Safe to call when already logged out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
	s.role = ""
	s.startedAt = time.Time{}
	s.active = false
}

// Active reports whether an identity is logged in.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Identity returns the current username and role. ok is false when no
// session is active.
func (s *Session) Identity() (username string, role models.Role, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return "", "", false
	}
	return s.username, s.role, true
}

// IsAdministrator reports whether the active identity has the
// administrator role.
func (s *Session) IsAdministrator() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active && s.role == models.RoleAdministrator
}

// DurationMinutes returns how long the session has been active, in
// minutes. Zero when logged out.
func (s *Session) DurationMinutes() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return 0
	}
	return s.now().Sub(s.startedAt).Minutes()
}
