package jsonfile

import (
	"context"
	"maps"
	"os"

	"github.com/triunfo/balanzas/internal/models"
	"github.com/triunfo/balanzas/internal/store"
)

// LoadUsers reads users.json into memory. A missing file is bootstrapped
// as an empty document and written out; a malformed or unreadable one is
// reported and replaced with an empty mirror, to be overwritten by the
// next successful save. Never fails the caller over bad data.
func (s *Storage) LoadUsers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureDataDir()

	if _, err := os.Stat(s.usersPath); os.IsNotExist(err) {
		s.log.Warn().Str("path", s.usersPath).Msg("users file not found, initializing empty collection")
		s.users = make(map[string]models.User)
		s.saveUsers()
		return nil
	}

	doc, err := readDocument[models.User](s.usersPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.usersPath).Msg("could not load users, falling back to empty collection")
		s.users = make(map[string]models.User)
		return nil
	}

	s.users = doc
	s.log.Info().Int("count", len(doc)).Msg("users loaded")
	return nil
}

// GetUsers returns a copy of the whole users collection.
func (s *Storage) GetUsers(ctx context.Context) (map[string]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.users), nil
}

// GetUser returns a copy of one user record.
func (s *Storage) GetUser(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

// CreateUser inserts a new user and persists the collection.
func (s *Storage) CreateUser(ctx context.Context, username string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		s.log.Error().Str("username", username).Msg("attempt to register existing user")
		return store.ErrAlreadyExists
	}

	s.users[username] = user
	s.saveUsers()
	s.log.Info().Str("username", username).Msg("user registered")
	return nil
}

// UpdateUser merges upd into an existing user and persists.
func (s *Storage) UpdateUser(ctx context.Context, username string, upd models.UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		s.log.Error().Str("username", username).Msg("attempt to update missing user")
		return store.ErrNotFound
	}

	upd.Apply(&u)
	s.users[username] = u
	s.saveUsers()
	s.log.Info().Str("username", username).Msg("user updated")
	return nil
}

// DeleteUser removes a user and persists.
func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; !ok {
		s.log.Error().Str("username", username).Msg("attempt to delete missing user")
		return store.ErrNotFound
	}

	delete(s.users, username)
	s.saveUsers()
	s.log.Info().Str("username", username).Msg("user deleted")
	return nil
}

// saveUsers rewrites users.json from the mirror. A failed save is
// reported and remembered; the mirror stays authoritative. Callers must
// hold the write lock.
func (s *Storage) saveUsers() {
	s.ensureDataDir()
	if err := writeDocument(s.usersPath, s.users); err != nil {
		s.log.Error().Err(err).Msg("could not save users, in-memory state is ahead of disk")
		s.lastSaveErr = err
		return
	}
	s.lastSaveErr = nil
}
