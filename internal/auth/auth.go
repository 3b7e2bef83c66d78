// Package auth provides credential verification and the user-account
// lifecycle on top of the user store. It has no state of its own: every
// call reads or writes through the store, and a failed login is a normal
// negative result, not an error.
package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/triunfo/balanzas/internal/crypto"
	"github.com/triunfo/balanzas/internal/models"
	"github.com/triunfo/balanzas/internal/store"
	"github.com/triunfo/balanzas/internal/validation"
)

// Identity is the result of a successful authentication: who logged in
// and with which role.
type Identity struct {
	Username string
	Role     models.Role
}

// Service implements authentication and user management over a UserStore.
type Service struct {
	users store.UserStore
	log   zerolog.Logger
}

// NewService creates an auth service backed by users.
func NewService(users store.UserStore, log zerolog.Logger) *Service {
	return &Service{
		users: users,
		log:   log.With().Str("component", "auth").Logger(),
	}
}

// Authenticate verifies username/password against the stored digest.
// Returns nil on unknown user, missing stored digest, or wrong password.
func (s *Service) Authenticate(ctx context.Context, username, password string) *Identity {
	u, err := s.users.GetUser(ctx, username)
	if err != nil {
		s.log.Debug().Str("username", username).Msg("login attempt for unknown user")
		return nil
	}

	if u.PasswordHash == "" {
		s.log.Warn().Str("username", username).Msg("user has no stored password digest")
		return nil
	}

	if !crypto.VerifyPassword(password, u.PasswordHash) {
		s.log.Debug().Str("username", username).Msg("wrong password")
		return nil
	}

	return &Identity{Username: username, Role: u.Role}
}

// Register creates a new account. Fails with store.ErrAlreadyExists when
// the username is taken; the existing record is left untouched.
func (s *Service) Register(ctx context.Context, username, password string, role models.Role) error {
	if err := validation.Username(username); err != nil {
		return err
	}
	if err := validation.Role(role); err != nil {
		return err
	}

	user := models.User{
		PasswordHash: crypto.HashPassword(password),
		Role:         role,
	}
	if err := s.users.CreateUser(ctx, username, user); err != nil {
		return fmt.Errorf("failed to register %q: %w", username, err)
	}
	return nil
}

// Unregister removes an account. Fails with store.ErrNotFound when the
// username is absent.
func (s *Service) Unregister(ctx context.Context, username string) error {
	if err := s.users.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("failed to unregister %q: %w", username, err)
	}
	return nil
}

// ChangePassword replaces the stored digest with the digest of
// newPassword. Fails with store.ErrNotFound when the username is absent.
func (s *Service) ChangePassword(ctx context.Context, username, newPassword string) error {
	digest := crypto.HashPassword(newPassword)
	upd := models.UserUpdate{PasswordHash: &digest}
	if err := s.users.UpdateUser(ctx, username, upd); err != nil {
		return fmt.Errorf("failed to change password for %q: %w", username, err)
	}
	return nil
}

// ChangeRole sets the account role. The role is validated against the two
// known values before the store is touched.
func (s *Service) ChangeRole(ctx context.Context, username string, role models.Role) error {
	if err := validation.Role(role); err != nil {
		return err
	}

	upd := models.UserUpdate{Role: &role}
	if err := s.users.UpdateUser(ctx, username, upd); err != nil {
		return fmt.Errorf("failed to change role for %q: %w", username, err)
	}
	return nil
}
