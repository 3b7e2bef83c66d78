// Package store defines the persistence interfaces for the two catalog
// collections. Implementations own the on-disk documents and the in-memory
// mirrors; all reads return copies and all mutation goes through these
// methods.
package store

import (
	"context"

	"github.com/triunfo/balanzas/internal/models"
)

// UserStore persists user accounts keyed by username.
type UserStore interface {
	// LoadUsers reads the users document from disk into memory. A missing
	// file bootstraps an empty document; a malformed one falls back to an
	// empty collection. It never fails the caller over bad data.
	LoadUsers(ctx context.Context) error

	// GetUsers returns a copy of every user record keyed by username.
	GetUsers(ctx context.Context) (map[string]models.User, error)

	// GetUser returns a copy of one record.
	// Returns ErrNotFound if the username is absent.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// CreateUser inserts a new record and persists the collection.
	// Returns ErrAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, username string, user models.User) error

	// UpdateUser merges the non-nil fields of upd into an existing record
	// and persists. Returns ErrNotFound if the username is absent.
	UpdateUser(ctx context.Context, username string, upd models.UserUpdate) error

	// DeleteUser removes a record and persists.
	// Returns ErrNotFound if the username is absent.
	DeleteUser(ctx context.Context, username string) error
}

// ProductStore persists product records keyed by product name.
type ProductStore interface {
	// LoadProducts reads the products document from disk into memory, with
	// the same bootstrap and fallback behavior as LoadUsers.
	LoadProducts(ctx context.Context) error

	// GetProducts returns a copy of every product record keyed by name.
	GetProducts(ctx context.Context) (map[string]models.Product, error)

	// GetProduct returns a copy of one record.
	// Returns ErrNotFound if the name is absent.
	GetProduct(ctx context.Context, name string) (*models.Product, error)

	// CreateProduct inserts a new record and persists the collection.
	// Returns ErrAlreadyExists if the name is taken.
	CreateProduct(ctx context.Context, name string, product models.Product) error

	// UpdateProduct merges the non-nil fields of upd into an existing
	// record and persists. Returns ErrNotFound if the name is absent.
	UpdateProduct(ctx context.Context, name string, upd models.ProductUpdate) error

	// DeleteProduct removes a record and persists.
	// Returns ErrNotFound if the name is absent.
	DeleteProduct(ctx context.Context, name string) error
}
