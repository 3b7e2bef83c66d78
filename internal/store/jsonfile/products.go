package jsonfile

import (
	"context"
	"maps"
	"os"

	"github.com/triunfo/balanzas/internal/models"
	"github.com/triunfo/balanzas/internal/store"
)

// LoadProducts reads products.json into memory, with the same bootstrap
// and fallback behavior as LoadUsers.
func (s *Storage) LoadProducts(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureDataDir()

	if _, err := os.Stat(s.productsPath); os.IsNotExist(err) {
		s.log.Warn().Str("path", s.productsPath).Msg("products file not found, initializing empty collection")
		s.products = make(map[string]models.Product)
		s.saveProducts()
		return nil
	}

	doc, err := readDocument[models.Product](s.productsPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.productsPath).Msg("could not load products, falling back to empty collection")
		s.products = make(map[string]models.Product)
		return nil
	}

	s.products = doc
	s.log.Info().Int("count", len(doc)).Msg("products loaded")
	return nil
}

// GetProducts returns a copy of the whole products collection.
func (s *Storage) GetProducts(ctx context.Context) (map[string]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.products), nil
}

// GetProduct returns a copy of one product record.
func (s *Storage) GetProduct(ctx context.Context, name string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

// CreateProduct inserts a new product and persists the collection.
func (s *Storage) CreateProduct(ctx context.Context, name string, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[name]; ok {
		s.log.Error().Str("product", name).Msg("attempt to register existing product")
		return store.ErrAlreadyExists
	}

	s.products[name] = product
	s.saveProducts()
	s.log.Info().Str("product", name).Msg("product registered")
	return nil
}

// UpdateProduct merges upd into an existing product and persists.
func (s *Storage) UpdateProduct(ctx context.Context, name string, upd models.ProductUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[name]
	if !ok {
		s.log.Error().Str("product", name).Msg("attempt to update missing product")
		return store.ErrNotFound
	}

	upd.Apply(&p)
	s.products[name] = p
	s.saveProducts()
	s.log.Info().Str("product", name).Msg("product updated")
	return nil
}

// DeleteProduct removes a product and persists.
func (s *Storage) DeleteProduct(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[name]; !ok {
		s.log.Error().Str("product", name).Msg("attempt to delete missing product")
		return store.ErrNotFound
	}

	delete(s.products, name)
	s.saveProducts()
	s.log.Info().Str("product", name).Msg("product deleted")
	return nil
}

// saveProducts rewrites products.json from the mirror. Callers must hold
// the write lock.
func (s *Storage) saveProducts() {
	s.ensureDataDir()
	if err := writeDocument(s.productsPath, s.products); err != nil {
		s.log.Error().Err(err).Msg("could not save products, in-memory state is ahead of disk")
		s.lastSaveErr = err
		return
	}
	s.lastSaveErr = nil
}
