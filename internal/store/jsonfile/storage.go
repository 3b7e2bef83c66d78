// Package jsonfile implements the store interfaces on top of two plain
// JSON documents, one per collection. The in-memory mirror is the source
// of truth during a session; every successful mutation rewrites the whole
// corresponding file. There is no atomic rename and no cross-process
// locking: this is a single-seat desktop tool and last writer wins.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/triunfo/balanzas/internal/config"
	"github.com/triunfo/balanzas/internal/models"
	"github.com/triunfo/balanzas/internal/store"
)

// Compile-time checks that Storage implements both store interfaces
var (
	_ store.UserStore    = (*Storage)(nil)
	_ store.ProductStore = (*Storage)(nil)
)

// Storage holds both collections and their file paths. A single mutex
// guards the mirrors; the store is the sole mutator and every read hands
// out copies.
type Storage struct {
	users        map[string]models.User
	products     map[string]models.Product
	dataDir      string
	usersPath    string
	productsPath string
	log          zerolog.Logger
	lastSaveErr  error
	mu           sync.RWMutex
}

// New creates a Storage rooted at dataDir. Call LoadUsers and LoadProducts
// once at startup before using the accessors.
func New(dataDir string, log zerolog.Logger) *Storage {
	return &Storage{
		users:        make(map[string]models.User),
		products:     make(map[string]models.Product),
		dataDir:      dataDir,
		usersPath:    filepath.Join(dataDir, config.UsersFileName),
		productsPath: filepath.Join(dataDir, config.ProductsFileName),
		log:          log.With().Str("component", "store").Logger(),
	}
}

// SaveError returns the error of the most recent failed save, or nil when
// memory and disk are in sync. After a failed save the in-memory state
// stays authoritative for the rest of the session; this surfaces the
// desync to callers that care.
func (s *Storage) SaveError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSaveErr
}

// ensureDataDir creates the data directory if needed. Idempotent; a
// failure is reported but not fatal, the following read or write will
// surface it anyway.
func (s *Storage) ensureDataDir() {
	if _, err := os.Stat(s.dataDir); err == nil {
		return
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		s.log.Warn().Err(err).Str("dir", s.dataDir).Msg("could not create data directory")
	}
}

// readDocument parses one collection file into a fresh map.
func readDocument[T any](path string) (map[string]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	out := make(map[string]T)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return out, nil
}

// encodeDocument renders a collection in the pinned on-disk format:
// two-space indent, UTF-8 with non-ASCII characters kept literal, trailing
// newline. Existing deployments migrate their files as-is, so the format
// must not drift.
func encodeDocument[T any](doc map[string]T) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeDocument persists one collection, rewriting the file in full.
func writeDocument[T any](path string, doc map[string]T) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
