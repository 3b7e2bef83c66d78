package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triunfo/balanzas/internal/models"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	dir := t.TempDir()
	s := New(dir, zerolog.Nop())
	require.NoError(t, s.LoadUsers(context.Background()))
	require.NoError(t, s.LoadProducts(context.Background()))
	return s, dir
}

func sampleProduct() models.Product {
	return models.Product{
		Serial:         "SN-001",
		ManualRef:      "manual_modelx.pdf",
		CalibrationRef: "https://example.com/calibration",
		Battery:        "9V",
		Info:           "Balanza de precisión",
		ImageFilename:  "modelx.png",
		Stock:          5,
	}
}

func TestLoad_BootstrapsMissingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir, zerolog.Nop())

	require.NoError(t, s.LoadUsers(context.Background()))
	require.NoError(t, s.LoadProducts(context.Background()))

	// Self-healing bootstrap: both documents now exist as empty objects.
	for _, name := range []string{"users.json", "products.json"} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(raw))
	}
}

func TestLoad_MalformedFileFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o600))

	s := New(dir, zerolog.Nop())
	require.NoError(t, s.LoadUsers(context.Background()))

	users, err := s.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)

	// The corrupt file is left in place until the next successful save,
	// which replaces it with a fresh valid document.
	require.NoError(t, s.CreateUser(context.Background(), "alice", models.User{
		PasswordHash: "feedface", Role: models.RoleUser,
	}))

	fresh := New(dir, zerolog.Nop())
	require.NoError(t, fresh.LoadUsers(context.Background()))
	got, err := fresh.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, got.Role)
}

func TestLoad_WrongShapeJSONFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(`["a","b"]`), 0o600))

	s := New(dir, zerolog.Nop())
	require.NoError(t, s.LoadProducts(context.Background()))

	products, err := s.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDocumentFormat(t *testing.T) {
	s, dir := newTestStorage(t)

	p := sampleProduct()
	p.Info = "Precisión ±0.1g <calibrada>"
	require.NoError(t, s.CreateProduct(context.Background(), "Balanza ModelX", p))

	raw, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	out := string(raw)

	// Two-space indent, non-ASCII and HTML characters kept literal,
	// trailing newline: the pinned migration format.
	assert.Contains(t, out, "  \"Balanza ModelX\": {")
	assert.Contains(t, out, "Precisión ±0.1g <calibrada>")
	assert.NotContains(t, out, `\u`)
	assert.True(t, out[len(out)-1] == '\n')
}

func TestSaveError_SurfacesDesync(t *testing.T) {
	s, dir := newTestStorage(t)
	require.NoError(t, s.SaveError())

	// Make the data directory unwritable by replacing it with a file.
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("not a dir"), 0o600))

	// The mutation still succeeds in memory.
	require.NoError(t, s.CreateUser(context.Background(), "alice", models.User{
		PasswordHash: "feedface", Role: models.RoleUser,
	}))
	assert.Error(t, s.SaveError())

	got, err := s.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, got.Role)
}
