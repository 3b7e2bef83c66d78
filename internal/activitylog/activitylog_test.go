package activitylog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triunfo/balanzas/internal/models"
	"github.com/triunfo/balanzas/internal/session"
)

var fixedTime = time.Date(2025, 6, 1, 14, 30, 5, 0, time.Local)

func newTestLogger(t *testing.T) (*Logger, *session.Session, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "registro_actividad_balanzas.csv")
	sess := session.New()
	l := New(path, sess, zerolog.Nop())
	l.now = func() time.Time { return fixedTime }
	return l, sess, path
}

func readLog(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestInitialize_CreatesDirectoryAndHeader(t *testing.T) {
	l, _, path := newTestLogger(t)

	l.Initialize()

	rows := readLog(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, header, rows[0])
}

func TestInitialize_NeverOverwritesExistingLog(t *testing.T) {
	l, _, path := newTestLogger(t)

	l.Initialize()
	l.Record("Login", "user: alice")
	l.Initialize()

	rows := readLog(t, path)
	assert.Len(t, rows, 2, "re-initializing must not drop recorded rows")
}

func TestRecord_WithActiveSession(t *testing.T) {
	l, sess, path := newTestLogger(t)
	l.Initialize()
	sess.Start("alice", models.RoleAdministrator)

	l.Record("Product Registered", "product: ModelX")

	rows := readLog(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"2025-06-01 14:30:05",
		"alice",
		"administrator",
		"Product Registered",
		"product: ModelX",
		"",
	}, rows[1])
}

func TestRecord_WithoutSessionUsesNotApplicable(t *testing.T) {
	l, _, path := newTestLogger(t)
	l.Initialize()

	l.Record("Login Failed", "user: bob")

	rows := readLog(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "N/A", rows[1][1])
	assert.Equal(t, "N/A", rows[1][2])
}

func TestRecordWithDuration_TwoDecimalPlaces(t *testing.T) {
	l, sess, path := newTestLogger(t)
	l.Initialize()
	sess.Start("alice", models.RoleUser)

	l.RecordWithDuration("Logout", "", 12.3456)

	rows := readLog(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "12.35", rows[1][5])
}

func TestRecord_WithoutPriorInitialize(t *testing.T) {
	// Recording into a missing file and directory bootstraps both: header
	// first, then the data row.
	l, _, path := newTestLogger(t)

	l.Record("Login", "user: alice")

	rows := readLog(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, "Login", rows[1][3])
}

func TestRecord_AppendsInOrder(t *testing.T) {
	l, sess, path := newTestLogger(t)
	l.Initialize()
	sess.Start("alice", models.RoleUser)

	l.Record("Login", "user: alice")
	l.Record("Product Viewed", "product: ModelX")
	l.RecordWithDuration("Logout", "", 1.0)

	rows := readLog(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, "Login", rows[1][3])
	assert.Equal(t, "Product Viewed", rows[2][3])
	assert.Equal(t, "Logout", rows[3][3])
}

func TestRecord_FailureIsSwallowed(t *testing.T) {
	// Point the logger at a path whose parent is a regular file: neither
	// initialize nor record can succeed, and neither may panic or error
	// out to the caller.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o600))

	sess := session.New()
	l := New(filepath.Join(blocked, "log.csv"), sess, zerolog.Nop())

	assert.NotPanics(t, func() {
		l.Initialize()
		l.Record("Login", "user: alice")
	})
}
