package resource

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triunfo/balanzas/internal/activitylog"
	"github.com/triunfo/balanzas/internal/session"
)

func newTestOpener(t *testing.T) (*Opener, *[]string, string, string) {
	t.Helper()

	manualsDir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "log.csv")
	activity := activitylog.New(logPath, session.New(), zerolog.Nop())

	o := NewOpener(manualsDir, activity, zerolog.Nop())
	var launched []string
	o.launch = func(target string) error {
		launched = append(launched, target)
		return nil
	}
	return o, &launched, manualsDir, logPath
}

func TestOpen_WebURL(t *testing.T) {
	o, launched, _, _ := newTestOpener(t)

	require.NoError(t, o.Open("https://example.com/manual"))
	require.NoError(t, o.Open("http://example.com/cal"))

	assert.Equal(t, []string{"https://example.com/manual", "http://example.com/cal"}, *launched)
}

func TestOpen_LocalManualFile(t *testing.T) {
	o, launched, manualsDir, _ := newTestOpener(t)
	require.NoError(t, os.WriteFile(filepath.Join(manualsDir, "modelx.pdf"), []byte("pdf"), 0o600))

	require.NoError(t, o.Open("modelx.pdf"))

	require.Len(t, *launched, 1)
	assert.Equal(t, filepath.Join(manualsDir, "modelx.pdf"), (*launched)[0])
}

func TestOpen_NotAvailable(t *testing.T) {
	o, launched, _, _ := newTestOpener(t)

	tests := []struct {
		name string
		ref  string
	}{
		{name: "empty", ref: ""},
		{name: "whitespace only", ref: "   "},
		{name: "malformed URL", ref: "http://"},
		{name: "missing local file", ref: "ghost.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.Open(tt.ref)
			assert.ErrorIs(t, err, ErrNotAvailable)
		})
	}
	assert.Empty(t, *launched)
}

func TestOpen_LaunchFailureIsNotNotAvailable(t *testing.T) {
	o, _, _, _ := newTestOpener(t)
	o.launch = func(string) error { return errors.New("no browser") }

	err := o.Open("https://example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotAvailable)
}

func TestOpen_RecordsEveryAttempt(t *testing.T) {
	o, _, _, logPath := newTestOpener(t)

	require.NoError(t, o.Open("https://example.com"))
	_ = o.Open("")

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two attempts
	assert.Equal(t, "Open Resource Attempt", rows[1][3])
	assert.Equal(t, "resource: https://example.com", rows[1][4])
	assert.Equal(t, "resource: ", rows[2][4])
}
