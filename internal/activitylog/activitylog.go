// Package activitylog appends one audit row per significant user action
// to a CSV document. The log is write-only: nothing in the application
// reads it back, and a failure to write never reaches the caller — it is
// reported on the diagnostic channel and swallowed.
package activitylog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/triunfo/balanzas/internal/session"
)

// header is the fixed first row of the log document. Column order is part
// of the format and must not change.
var header = []string{"Timestamp", "Username", "Role", "Action", "Details", "SessionDurationMinutes"}

// timestampFormat is the layout of the first column.
const timestampFormat = "2006-01-02 15:04:05"

// notApplicable marks the identity columns when no session is active.
const notApplicable = "N/A"

// Logger writes audit rows for the active session. Each Record loads the
// whole document, appends one row and rewrites it; log volume is
// human-scale, one row per user action.
type Logger struct {
	mu   sync.Mutex
	sess *session.Session
	now  func() time.Time
	path string
	log  zerolog.Logger
}

// New creates a Logger writing to path, taking the actor identity from
// sess at record time.
func New(path string, sess *session.Session, log zerolog.Logger) *Logger {
	return &Logger{
		sess: sess,
		now:  time.Now,
		path: path,
		log:  log.With().Str("component", "activitylog").Logger(),
	}
}

// Initialize makes sure the log directory and file exist, creating the
// file with its header row when missing. Idempotent: an existing log is
// never touched.
func (l *Logger) Initialize() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.initialize()
}

// initialize does the work of Initialize. Callers must hold the mutex.
func (l *Logger) initialize() {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		l.log.Warn().Err(err).Str("dir", dir).Msg("could not create logs directory")
		return
	}

	if _, err := os.Stat(l.path); err == nil {
		return
	}

	if err := l.writeRows([][]string{header}); err != nil {
		l.log.Warn().Err(err).Str("path", l.path).Msg("could not initialize activity log")
	}
}

// Record appends one row for action with no session duration.
func (l *Logger) Record(action, details string) {
	l.record(action, details, nil)
}

// RecordWithDuration appends one row carrying the session duration in
// minutes, formatted to two decimal places. Used on logout.
func (l *Logger) RecordWithDuration(action, details string, durationMin float64) {
	l.record(action, details, &durationMin)
}

func (l *Logger) record(action, details string, durationMin *float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := os.Stat(l.path); err != nil {
		l.log.Warn().Str("path", l.path).Msg("activity log missing, recreating")
		l.initialize()
	}

	rows, err := l.readRows()
	if err != nil {
		l.log.Error().Err(err).Str("action", action).Msg("could not read activity log, row dropped")
		return
	}
	if len(rows) == 0 {
		rows = [][]string{header}
	}

	username, role := notApplicable, notApplicable
	if u, r, ok := l.sess.Identity(); ok {
		username, role = u, string(r)
	}

	duration := ""
	if durationMin != nil {
		duration = fmt.Sprintf("%.2f", *durationMin)
	}

	rows = append(rows, []string{
		l.now().Format(timestampFormat),
		username,
		role,
		action,
		details,
		duration,
	})

	if err := l.writeRows(rows); err != nil {
		l.log.Error().Err(err).Str("action", action).Str("details", details).Msg("could not write activity log, row dropped")
	}
}

// readRows loads the whole document. Tolerates ragged rows so a manually
// edited log never blocks recording.
func (l *Logger) readRows() ([][]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// writeRows rewrites the whole document from rows.
func (l *Logger) writeRows(rows [][]string) error {
	f, err := os.Create(l.path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
