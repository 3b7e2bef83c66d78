// Package resource opens product manuals and calibration references in
// the system's default viewer. A reference is either an http(s) URL or a
// file name resolved against the manuals directory; anything else is
// reported as not available instead of failing silently.
package resource

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/triunfo/balanzas/internal/activitylog"
)

// ErrNotAvailable indicates the reference is empty, malformed, or points
// at a file that does not exist. The caller shows this to the user; it is
// not a program fault.
var ErrNotAvailable = errors.New("resource not available")

// Opener resolves and launches resource references. Every attempt is
// recorded in the activity log, successful or not.
type Opener struct {
	activity   *activitylog.Logger
	launch     func(target string) error
	manualsDir string
	log        zerolog.Logger
}

// NewOpener creates an Opener resolving file references against
// manualsDir.
func NewOpener(manualsDir string, activity *activitylog.Logger, log zerolog.Logger) *Opener {
	return &Opener{
		activity:   activity,
		launch:     launchDefault,
		manualsDir: manualsDir,
		log:        log.With().Str("component", "resource").Logger(),
	}
}

// Open validates ref and hands it to the default browser or viewer.
// Returns ErrNotAvailable when there is nothing sensible to open.
func (o *Opener) Open(ref string) error {
	o.activity.Record("Open Resource Attempt", "resource: "+ref)

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return fmt.Errorf("%w: empty reference", ErrNotAvailable)
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		u, err := url.Parse(ref)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: malformed URL %q", ErrNotAvailable, ref)
		}
		if err := o.launch(ref); err != nil {
			return fmt.Errorf("failed to open %q: %w", ref, err)
		}
		return nil
	}

	// Not a URL: treat as a file under the manuals directory.
	path := filepath.Join(o.manualsDir, ref)
	if _, err := os.Stat(path); err != nil {
		o.log.Debug().Str("path", path).Msg("manual file not found")
		return fmt.Errorf("%w: file %q not found in manuals directory", ErrNotAvailable, ref)
	}
	if err := o.launch(path); err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	return nil
}

// launchDefault opens target with the platform's opener command.
func launchDefault(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}
