package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/opencode-ai/ansitheme/internal/models"
)

// saveReport narrates one palette store write on stderr. A nil report is
// silent, so callers never check whether reporting is enabled.
type saveReport struct {
	out     io.Writer
	started time.Time
}

func beginSave(out io.Writer, themeName, sourceHash string) *saveReport {
	if !progressEnabled() {
		return nil
	}
	if themeName == "" {
		themeName = "inline"
	}
	fmt.Fprintf(out, "Saving %s [%s]... ", themeName, shortID(sourceHash))
	return &saveReport{out: out, started: time.Now()}
}

// Saved reports the stored record. A record whose timestamps differ was
// already in the store and got refreshed in place.
func (r *saveReport) Saved(record *models.PaletteRecord) {
	if r == nil {
		return
	}
	verb := "stored"
	if !record.CreatedAt.Equal(record.UpdatedAt) {
		verb = "refreshed"
	}
	fmt.Fprintf(r.out, "%s %s, %d roles (%s)\n", verb, shortID(record.ID), record.RoleCount, roundElapsed(time.Since(r.started)))
}

func (r *saveReport) Failed(err error) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, "failed: %v\n", err)
}

func progressEnabled() bool {
	if IsJSONOutput() || IsJSONLOutput() || noProgress {
		return false
	}
	for _, key := range []string{"ANSITHEME_NO_PROGRESS", "NO_PROGRESS"} {
		if _, ok := os.LookupEnv(key); ok {
			return false
		}
	}
	return true
}

func roundElapsed(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
