// Package timing estimates how long an analysis took from the modification
// times of its section files.
//
// The estimate is a heuristic. Clock skew, coarse filesystem timestamps and
// files touched after the run all show up as noise.
package timing

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Unknown is shown when no estimate is available.
const Unknown = "N/A"

// sectionFile matches "section" + ordinal + extension, e.g. section03.html
// or section09-provenance.html.
var sectionFile = regexp.MustCompile(`^section\d+.*\.[A-Za-z0-9]+$`)

// IsSectionFile reports whether name looks like a section output file.
func IsSectionFile(name string) bool {
	return sectionFile.MatchString(name)
}

// Estimate is the elapsed span of a folder's section files.
type Estimate struct {
	Elapsed  time.Duration
	Sections int
	Known    bool
}

// Label returns the formatted elapsed time, or Unknown.
func (e Estimate) Label() string {
	if !e.Known {
		return Unknown
	}
	return FormatElapsed(e.Elapsed)
}

// ForDir stats every section file in dir, following symlinks, and returns the span between the
// oldest and newest modification time. Fewer than two files give an
// estimate with Known set to false.
func ForDir(dir string) (Estimate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Estimate{}, fmt.Errorf("read directory: %w", err)
	}

	var times []time.Time
	for _, e := range entries {
		if e.IsDir() || !IsSectionFile(e.Name()) {
			continue
		}
		// Stat rather than e.Info so symlinked sections report their target's time.
		path := filepath.Join(dir, e.Name())
		info, err := os.Stat(path)
		if err != nil {
			return Estimate{}, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		times = append(times, info.ModTime())
	}

	elapsed, ok := Span(times)
	return Estimate{Elapsed: elapsed, Sections: len(times), Known: ok}, nil
}

// Span returns max(times) - min(times). It returns false for fewer than two times.
func Span(times []time.Time) (time.Duration, bool) {
	if len(times) < 2 {
		return 0, false
	}

	earliest, latest := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(earliest) {
			earliest = t
		}
		if t.After(latest) {
			latest = t
		}
	}
	return latest.Sub(earliest), true
}

// FormatElapsed renders d floored to whole minutes:
// "< 1 min", "N min", "Hh Mm", or "Hh" when the minutes are zero.
func FormatElapsed(d time.Duration) string {
	minutes := int(d / time.Minute)

	switch {
	case minutes < 1:
		return "< 1 min"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	}

	hours, mins := minutes/60, minutes%60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
