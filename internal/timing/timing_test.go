package timing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "< 1 min"},
		{"59s", 59 * time.Second, "< 1 min"},
		{"61s", 61 * time.Second, "1 min"},
		{"59m59s", 59*time.Minute + 59*time.Second, "59 min"},
		{"exactly one hour", 3600 * time.Second, "1h"},
		{"3660s", 3660 * time.Second, "1h 1m"},
		{"2h flat", 2 * time.Hour, "2h"},
		{"2h 30m 59s", 2*time.Hour + 30*time.Minute + 59*time.Second, "2h 30m"},
		{"negative", -time.Minute, "< 1 min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.in))
		})
	}
}

func TestSpan(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	_, ok := Span(nil)
	assert.False(t, ok)

	_, ok = Span([]time.Time{base})
	assert.False(t, ok)

	d, ok := Span([]time.Time{base.Add(5 * time.Minute), base, base.Add(2 * time.Minute)})
	assert.True(t, ok)
	assert.Equal(t, 5*time.Minute, d)
}

func TestIsSectionFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"section01.html", true},
		{"section9.md", true},
		{"section09-provenance.html", true},
		{"section.html", false},
		{"sectionXX.html", false},
		{"index.html", false},
		{"section01", false},
		{"mysection01.html", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSectionFile(tt.name))
		})
	}
}

func writeAt(t *testing.T, dir, name string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestForDir(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("span across sections", func(t *testing.T) {
		dir := t.TempDir()
		writeAt(t, dir, "section01.html", base)
		writeAt(t, dir, "section02.html", base.Add(20*time.Minute))
		writeAt(t, dir, "section09-provenance.html", base.Add(75*time.Minute))
		// Not a section file; must not stretch the span.
		writeAt(t, dir, "index.html", base.Add(10*time.Hour))

		est, err := ForDir(dir)
		require.NoError(t, err)
		assert.True(t, est.Known)
		assert.Equal(t, 3, est.Sections)
		assert.Equal(t, 75*time.Minute, est.Elapsed)
		assert.Equal(t, "1h 15m", est.Label())
	})

	t.Run("single section is unknown", func(t *testing.T) {
		dir := t.TempDir()
		writeAt(t, dir, "section01.html", base)

		est, err := ForDir(dir)
		require.NoError(t, err)
		assert.False(t, est.Known)
		assert.Equal(t, 1, est.Sections)
		assert.Equal(t, Unknown, est.Label())
	})

	t.Run("no sections", func(t *testing.T) {
		est, err := ForDir(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Unknown, est.Label())
	})

	t.Run("symlinked section uses target time", func(t *testing.T) {
		dir := t.TempDir()
		store := t.TempDir()
		writeAt(t, dir, "section01.html", base)
		writeAt(t, store, "section02.html", base.Add(40*time.Minute))
		if err := os.Symlink(filepath.Join(store, "section02.html"), filepath.Join(dir, "section02.html")); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}
		// A symlinked directory is not a section file.
		require.NoError(t, os.Mkdir(filepath.Join(store, "section03.d"), 0755))
		require.NoError(t, os.Symlink(filepath.Join(store, "section03.d"), filepath.Join(dir, "section03.d")))

		est, err := ForDir(dir)
		require.NoError(t, err)
		assert.Equal(t, 2, est.Sections)
		assert.Equal(t, 40*time.Minute, est.Elapsed)
		assert.Equal(t, "40 min", est.Label())
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := ForDir(filepath.Join(t.TempDir(), "gone"))
		assert.Error(t, err)
	})
}
