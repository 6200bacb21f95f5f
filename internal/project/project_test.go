package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "heading and paragraph",
			src:       "# Widget Co\n\nWidgets for everyone.\nBuilt to last.\n\nSecond paragraph.\n",
			wantTitle: "Widget Co",
			wantDesc:  "Widgets for everyone. Built to last.",
		},
		{
			name:      "paragraph before heading",
			src:       "Intro text first.\n\n# Later Title\n",
			wantTitle: "Later Title",
			wantDesc:  "Intro text first.",
		},
		{
			name:      "subheadings are not titles",
			src:       "## Overview\n\nSome *emphasis* and `code`.\n",
			wantTitle: "",
			wantDesc:  "Some emphasis and code.",
		},
		{
			name:      "inline link keeps its text",
			src:       "# T\n\nSee [the docs](https://example.com) now.\n",
			wantTitle: "T",
			wantDesc:  "See the docs now.",
		},
		{
			name:      "empty document",
			src:       "",
			wantTitle: "",
			wantDesc:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Parse([]byte(tt.src), DefaultLimit)
			assert.Equal(t, tt.wantTitle, info.Title)
			assert.Equal(t, tt.wantDesc, info.Description)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 300))
	assert.Equal(t, "abcdefg", Truncate("abcdefg", 0))
	assert.Equal(t, "ab", Truncate("abcdefg", 2))
	assert.Equal(t, "abc...", Truncate("abc defghij", 6))

	long := strings.Repeat("é", 400)
	got := Truncate(long, 300)
	assert.Equal(t, 300, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()

	t.Run("uses heading", func(t *testing.T) {
		path := filepath.Join(dir, "project.md")
		require.NoError(t, os.WriteFile(path, []byte("# Widget Co\n\nWe make widgets.\n"), 0644))

		info, err := Read(path, DefaultLimit)
		require.NoError(t, err)
		assert.Equal(t, Info{Title: "Widget Co", Description: "We make widgets."}, info)
	})

	t.Run("falls back to file name", func(t *testing.T) {
		path := filepath.Join(dir, "acme_market-study.md")
		require.NoError(t, os.WriteFile(path, []byte("Only a paragraph.\n"), 0644))

		info, err := Read(path, DefaultLimit)
		require.NoError(t, err)
		assert.Equal(t, "Acme Market Study", info.Title)
	})

	t.Run("long description is truncated", func(t *testing.T) {
		path := filepath.Join(dir, "long.md")
		body := "# Long\n\n" + strings.Repeat("word ", 200) + "\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		info, err := Read(path, DefaultLimit)
		require.NoError(t, err)
		assert.LessOrEqual(t, utf8.RuneCountInString(info.Description), DefaultLimit)
		assert.True(t, strings.HasSuffix(info.Description, "..."))
	})

	t.Run("unreadable file", func(t *testing.T) {
		info, err := Read(filepath.Join(dir, "missing.md"), DefaultLimit)
		assert.Error(t, err)
		assert.Equal(t, FallbackTitle, info.Title)
		assert.Equal(t, FallbackDescription, info.Description)
	})
}

func TestDefault(t *testing.T) {
	info := Default("/tmp/analyses/widget-co_launch/")
	assert.Equal(t, "Widget Co Launch", info.Title)
	assert.Equal(t, FallbackDescription, info.Description)
}
