// Package project reads the title and summary shown at the top of the index page.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aldehir/llm-analysis-index/internal/model"
)

// Fallback values used when no project description is available.
const (
	FallbackTitle       = "Project Analysis"
	FallbackDescription = "Multi-model analysis comparison"
	DefaultLimit        = 300
)

const ellipsis = "..."

// Info is the project header of the index page.
type Info struct {
	Title       string
	Description string
}

// Default returns the header used when root has no markdown file.
func Default(root string) Info {
	return Info{
		Title:       model.TitleCase(filepath.Base(filepath.Clean(root))),
		Description: FallbackDescription,
	}
}

// Read parses a markdown file. The title is the first level-1 heading, or the
// file name when there is none. The description is the first paragraph,
// truncated to limit characters. On a read error the fallback Info is
// returned with the error.
func Read(path string, limit int) (Info, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Info{Title: FallbackTitle, Description: FallbackDescription}, fmt.Errorf("read project file: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := Parse(src, limit)
	if info.Title == "" {
		info.Title = model.TitleCase(stem)
	}
	return info, nil
}

// Parse extracts the title and description from markdown source.
// Title is empty when the document has no level-1 heading.
func Parse(src []byte, limit int) Info {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var info Info
	var haveDesc bool
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 1 && info.Title == "" {
				info.Title = plainText(v, src)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if !haveDesc {
				info.Description = plainText(v, src)
				haveDesc = true
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	info.Description = Truncate(info.Description, limit)
	return info
}

// plainText flattens the inline content of n into a single line.
func plainText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		case *ast.AutoLink:
			sb.Write(v.URL(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Truncate shortens s to at most limit characters, ending in "..." when cut.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	cut := strings.TrimRight(string(runes[:limit-len(ellipsis)]), " ")
	return cut + ellipsis
}
