package report

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/aldehir/llm-analysis-index/internal/model"
	"github.com/aldehir/llm-analysis-index/internal/project"
)

var indexTemplate = template.Must(template.New("index").Parse(htmlTemplate))

// TimestampLayout is the format of the generation time shown on the page.
const TimestampLayout = "January 02, 2006 at 03:04 PM"

const defaultLinkTarget = "index.html"

// Entry is one analysis shown on the index page.
type Entry struct {
	Folder      string
	DisplayName string
	Provider    string // empty when unknown
	GeneratedAt string // empty when unknown
	Duration    string
	Category    model.Category
	Sections    int
}

// RenderContext is everything the index page shows.
type RenderContext struct {
	Project     project.Info
	Entries     []Entry
	GeneratedAt string
	// LinkTarget is the file opened inside each analysis folder.
	LinkTarget string
}

// pageData is the value passed to the HTML template.
type pageData struct {
	Title       string
	Description string
	Count       int
	GeneratedAt string
	Categories  []categoryFilter
	Entries     []entryView
}

type categoryFilter struct {
	Name  model.Category
	Label string
}

type entryView struct {
	Entry
	Label string
	Color string
	Href  string
}

// FormatTimestamp formats t for the page header.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// SortEntries orders entries by display name. The sort is stable and
// compares bytes, so it is case-sensitive.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DisplayName < entries[j].DisplayName
	})
}

// Render produces the index page. The output depends only on rc.
func Render(rc RenderContext) (string, error) {
	target := rc.LinkTarget
	if target == "" {
		target = defaultLinkTarget
	}

	entries := make([]Entry, len(rc.Entries))
	copy(entries, rc.Entries)
	SortEntries(entries)

	data := pageData{
		Title:       rc.Project.Title,
		Description: rc.Project.Description,
		Count:       len(entries),
		GeneratedAt: rc.GeneratedAt,
	}
	for _, c := range model.AllCategories() {
		data.Categories = append(data.Categories, categoryFilter{Name: c, Label: c.Label()})
	}
	for _, e := range entries {
		data.Entries = append(data.Entries, entryView{
			Entry: e,
			Label: e.Category.Label(),
			Color: e.Category.Color(),
			Href:  entryHref(e.Folder, target),
		})
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute index template: %w", err)
	}
	return buf.String(), nil
}

// entryHref links to target inside folder. The "./" prefix keeps a colon in
// the folder name from being read as a URL scheme.
func entryHref(folder, target string) string {
	return "./" + url.PathEscape(folder) + "/" + url.PathEscape(target)
}

// WriteIndex renders rc and writes it to dir/name, replacing any existing file.
// It returns the path written.
func WriteIndex(dir, name string, rc RenderContext) (string, error) {
	html, err := Render(rc)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(dir, name)
	if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("write index file: %w", err)
	}
	return outPath, nil
}
