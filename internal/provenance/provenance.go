// Package provenance reads model metadata from an analysis's provenance page.
package provenance

import (
	"fmt"
	"html"
	"io"
	"os"
	"regexp"
	"strings"
)

// Labels that mark each field in the provenance page.
const (
	LabelModel     = "Model"
	LabelProvider  = "Provider"
	LabelGenerated = "Generated"
)

// Extractor kind names accepted by New.
const (
	KindPattern  = "pattern"
	KindDocument = "dom"
)

// Fields holds the metadata found in a provenance page. Empty means not found.
type Fields struct {
	Model     string
	Provider  string
	Generated string
}

// Empty reports whether no field was found.
func (f Fields) Empty() bool {
	return f.Model == "" && f.Provider == "" && f.Generated == ""
}

// Extractor pulls Fields out of provenance content.
type Extractor interface {
	Extract(r io.Reader) (Fields, error)
}

// New returns the extractor registered under kind.
func New(kind string) (Extractor, error) {
	switch kind {
	case "", KindPattern:
		return PatternExtractor{}, nil
	case KindDocument:
		return DocumentExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (valid: %s, %s)", kind, KindPattern, KindDocument)
	}
}

// ExtractFile opens path and runs e over it. On failure the returned Fields are empty.
func ExtractFile(e Extractor, path string) (Fields, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fields{}, fmt.Errorf("open provenance: %w", err)
	}
	defer f.Close()

	fields, err := e.Extract(f)
	if err != nil {
		return Fields{}, fmt.Errorf("parse provenance %s: %w", path, err)
	}
	return fields, nil
}

// PatternExtractor finds "<strong>Label:</strong> value" with regular expressions.
// The value runs up to the next tag and has its entities decoded.
type PatternExtractor struct{}

var (
	modelPattern     = labelPattern(LabelModel)
	providerPattern  = labelPattern(LabelProvider)
	generatedPattern = labelPattern(LabelGenerated)
)

func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`<strong>` + regexp.QuoteMeta(label) + `:</strong>\s*([^<]+)`)
}

// Extract implements Extractor.
func (PatternExtractor) Extract(r io.Reader) (Fields, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Fields{}, fmt.Errorf("read: %w", err)
	}

	content := string(data)
	return Fields{
		Model:     firstMatch(modelPattern, content),
		Provider:  firstMatch(providerPattern, content),
		Generated: firstMatch(generatedPattern, content),
	}, nil
}

func firstMatch(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return html.UnescapeString(strings.TrimSpace(m[1]))
}
