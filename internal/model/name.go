package model

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// <base>-YYYYMMDD or <base>-YYYYMMDD-HHMMSS
	compactStamp = regexp.MustCompile(`-\d{8}(-\d{6})?$`)
	// <base>-YYYY-MM-DD followed by anything
	isoStamp = regexp.MustCompile(`-\d{4}-\d{2}-\d{2}.*$`)
	// <project>-analysis-<model> or analysis-<model>
	analysisPrefix = regexp.MustCompile(`^(?:.*?-)?analysis-`)
)

// DisplayName maps a raw substring of a folder name to a canonical model name.
type DisplayName struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// Table is an ordered list of display names.
type Table []DisplayName

// DefaultTable returns the built-in display names.
func DefaultTable() Table {
	return Table{
		{"claude-sonnet-4-5", "Claude Sonnet 4.5"},
		{"claude-sonnet-4", "Claude Sonnet 4"},
		{"gemini-2-5-flash", "Gemini 2.5 Flash"},
		{"gemini-2-5-pro", "Gemini 2.5 Pro"},
		{"gemini-2-0-flash", "Gemini 2.0 Flash"},
		{"gpt-4o-mini", "GPT-4o Mini"},
		{"gpt-4o", "GPT-4o"},
		{"gpt-5", "GPT-5"},
		{"deepseek-r1t2-chimera-free", "DeepSeek R1 Chimera"},
		{"deepseek-r1t2-chimera", "DeepSeek R1 Chimera"},
		{"deepseek-r1", "DeepSeek R1"},
	}
}

// With returns a new table holding t followed by extra. Neither input is modified.
func (t Table) With(extra ...DisplayName) Table {
	out := make(Table, 0, len(t)+len(extra))
	out = append(out, t...)
	return append(out, extra...)
}

// byLength returns the entries ordered longest key first. Ties keep table order.
func (t Table) byLength() Table {
	out := make(Table, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Key) > len(out[j].Key)
	})
	return out
}

// Normalize turns a folder name into a display name using the default table.
func Normalize(folder string) string {
	return DefaultTable().Normalize(folder)
}

// Normalize turns a folder name into a display name.
//
// Timestamp suffixes and an analysis prefix are stripped first. The remaining
// text is matched against the table, longest key first, so that
// "gpt-4o-mini" is not shadowed by "gpt-4o". Unknown names are title-cased.
func (t Table) Normalize(folder string) string {
	cleaned := Clean(folder)

	for _, dn := range t.byLength() {
		if dn.Key != "" && strings.Contains(cleaned, dn.Key) {
			return dn.Name
		}
	}

	return TitleCase(cleaned)
}

// Clean strips date/time suffixes and the analysis prefix from a folder name.
func Clean(folder string) string {
	cleaned := compactStamp.ReplaceAllString(folder, "")
	cleaned = isoStamp.ReplaceAllString(cleaned, "")
	return analysisPrefix.ReplaceAllString(cleaned, "")
}

// TitleCase replaces separators with spaces and capitalizes each word.
// A Caser holds state, so one is built per call.
func TitleCase(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.Und).String(s)
}
