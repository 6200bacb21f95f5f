package model

import "strings"

// Category is a coarse tier for a model.
type Category string

// Model categories.
const (
	CategoryPremium  Category = "premium"
	CategoryFast     Category = "fast"
	CategoryBudget   Category = "budget"
	CategoryStandard Category = "standard"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{CategoryPremium, CategoryFast, CategoryBudget, CategoryStandard}
}

// Label returns the badge text for the category.
func (c Category) Label() string {
	switch c {
	case CategoryPremium:
		return "Premium"
	case CategoryFast:
		return "Fast"
	case CategoryBudget:
		return "Budget"
	default:
		return "Standard"
	}
}

// Color returns the badge background color for the category.
func (c Category) Color() string {
	switch c {
	case CategoryPremium:
		return "#667eea"
	case CategoryFast:
		return "#28a745"
	case CategoryBudget:
		return "#6c757d"
	default:
		return "#17a2b8"
	}
}

// rule assigns a category when every marker is present in the lowercased name.
type rule struct {
	all      []string
	any      []string
	category Category
}

func (r rule) matches(name string) bool {
	for _, m := range r.all {
		if !strings.Contains(name, m) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, m := range r.any {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// rules are checked in order; the first match wins.
var rules = []rule{
	{all: []string{"claude", "sonnet"}, category: CategoryPremium},
	{any: []string{"gpt-5", "gemini-2-5-pro", "gemini 2.5 pro"}, category: CategoryPremium},
	{any: []string{"flash", "mini"}, category: CategoryFast},
	{any: []string{"deepseek"}, category: CategoryBudget},
}

// Classify assigns a category to a display name. It never returns an empty category.
func Classify(name string) Category {
	if name == "" {
		return CategoryStandard
	}

	lower := strings.ToLower(name)
	for _, r := range rules {
		if r.matches(lower) {
			return r.category
		}
	}
	return CategoryStandard
}
