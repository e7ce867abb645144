// Package glossary holds the bundled dictionary of exam terms and the
// search filter over it.
package glossary

import (
	"strings"

	"github.com/shlvgit07/basmach/internal/quiz"
)

// Category groups related terms.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryPseudo Category = "pseudo"
	CategoryLogic  Category = "logic"
	CategoryAlgo   Category = "algo"
	CategoryOOP    Category = "oop"
)

// Categories returns the filter selectors in display order, starting with All.
func Categories() []Category {
	return []Category{CategoryAll, CategoryPseudo, CategoryAlgo, CategoryLogic, CategoryOOP}
}

// ParseCategory maps a selector string to a Category. The empty string is
// treated as All.
func ParseCategory(s string) (Category, bool) {
	if s == "" {
		return CategoryAll, true
	}
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Label returns the Hebrew tab label.
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "הכל"
	case CategoryPseudo:
		return "הוראות מחשב"
	case CategoryAlgo:
		return "אלגוריתמים"
	case CategoryLogic:
		return "לוגיקה"
	case CategoryOOP:
		return "מונחה עצמים"
	default:
		return string(c)
	}
}

// Topic returns the quiz topic used when practicing a term of this category.
func (c Category) Topic() quiz.Topic {
	switch c {
	case CategoryLogic:
		return quiz.TopicLogicSeries
	case CategoryAlgo:
		return quiz.TopicAlgorithms
	case CategoryOOP:
		return quiz.TopicOOP
	default:
		return quiz.TopicPseudoCode
	}
}

// Term is one dictionary entry.
type Term struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Description string   `json:"description"`

	// Code is an optional worked example.
	Code string `json:"code,omitempty"`

	Explanation string `json:"explanation"`

	// Illustration is optional SVG markup.
	Illustration string `json:"illustration,omitempty"`
}

// Terms returns a copy of the bundled term list.
func Terms() []Term {
	return append([]Term(nil), bundled...)
}

// Lookup returns the bundled term with the given ID.
func Lookup(id string) (Term, bool) {
	for _, t := range bundled {
		if t.ID == id {
			return t, true
		}
	}
	return Term{}, false
}

// Filter returns the terms whose title or description contains query
// (case-insensitive) and whose category matches. The query is matched as
// typed, whitespace included. CategoryAll matches every category. The input
// order is preserved and terms is not modified.
func Filter(terms []Term, query string, category Category) []Term {
	q := strings.ToLower(query)
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if category != CategoryAll && t.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}
