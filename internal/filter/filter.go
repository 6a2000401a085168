// Package filter provides in-memory filtering over scraped course sections.
//
// Filters narrow a scrape result by academic unit, campus, format, category,
// teaching language, open vacancies, or occupied module slots. It also lists
// the distinct values a set of courses spans, which is what the catalog's
// filter dropdowns are built from.
package filter

import (
	"sort"
	"strings"

	"github.com/osuc/buscacursos/internal/course"
)

// Filter represents course filtering criteria. Zero-valued fields match
// everything.
type Filter struct {
	// Schools matches the owning academic unit, case-insensitive substring.
	Schools []string `json:"schools,omitempty"`

	// Campuses, Formats and Categories match their fields exactly,
	// ignoring case.
	Campuses   []string `json:"campuses,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Categories []string `json:"categories,omitempty"`

	// InEnglish filters by teaching language when non-nil.
	InEnglish *bool `json:"in_english,omitempty"`

	// WithVacancy keeps only sections with seats still available.
	WithVacancy bool `json:"with_vacancy,omitempty"`

	// Modules keeps sections meeting in any of the given slots, e.g. "W3".
	Modules []string `json:"modules,omitempty"`
}

// Apply returns the courses matching every active criterion, preserving
// their order.
func (f *Filter) Apply(courses []course.Course) []course.Course {
	matched := make([]course.Course, 0, len(courses))
	for _, c := range courses {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Matches reports whether a single course passes the filter.
func (f *Filter) Matches(c course.Course) bool {
	if !matchesSubstring(c.School, f.Schools) {
		return false
	}
	if !matchesExact(c.Campus, f.Campuses) {
		return false
	}
	if !matchesExact(c.Format, f.Formats) {
		return false
	}
	if !matchesExact(c.Category, f.Categories) {
		return false
	}
	if f.InEnglish != nil && c.IsInEnglish != *f.InEnglish {
		return false
	}
	if f.WithVacancy && c.AvailableVacancy <= 0 {
		return false
	}
	if len(f.Modules) > 0 {
		any := false
		for _, m := range f.Modules {
			if c.Schedule.MeetsAt(m) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

func matchesSubstring(value string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	lower := strings.ToLower(value)
	for _, w := range wanted {
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func matchesExact(value string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if strings.EqualFold(value, w) {
			return true
		}
	}
	return false
}

// Categories returns the distinct non-empty categories, sorted.
func Categories(courses []course.Course) []string {
	return distinct(courses, func(c course.Course) string { return c.Category })
}

// Areas returns the distinct non-empty general-formation areas, sorted.
func Areas(courses []course.Course) []string {
	return distinct(courses, func(c course.Course) string { return c.FGArea })
}

// Formats returns the distinct non-empty formats, sorted.
func Formats(courses []course.Course) []string {
	return distinct(courses, func(c course.Course) string { return c.Format })
}

// Campuses returns the distinct non-empty campuses, sorted.
func Campuses(courses []course.Course) []string {
	return distinct(courses, func(c course.Course) string { return c.Campus })
}

func distinct(courses []course.Course, key func(course.Course) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, c := range courses {
		v := key(c)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
