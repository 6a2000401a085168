package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// The page renders this when a section has nobody assigned.
	missingTeachersRe = regexp.MustCompile(`^Sin Profesores`)

	// Placeholders that are not person names and must pass through as-is.
	nonPersonTeachersRe = regexp.MustCompile(`^(Dirección Docente|Por Fijar)`)
)

// parseTeachers parses the teachers cell into a list of "Last First" names.
// The page lists teachers comma-separated as "First Middle Last"; the family
// name is moved to the front so the list sorts and displays naturally.
func parseTeachers(cell *goquery.Selection) []string {
	raw := cleanText(cell)
	if missingTeachersRe.MatchString(raw) {
		return []string{}
	}
	if nonPersonTeachersRe.MatchString(raw) {
		return []string{raw}
	}

	entries := strings.Split(raw, ", ")
	teachers := make([]string, 0, len(entries))
	for _, entry := range entries {
		teachers = append(teachers, lastNameFirst(entry))
	}
	return teachers
}

// lastNameFirst rewrites "Ana María López" as "López Ana María".
// Single-token names are left untouched.
func lastNameFirst(name string) string {
	parts := strings.Split(name, " ")
	if len(parts) < 2 {
		return name
	}
	last := parts[len(parts)-1]
	return last + " " + strings.Join(parts[:len(parts)-1], " ")
}
