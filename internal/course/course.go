package course

import (
	"fmt"
	"strconv"
	"strings"
)

// Course represents one section row scraped from the Buscacursos results table.
type Course struct {
	School                  string    `json:"school,omitempty"`
	NCR                     string    `json:"ncr"`
	Code                    string    `json:"code"`
	Section                 int       `json:"section"`
	Name                    string    `json:"name"`
	Credits                 int       `json:"credits"`
	FGArea                  string    `json:"fg_area,omitempty"`
	Format                  string    `json:"format,omitempty"`
	Category                string    `json:"category,omitempty"`
	Campus                  string    `json:"campus"`
	AllowsWithdraw          bool      `json:"allows_withdraw"`
	IsInEnglish             bool      `json:"is_in_english"`
	RequiresSpecialApproval bool      `json:"requires_special_approval"`
	TotalVacancy            int       `json:"total_vacancy"`
	AvailableVacancy        int       `json:"available_vacancy"`
	Teachers                []string  `json:"teachers"`
	Schedule                *Schedule `json:"schedule,omitempty"`
}

// Schedule holds the two views of a section's timetable: Compact mirrors the
// source rows one-to-one, Full expands every row into one Session per
// (day, hour) slot so lookups like "does this meet at W3" stay O(1) per entry.
type Schedule struct {
	Full    []Session `json:"full"`
	Compact []Session `json:"compact"`
}

// Session is a single timetable entry. Module concatenates a day token
// (L, M, W, J, V, S) with an hour block (1..8), e.g. "L3".
// In the Full view Classroom is nil when the page marks it "Por Asignar";
// the Compact view always carries the raw cell text.
type Session struct {
	Classroom *string `json:"classroom"`
	Type      string  `json:"type"`
	Module    string  `json:"module"`
}

// MeetsAt reports whether any expanded session occupies the given module slot.
func (s *Schedule) MeetsAt(module string) bool {
	if s == nil {
		return false
	}
	for _, session := range s.Full {
		if session.Module == module {
			return true
		}
	}
	return false
}

// HasTeachers reports whether the section lists at least one teacher entry,
// which may still be a non-person placeholder such as "Dirección Docente".
func (c *Course) HasTeachers() bool {
	return len(c.Teachers) > 0
}

// Term identifies an academic period, e.g. 2024-1. Period 3 is the
// summer term (TAV).
type Term struct {
	Year   int `json:"year"`
	Period int `json:"period"`
}

// String renders the term the way the search form encodes it.
func (t Term) String() string {
	return fmt.Sprintf("%d-%d", t.Year, t.Period)
}

// ParseTerm parses a "<year>-<period>" value as found in the term selector.
func ParseTerm(value string) (Term, error) {
	yearRaw, periodRaw, ok := strings.Cut(value, "-")
	if !ok {
		return Term{}, fmt.Errorf("term %q: missing separator", value)
	}
	year, err := strconv.Atoi(yearRaw)
	if err != nil {
		return Term{}, fmt.Errorf("term %q: %w", value, err)
	}
	period, err := strconv.Atoi(periodRaw)
	if err != nil {
		return Term{}, fmt.Errorf("term %q: %w", value, err)
	}
	return Term{Year: year, Period: period}, nil
}
