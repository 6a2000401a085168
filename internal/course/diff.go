package course

import (
	"sort"
)

// Snapshot represents the sections returned by one scrape at a point in time
type Snapshot struct {
	ScrapeID  string            `json:"scrape_id,omitempty"`
	Courses   map[string]Course `json:"courses"` // keyed by NCR
	UpdatedAt string            `json:"updated_at"`
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Courses: make(map[string]Course),
	}
}

// CreateSnapshot creates a snapshot from a list of courses
func CreateSnapshot(courses []Course, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.UpdatedAt = updatedAt
	for _, c := range courses {
		snap.Courses[c.NCR] = c
	}
	return snap
}

// VacancyChange records a shift in available seats for a section present
// in both scrapes.
type VacancyChange struct {
	NCR      string `json:"ncr"`
	Code     string `json:"code"`
	Section  int    `json:"section"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
}

// ChangeSet contains the result of comparing a scrape against the previous
// snapshot: sections that appeared, sections that disappeared, and sections
// whose available vacancy moved.
type ChangeSet struct {
	Added     []Course        `json:"added"`
	Removed   []Course        `json:"removed"`
	Vacancies []VacancyChange `json:"vacancies"`
}

// Empty reports whether the comparison found no differences.
func (cs *ChangeSet) Empty() bool {
	return len(cs.Added) == 0 && len(cs.Removed) == 0 && len(cs.Vacancies) == 0
}

// Diff compares current courses against a previous snapshot.
func Diff(previous *Snapshot, current []Course) *ChangeSet {
	result := &ChangeSet{
		Added:     make([]Course, 0),
		Removed:   make([]Course, 0),
		Vacancies: make([]VacancyChange, 0),
	}

	if previous == nil {
		previous = NewSnapshot()
	}

	seen := make(map[string]bool, len(current))
	for _, c := range current {
		seen[c.NCR] = true

		prev, exists := previous.Courses[c.NCR]
		if !exists {
			result.Added = append(result.Added, c)
			continue
		}
		if prev.AvailableVacancy != c.AvailableVacancy {
			result.Vacancies = append(result.Vacancies, VacancyChange{
				NCR:      c.NCR,
				Code:     c.Code,
				Section:  c.Section,
				Previous: prev.AvailableVacancy,
				Current:  c.AvailableVacancy,
			})
		}
	}

	for ncr, prev := range previous.Courses {
		if !seen[ncr] {
			result.Removed = append(result.Removed, prev)
		}
	}

	// Sort for consistent output
	sortCourses(result.Added)
	sortCourses(result.Removed)
	sort.Slice(result.Vacancies, func(i, j int) bool {
		if result.Vacancies[i].Code != result.Vacancies[j].Code {
			return result.Vacancies[i].Code < result.Vacancies[j].Code
		}
		return result.Vacancies[i].Section < result.Vacancies[j].Section
	})

	return result
}

func sortCourses(courses []Course) {
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].Code != courses[j].Code {
			return courses[i].Code < courses[j].Code
		}
		return courses[i].Section < courses[j].Section
	})
}
