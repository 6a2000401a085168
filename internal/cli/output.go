package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/osuc/buscacursos/internal/course"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteCourses writes a course list in the specified format.
func WriteCourses(w io.Writer, courses []course.Course, format OutputFormat, verbose bool) error {
	if format == FormatJSON {
		return writeJSON(w, courses)
	}

	if len(courses) == 0 {
		fmt.Fprintln(w, "No sections found.")
		return nil
	}

	// Group text output under the owning academic unit, like the page does.
	currentSchool := "\x00"
	for _, c := range courses {
		if c.School != currentSchool {
			currentSchool = c.School
			heading := currentSchool
			if heading == "" {
				heading = "(unknown school)"
			}
			fmt.Fprintf(w, "\n%s\n", heading)
		}

		fmt.Fprintf(w, "  %s-%d  %s  [NRC %s]  %s  %d/%d seats\n",
			c.Code, c.Section, c.Name, c.NCR, c.Campus, c.AvailableVacancy, c.TotalVacancy)

		if verbose {
			if len(c.Teachers) > 0 {
				fmt.Fprintf(w, "      Teachers: %s\n", strings.Join(c.Teachers, "; "))
			}
			if c.Schedule != nil {
				for _, session := range c.Schedule.Compact {
					room := "Por Asignar"
					if session.Classroom != nil && *session.Classroom != "" {
						room = *session.Classroom
					}
					fmt.Fprintf(w, "      %s %s (%s)\n", session.Module, session.Type, room)
				}
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d sections\n", len(courses))
	return nil
}

// WriteTerms writes the available terms in the specified format.
func WriteTerms(w io.Writer, terms []course.Term, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, terms)
	}

	if len(terms) == 0 {
		fmt.Fprintln(w, "No terms found.")
		return nil
	}
	for _, t := range terms {
		fmt.Fprintln(w, t)
	}
	return nil
}

// WriteChanges writes a snapshot diff in the specified format.
func WriteChanges(w io.Writer, changes *course.ChangeSet, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, changes)
	}

	if changes.Empty() {
		fmt.Fprintln(w, "No changes since last check.")
		return nil
	}

	for _, c := range changes.Added {
		fmt.Fprintf(w, "NEW: %s-%d %s [NRC %s]\n", c.Code, c.Section, c.Name, c.NCR)
	}
	for _, c := range changes.Removed {
		fmt.Fprintf(w, "REMOVED: %s-%d %s [NRC %s]\n", c.Code, c.Section, c.Name, c.NCR)
	}
	for _, v := range changes.Vacancies {
		fmt.Fprintf(w, "VACANCY: %s-%d [NRC %s] %d -> %d\n", v.Code, v.Section, v.NCR, v.Previous, v.Current)
	}
	fmt.Fprintf(w, "\n%d added, %d removed, %d vacancy changes\n",
		len(changes.Added), len(changes.Removed), len(changes.Vacancies))
	return nil
}
