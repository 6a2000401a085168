package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/osuc/buscacursos/internal/course"
)

// missingClassroomRe matches the placeholder the page shows while a room
// has not been assigned, sometimes wrapped in parentheses.
var missingClassroomRe = regexp.MustCompile(`^\(?Por Asignar`)

// parseSchedule reads the nested timetable of a schedule cell. Each
// timetable row holds at least three cells: a day:hour spec, the module
// type (CLAS, LAB, AYU, ...) and a classroom. Returns nil when the cell
// holds no table at all.
func parseSchedule(cell *goquery.Selection) *course.Schedule {
	table := cell.Find("table").First()
	if table.Length() == 0 {
		return nil
	}

	sched := &course.Schedule{
		Full:    make([]course.Session, 0),
		Compact: make([]course.Session, 0),
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			// Malformed timetable row; skip it, keep the rest.
			return
		}

		spec := cleanText(cells.Eq(0))
		moduleType := cleanText(cells.Eq(1))
		classroom := cleanText(cells.Eq(2))

		raw := classroom
		sched.Compact = append(sched.Compact, course.Session{
			Classroom: &raw,
			Type:      moduleType,
			Module:    spec,
		})
		sched.Full = append(sched.Full, expandModules(spec, moduleType, classroom)...)
	})

	return sched
}

// expandModules turns a compact spec like "L-W:3,4" into one session per
// (day, hour) pair: L3, L4, W3, W4. A spec with an empty day or hour part
// expands to nothing while still appearing in the compact view.
func expandModules(spec, moduleType, classroom string) []course.Session {
	days, hours, ok := strings.Cut(spec, ":")
	if !ok || days == "" || hours == "" {
		return nil
	}

	var room *string
	if !missingClassroomRe.MatchString(classroom) {
		room = &classroom
	}

	dayTokens := strings.Split(days, "-")
	hourTokens := strings.Split(hours, ",")

	sessions := make([]course.Session, 0, len(dayTokens)*len(hourTokens))
	for _, d := range dayTokens {
		for _, h := range hourTokens {
			sessions = append(sessions, course.Session{
				Classroom: room,
				Type:      moduleType,
				Module:    d + h,
			})
		}
	}
	return sessions
}
