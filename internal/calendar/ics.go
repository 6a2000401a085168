package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/osuc/buscacursos/internal/course"
)

// weekdays maps the page's day tokens to weekdays. W is Wednesday because
// M is taken by Tuesday (Martes).
var weekdays = map[byte]time.Weekday{
	'L': time.Monday,
	'M': time.Tuesday,
	'W': time.Wednesday,
	'J': time.Thursday,
	'V': time.Friday,
	'S': time.Saturday,
}

// block holds the wall-clock bounds of an hour block.
type block struct {
	startHour, startMin int
	endHour, endMin     int
}

// blocks maps hour tokens to the official module times.
var blocks = map[string]block{
	"1": {8, 30, 9, 50},
	"2": {10, 0, 11, 20},
	"3": {11, 30, 12, 50},
	"4": {14, 0, 15, 20},
	"5": {15, 30, 16, 50},
	"6": {17, 0, 18, 20},
	"7": {18, 30, 19, 50},
	"8": {20, 0, 21, 20},
}

// BuildICS renders a section's expanded schedule as an iCalendar document
// with one weekly recurring event per (day, hour) session, anchored at each
// session's next occurrence.
func BuildICS(c course.Course) (string, error) {
	if c.Schedule == nil || len(c.Schedule.Full) == 0 {
		return "", fmt.Errorf("section %s-%d has no schedule to export", c.Code, c.Section)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//buscacursos//buscacursos-cli//ES")

	now := time.Now()
	for i, session := range c.Schedule.Full {
		start, end, err := slotTimes(session.Module, now)
		if err != nil {
			return "", fmt.Errorf("session %d: %w", i, err)
		}

		e := cal.AddEvent(fmt.Sprintf("%s-%d@buscacursos.uc.cl", c.NCR, i))
		e.SetDtStampTime(now.UTC())
		e.SetStartAt(start)
		e.SetEndAt(end)
		e.SetSummary(fmt.Sprintf("%s %s (%s)", c.Code, c.Name, session.Type))
		if session.Classroom != nil {
			e.SetLocation(*session.Classroom)
		}
		e.AddRrule("FREQ=WEEKLY")
	}

	return cal.Serialize(), nil
}

// slotTimes resolves a module code like "W3" to the start and end of its
// next occurrence on or after now.
func slotTimes(module string, now time.Time) (time.Time, time.Time, error) {
	if len(module) < 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed module code %q", module)
	}

	day, ok := weekdays[module[0]]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown day token in module %q", module)
	}
	b, ok := blocks[module[1:]]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown hour block in module %q", module)
	}

	date := now
	for date.Weekday() != day {
		date = date.AddDate(0, 0, 1)
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), b.startHour, b.startMin, 0, 0, time.Local)
	end := time.Date(date.Year(), date.Month(), date.Day(), b.endHour, b.endMin, 0, 0, time.Local)
	return start, end, nil
}
