package scraper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/osuc/buscacursos/internal/course"
)

// column binds a position in the results table to the function that parses
// it. A nil parse func means the column carries nothing we keep.
type column struct {
	name  string
	parse func(c *course.Course, cell *goquery.Selection) error
}

// resultColumns mirrors the exact cell order of the Buscacursos results
// table. Built once and shared read-only across all row parses.
var resultColumns = []column{
	{"ncr", func(c *course.Course, cell *goquery.Selection) error {
		c.NCR = cleanText(cell)
		return nil
	}},
	{"code", func(c *course.Course, cell *goquery.Selection) error {
		c.Code = cleanText(cell)
		return nil
	}},
	{"allows_withdraw", func(c *course.Course, cell *goquery.Selection) error {
		c.AllowsWithdraw = boolValue(cell)
		return nil
	}},
	{"is_in_english", func(c *course.Course, cell *goquery.Selection) error {
		c.IsInEnglish = boolValue(cell)
		return nil
	}},
	{"section", func(c *course.Course, cell *goquery.Selection) error {
		n, err := intValue(cell)
		c.Section = n
		return err
	}},
	{"requires_special_approval", func(c *course.Course, cell *goquery.Selection) error {
		c.RequiresSpecialApproval = boolValue(cell)
		return nil
	}},
	{"fg_area", func(c *course.Course, cell *goquery.Selection) error {
		c.FGArea = cleanText(cell)
		return nil
	}},
	{"format", func(c *course.Course, cell *goquery.Selection) error {
		c.Format = cleanText(cell)
		return nil
	}},
	{"category", func(c *course.Course, cell *goquery.Selection) error {
		c.Category = cleanText(cell)
		return nil
	}},
	{"name", func(c *course.Course, cell *goquery.Selection) error {
		c.Name = cleanText(cell)
		return nil
	}},
	{"teachers", func(c *course.Course, cell *goquery.Selection) error {
		c.Teachers = parseTeachers(cell)
		return nil
	}},
	{"campus", func(c *course.Course, cell *goquery.Selection) error {
		c.Campus = cleanText(cell)
		return nil
	}},
	{"credits", func(c *course.Course, cell *goquery.Selection) error {
		n, err := intValue(cell)
		c.Credits = n
		return err
	}},
	{"total_vacancy", func(c *course.Course, cell *goquery.Selection) error {
		n, err := intValue(cell)
		c.TotalVacancy = n
		return err
	}},
	{"available_vacancy", func(c *course.Course, cell *goquery.Selection) error {
		n, err := intValue(cell)
		c.AvailableVacancy = n
		return err
	}},
	{"reserved_vacancy", nil},
	{"schedule", func(c *course.Course, cell *goquery.Selection) error {
		c.Schedule = parseSchedule(cell)
		return nil
	}},
	{"add_to_calendar", nil},
}

// applyColumns runs every column's parser against the row's cells, in
// document order. The cell count must match the column table exactly.
func applyColumns(c *course.Course, cells *goquery.Selection) error {
	if cells.Length() != len(resultColumns) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowShape, cells.Length(), len(resultColumns))
	}

	var err error
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		col := resultColumns[i]
		if col.parse == nil {
			return true
		}
		if parseErr := col.parse(c, cell); parseErr != nil {
			err = fmt.Errorf("column %s: %w", col.name, parseErr)
			return false
		}
		return true
	})
	return err
}

// cleanText trims the surrounding whitespace nested markup leaves behind.
func cleanText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// intValue coerces a cell to an integer.
func intValue(sel *goquery.Selection) (int, error) {
	text := cleanText(sel)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadCell, text)
	}
	return n, nil
}

// boolValue coerces a cell to a boolean. The page renders SI/NO; anything
// other than the affirmative token, malformed input included, reads as false.
func boolValue(sel *goquery.Selection) bool {
	return strings.ToUpper(cleanText(sel)) == "SI"
}
