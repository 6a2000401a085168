package scraper

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/osuc/buscacursos/internal/course"
)

func TestBoolValue(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"SI", true},
		{"si", true},
		{" Si ", true},
		{"NO", false},
		{"", false},
		{"N/A", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			cell := cellFromHTML(t, fmt.Sprintf("<table><tr><td>%s</td></tr></table>", tt.raw))
			if got := boolValue(cell); got != tt.want {
				t.Errorf("boolValue(%q) = %v, expected %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIntValue(t *testing.T) {
	cell := cellFromHTML(t, "<table><tr><td>\n  10  \n</td></tr></table>")
	n, err := intValue(cell)
	if err != nil {
		t.Fatalf("intValue failed: %v", err)
	}
	if n != 10 {
		t.Errorf("intValue = %d, expected 10", n)
	}

	cell = cellFromHTML(t, "<table><tr><td>diez</td></tr></table>")
	if _, err := intValue(cell); !errors.Is(err, ErrBadCell) {
		t.Errorf("expected ErrBadCell for non-numeric text, got %v", err)
	}
}

func TestCleanText(t *testing.T) {
	cell := cellFromHTML(t, "<table><tr><td>\n\t <b>Programación</b> \n</td></tr></table>")
	if got := cleanText(cell); got != "Programación" {
		t.Errorf("cleanText = %q, expected %q", got, "Programación")
	}
}

// goodRow builds a full 18-cell result row matching the column table.
func goodRow() string {
	cells := []string{
		"10760", "IIC2233", "SI", "NO", "1", "NO", "", "Presencial", "",
		"Programación Avanzada", "Juan Pérez", "San Joaquín", "10", "100", "15", "0",
		"<table><tr><td>L-W:3</td><td>CLAS</td><td>A1</td></tr></table>", "",
	}
	var b strings.Builder
	b.WriteString("<table><tr class=\"resultadosRowPar\">")
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr></table>")
	return b.String()
}

func TestApplyColumns(t *testing.T) {
	doc := docFromHTML(t, goodRow())
	row := doc.Find("tr[class*=resultados]").First()

	c := &course.Course{}
	if err := applyColumns(c, row.ChildrenFiltered("td")); err != nil {
		t.Fatalf("applyColumns failed: %v", err)
	}

	if c.NCR != "10760" || c.Code != "IIC2233" || c.Section != 1 {
		t.Errorf("identity fields wrong: %+v", c)
	}
	if !c.AllowsWithdraw || c.IsInEnglish || c.RequiresSpecialApproval {
		t.Errorf("boolean fields wrong: %+v", c)
	}
	if c.Credits != 10 || c.TotalVacancy != 100 || c.AvailableVacancy != 15 {
		t.Errorf("numeric fields wrong: %+v", c)
	}
	if len(c.Teachers) != 1 || c.Teachers[0] != "Pérez Juan" {
		t.Errorf("teachers = %v, expected [Pérez Juan]", c.Teachers)
	}
	if c.Schedule == nil || len(c.Schedule.Full) != 2 {
		t.Errorf("schedule not parsed: %+v", c.Schedule)
	}
}

func TestApplyColumnsCellCountMismatch(t *testing.T) {
	doc := docFromHTML(t, `<table><tr class="resultadosRowPar"><td>10760</td><td>IIC2233</td></tr></table>`)
	row := doc.Find("tr[class*=resultados]").First()

	err := applyColumns(&course.Course{}, row.ChildrenFiltered("td"))
	if !errors.Is(err, ErrRowShape) {
		t.Errorf("expected ErrRowShape, got %v", err)
	}
}

func TestApplyColumnsCoercionFailure(t *testing.T) {
	bad := strings.Replace(goodRow(), "<td>100</td>", "<td>cien</td>", 1)
	doc := docFromHTML(t, bad)
	row := doc.Find("tr[class*=resultados]").First()

	err := applyColumns(&course.Course{}, row.ChildrenFiltered("td"))
	if !errors.Is(err, ErrBadCell) {
		t.Errorf("expected ErrBadCell, got %v", err)
	}
}
