package scraper

import (
	"fmt"
	"testing"
)

func TestParseTeachers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single teacher", "Juan Pérez", []string{"Pérez Juan"}},
		{"two teachers", "Juan Pérez, Ana María López", []string{"Pérez Juan", "López Ana María"}},
		{"middle names", "María José del Río", []string{"Río María José del"}},
		{"missing sentinel", "Sin Profesores", []string{}},
		{"teaching office sentinel", "Dirección Docente", []string{"Dirección Docente"}},
		{"to be determined sentinel", "Por Fijar", []string{"Por Fijar"}},
		{"single token name", "Cher", []string{"Cher"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := cellFromHTML(t, fmt.Sprintf("<table><tr><td> %s </td></tr></table>", tt.raw))
			got := parseTeachers(cell)

			if len(got) != len(tt.want) {
				t.Fatalf("parseTeachers(%q) = %v, expected %v", tt.raw, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("teacher %d = %q, expected %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLastNameFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Juan Pérez", "Pérez Juan"},
		{"Ana María López", "López Ana María"},
		{"Cher", "Cher"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := lastNameFirst(tt.in); got != tt.want {
			t.Errorf("lastNameFirst(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
