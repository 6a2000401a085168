package course

import "testing"

func TestParseTerm(t *testing.T) {
	tests := []struct {
		value   string
		want    Term
		wantErr bool
	}{
		{"2024-1", Term{Year: 2024, Period: 1}, false},
		{"2024-3", Term{Year: 2024, Period: 3}, false},
		{"garbage", Term{}, true},
		{"2024-", Term{}, true},
		{"-1", Term{}, true},
		{"", Term{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseTerm(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTerm(%q) should fail", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTerm(%q) failed: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ParseTerm(%q) = %v, expected %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestTermString(t *testing.T) {
	term := Term{Year: 2024, Period: 2}
	if term.String() != "2024-2" {
		t.Errorf("Term.String() = %q, expected 2024-2", term.String())
	}
}

func TestScheduleMeetsAt(t *testing.T) {
	room := "A1"
	sched := &Schedule{
		Full: []Session{
			{Classroom: &room, Type: "CLAS", Module: "L3"},
			{Classroom: nil, Type: "LAB", Module: "J4"},
		},
	}

	if !sched.MeetsAt("L3") || !sched.MeetsAt("J4") {
		t.Error("expected schedule to meet at L3 and J4")
	}
	if sched.MeetsAt("V1") {
		t.Error("schedule should not meet at V1")
	}

	var empty *Schedule
	if empty.MeetsAt("L3") {
		t.Error("nil schedule should never match a slot")
	}
}
