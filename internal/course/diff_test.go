package course

import "testing"

func section(ncr, code string, number, available int) Course {
	return Course{
		NCR:              ncr,
		Code:             code,
		Section:          number,
		AvailableVacancy: available,
	}
}

func TestDiffAgainstEmptySnapshot(t *testing.T) {
	current := []Course{
		section("10760", "IIC2233", 1, 15),
		section("10761", "IIC2233", 2, 0),
	}

	changes := Diff(nil, current)
	if len(changes.Added) != 2 {
		t.Errorf("expected 2 added sections, got %d", len(changes.Added))
	}
	if len(changes.Removed) != 0 || len(changes.Vacancies) != 0 {
		t.Errorf("expected no removals or vacancy changes, got %+v", changes)
	}
}

func TestDiff(t *testing.T) {
	previous := CreateSnapshot([]Course{
		section("10760", "IIC2233", 1, 15),
		section("10761", "IIC2233", 2, 5),
		section("10765", "IIC2413", 1, 40),
	}, "2026-08-01T00:00:00Z")

	current := []Course{
		section("10760", "IIC2233", 1, 15), // unchanged
		section("10761", "IIC2233", 2, 0),  // filled up
		section("20011", "MAT1630", 2, 3),  // new
	}

	changes := Diff(previous, current)

	if len(changes.Added) != 1 || changes.Added[0].NCR != "20011" {
		t.Errorf("added = %+v, expected only NCR 20011", changes.Added)
	}
	if len(changes.Removed) != 1 || changes.Removed[0].NCR != "10765" {
		t.Errorf("removed = %+v, expected only NCR 10765", changes.Removed)
	}
	if len(changes.Vacancies) != 1 {
		t.Fatalf("expected 1 vacancy change, got %d", len(changes.Vacancies))
	}
	vc := changes.Vacancies[0]
	if vc.NCR != "10761" || vc.Previous != 5 || vc.Current != 0 {
		t.Errorf("vacancy change = %+v, expected 10761 5 -> 0", vc)
	}
	if changes.Empty() {
		t.Error("change set should not be empty")
	}
}

func TestDiffNoChanges(t *testing.T) {
	courses := []Course{section("10760", "IIC2233", 1, 15)}
	previous := CreateSnapshot(courses, "2026-08-01T00:00:00Z")

	changes := Diff(previous, courses)
	if !changes.Empty() {
		t.Errorf("expected empty change set, got %+v", changes)
	}
}

func TestDiffSortsOutput(t *testing.T) {
	current := []Course{
		section("3", "MAT1630", 2, 1),
		section("1", "IIC2233", 2, 1),
		section("2", "IIC2233", 1, 1),
	}

	changes := Diff(nil, current)
	want := []string{"2", "1", "3"} // IIC2233-1, IIC2233-2, MAT1630-2
	for i, w := range want {
		if changes.Added[i].NCR != w {
			t.Errorf("added[%d].NCR = %s, expected %s", i, changes.Added[i].NCR, w)
		}
	}
}
