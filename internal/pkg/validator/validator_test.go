package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseID(t *testing.T) {
	valid := map[string]int64{
		"1":    1,
		"42":   42,
		"9001": 9001,
	}
	invalid := []string{"", "0", "-5", "abc", "1.5", "1e3"}

	for input, want := range valid {
		got, ok := ParseID(input)
		if !ok || got != want {
			t.Errorf("ParseID(%q) = (%d, %v), want (%d, true)", input, got, ok, want)
		}
	}
	for _, input := range invalid {
		if _, ok := ParseID(input); ok {
			t.Errorf("ParseID(%q) = ok, want invalid", input)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-01-01")
	if !ok {
		t.Fatal("IsValidDate(2024-01-01) = false, want true")
	}
	if date.Year() != 2024 || date.Month() != time.January || date.Day() != 1 {
		t.Errorf("IsValidDate(2024-01-01) parsed to %v", date)
	}

	invalid := []string{"", "2024-13-01", "01.01.2024", "2024-02-30", "not-a-date"}
	for _, input := range invalid {
		if _, ok := IsValidDate(input); ok {
			t.Errorf("IsValidDate(%q) = true, want false", input)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	if _, ok := IsValidYear("2024"); !ok {
		t.Error("IsValidYear(2024) = false, want true")
	}
	for _, input := range []string{"", "0", "-1", "10000", "abc"} {
		if _, ok := IsValidYear(input); ok {
			t.Errorf("IsValidYear(%q) = true, want false", input)
		}
	}
}

func TestIsValidDateRange(t *testing.T) {
	start, _ := IsValidDate("2024-03-01")
	end, _ := IsValidDate("2024-03-31")

	if !IsValidDateRange(start, end) {
		t.Error("IsValidDateRange(start < end) = false, want true")
	}
	if !IsValidDateRange(start, start) {
		t.Error("IsValidDateRange(start == end) = false, want true")
	}
	if IsValidDateRange(end, start) {
		t.Error("IsValidDateRange(start > end) = true, want false")
	}
}

func TestIsInSlice(t *testing.T) {
	orders := []string{"name", "sequence", "sequence-desc"}

	if !IsInSlice("sequence", orders) {
		t.Error("IsInSlice(sequence) = false, want true")
	}
	if IsInSlice("created_at", orders) {
		t.Error("IsInSlice(created_at) = true, want false")
	}
	if IsInSlice("name", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "absence_date", Message: "absence_date is required"},
		{Field: "employee_id", Message: "employee_id is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["absence_date"] != "absence_date is required" {
		t.Errorf("unexpected message: %q", m["absence_date"])
	}
}
