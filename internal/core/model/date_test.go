package model

import (
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 1, 15, 30, 0, 0, time.Local)

	type testCase struct {
		DueDate  string
		Expected bool
	}

	testCases := []testCase{
		{DueDate: "", Expected: false},
		{DueDate: "2025-05", Expected: false},
		{DueDate: "2025", Expected: false},
		{DueDate: "not-a-date", Expected: false},
		{DueDate: "2025-01-01", Expected: true},
		{DueDate: "2025-05-31", Expected: true},
		{DueDate: "2025-06-01", Expected: false},
		{DueDate: "2025-06-02", Expected: false},
		{DueDate: "2026-01-01", Expected: false},
		{DueDate: "2025-5-31", Expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.DueDate, func(t *testing.T) {
			if e, g := tc.Expected, IsOverdue(tc.DueDate, today); e != g {
				t.Errorf("IsOverdue(%q): expected %v, got %v", tc.DueDate, e, g)
			}
		})
	}
}

func TestIsOverdueAtMidnight(t *testing.T) {
	midnight := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	lastSecond := time.Date(2025, 6, 1, 23, 59, 59, 0, time.Local)

	for _, today := range []time.Time{midnight, lastSecond} {
		if IsOverdue("2025-06-01", today) {
			t.Errorf("task due on %s should not be overdue at %s", "2025-06-01", today)
		}

		if !IsOverdue("2025-05-31", today) {
			t.Errorf("task due on %s should be overdue at %s", "2025-05-31", today)
		}
	}
}

func TestDueWithin(t *testing.T) {
	today := time.Date(2025, 6, 1, 18, 0, 0, 0, time.Local)

	type testCase struct {
		DueDate  string
		Expected bool
	}

	testCases := []testCase{
		{DueDate: "", Expected: false},
		{DueDate: "2025-06", Expected: false},
		{DueDate: "2025-05-31", Expected: false},
		{DueDate: "2025-06-01", Expected: true},
		{DueDate: "2025-06-04", Expected: true},
		{DueDate: "2025-06-08", Expected: true},
		{DueDate: "2025-06-09", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.DueDate, func(t *testing.T) {
			if e, g := tc.Expected, DueWithin(tc.DueDate, today, 7); e != g {
				t.Errorf("DueWithin(%q): expected %v, got %v", tc.DueDate, e, g)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	testCases := map[string]string{
		"2025-03-07":    "07/03/2025",
		"":              "",
		"not-a-date":    "not-a-date",
		"2025-03":       "2025-03",
		"07/03/2025":    "07/03/2025",
		"2025-03-07-01": "2025-03-07-01",
	}

	for input, expected := range testCases {
		if e, g := expected, FormatDate(input); e != g {
			t.Errorf("FormatDate(%q): expected %q, got %q", input, e, g)
		}
	}
}

func TestParseDateRollover(t *testing.T) {
	date, ok := ParseDate("2025-02-30", time.UTC)
	if !ok {
		t.Fatalf("ParseDate: expected date to be parsed")
	}

	if e, g := "2025-03-02", date.Format(DateLayout); e != g {
		t.Errorf("date: expected %s, got %s", e, g)
	}
}
