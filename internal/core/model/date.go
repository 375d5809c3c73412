package model

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the storage format of every task date.
const DateLayout = "2006-01-02"

// ParseDate reads the first three dash separated components of an ISO date
// as a calendar date at midnight in loc. Out of range components roll over
// the way calendar arithmetic does (2025-02-30 is 2025-03-02).
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return time.Time{}, false
	}

	values := [3]int{}
	for i := range values {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return time.Time{}, false
		}
		values[i] = v
	}

	return time.Date(values[0], time.Month(values[1]), values[2], 0, 0, 0, 0, loc), true
}

// StartOfDay zeroes the time of day of t in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// IsOverdue reports whether dueDate is strictly before the calendar day of
// today. Empty or malformed dates are never overdue.
func IsOverdue(dueDate string, today time.Time) bool {
	day := StartOfDay(today)

	due, ok := ParseDate(dueDate, day.Location())
	if !ok {
		return false
	}

	return due.Before(day)
}

// DueWithin reports whether dueDate falls in [today, today+days], both ends
// included, at calendar day granularity.
func DueWithin(dueDate string, today time.Time, days int) bool {
	day := StartOfDay(today)

	due, ok := ParseDate(dueDate, day.Location())
	if !ok {
		return false
	}

	limit := day.AddDate(0, 0, days)

	return !due.Before(day) && !due.After(limit)
}

// FormatDate turns YYYY-MM-DD into DD/MM/YYYY. Any other shape is returned
// unchanged.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}

	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}

	for _, p := range parts {
		if !isDigits(p) {
			return iso
		}
	}

	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
