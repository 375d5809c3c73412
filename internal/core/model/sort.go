package model

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// SortKey is the date a task is ordered by: its distribution date, or its due
// date when it was never distributed.
func (t Task) SortKey() string {
	if t.DistributionDate != "" {
		return t.DistributionDate
	}

	return t.DueDate
}

// SortTasks returns a copy of tasks ordered by sort key, most recent first.
// Tasks without a readable key come last and ties are ordered by id,
// newest task-<ms> first.
func SortTasks(tasks []Task) []Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, CompareTasks)
	return sorted
}

func CompareTasks(a, b Task) int {
	da, okA := ParseDate(a.SortKey(), time.UTC)
	db, okB := ParseDate(b.SortKey(), time.UTC)

	switch {
	case okA && okB:
		if c := db.Compare(da); c != 0 {
			return c
		}
	case okA:
		return -1
	case okB:
		return 1
	}

	return compareIDs(b.ID, a.ID)
}

// compareIDs orders shorter ids first so that task-<ms> ids follow their
// numeric order across lengths (task-999 before task-1000).
func compareIDs(a, b TaskID) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}

	return strings.Compare(string(a), string(b))
}
