package model

import (
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestSortTasks(t *testing.T) {
	tasks := []Task{
		{ID: "task-1", DistributionDate: "2025-01-10"},
		{ID: "task-2", DueDate: "2025-03-01"},
		{ID: "task-3"},
		{ID: "task-4", DistributionDate: "2025-02-01", DueDate: "2024-01-01"},
		{ID: "task-5", DistributionDate: "garbage"},
		{ID: "task-6", DistributionDate: "2025-01-10"},
	}

	sorted := SortTasks(tasks)

	ids := make([]TaskID, 0, len(sorted))
	for _, task := range sorted {
		ids = append(ids, task.ID)
	}

	expected := []TaskID{"task-2", "task-4", "task-6", "task-1", "task-5", "task-3"}

	if !slices.Equal(expected, ids) {
		t.Errorf("SortTasks: expected %v, got %v", expected, ids)
	}

	if e, g := TaskID("task-1"), tasks[0].ID; e != g {
		t.Errorf("SortTasks should not mutate its input: %s", spew.Sdump(tasks))
	}
}

func TestSortTasksSameDistributionDate(t *testing.T) {
	a := Task{ID: "task-1735689600000", DistributionDate: "2025-01-01"}
	b := Task{ID: "task-1735689600500", DistributionDate: "2025-01-01"}

	for _, input := range [][]Task{{a, b}, {b, a}} {
		sorted := SortTasks(input)

		if e, g := b.ID, sorted[0].ID; e != g {
			t.Errorf("sorted[0].ID: expected %s, got %s (input %v)", e, g, input)
		}

		if e, g := a.ID, sorted[1].ID; e != g {
			t.Errorf("sorted[1].ID: expected %s, got %s (input %v)", e, g, input)
		}
	}
}

func TestSortTasksIDsOfDifferentLengths(t *testing.T) {
	older := Task{ID: "task-999", DistributionDate: "2025-01-01"}
	newer := Task{ID: "task-1000", DistributionDate: "2025-01-01"}

	for _, input := range [][]Task{{older, newer}, {newer, older}} {
		sorted := SortTasks(input)

		if e, g := newer.ID, sorted[0].ID; e != g {
			t.Errorf("sorted[0].ID: expected %s, got %s (input %v)", e, g, input)
		}

		if e, g := older.ID, sorted[1].ID; e != g {
			t.Errorf("sorted[1].ID: expected %s, got %s (input %v)", e, g, input)
		}
	}
}
