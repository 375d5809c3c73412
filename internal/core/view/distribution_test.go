package view

import (
	"fmt"
	"slices"
	"testing"

	"github.com/bornholm/procuradoria/internal/core/model"
)

func TestDistributionPending(t *testing.T) {
	projection := Distribution(fixtures(), testRoster, DistributionFilter{Type: "Judicial", Procurador: All})

	expected := []PendingCount{
		{Procurador: "Lucas Grangeiro", Count: 1},
		{Procurador: "Caterine", Count: 3},
		{Procurador: "Luís Cabral", Count: 1},
	}

	if !slices.Equal(expected, projection.Pending) {
		t.Errorf("projection.Pending: expected %v, got %v", expected, projection.Pending)
	}
}

func TestDistributionRecent(t *testing.T) {
	type testCase struct {
		Filter   DistributionFilter
		Expected []model.TaskID
	}

	testCases := []testCase{
		{
			Filter:   DistributionFilter{Type: "Judicial", Procurador: All},
			Expected: []model.TaskID{"t5", "t7", "t2", "t4", "t8", "t1"},
		},
		{
			Filter:   DistributionFilter{Type: "Judicial", Procurador: All, Month: "2025-05"},
			Expected: []model.TaskID{"t7", "t2"},
		},
		{
			Filter:   DistributionFilter{Type: "Judicial", Procurador: "Caterine"},
			Expected: []model.TaskID{"t7", "t4", "t8", "t1"},
		},
		{
			Filter:   DistributionFilter{Type: "Administrativo", Procurador: All},
			Expected: []model.TaskID{"t3"},
		},
		{
			Filter:   DistributionFilter{Type: "Judicial", Procurador: "Lucas Grangeiro", Month: "2025-05"},
			Expected: []model.TaskID{"t2"},
		},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%s/%s", tc.Filter.Type, tc.Filter.Procurador, tc.Filter.Month), func(t *testing.T) {
			projection := Distribution(fixtures(), testRoster, tc.Filter)

			if g := ids(projection.Recent); !slices.Equal(tc.Expected, g) {
				t.Errorf("projection.Recent: expected %v, got %v", tc.Expected, g)
			}
		})
	}
}

func TestDistributionRecentLimit(t *testing.T) {
	tasks := make([]model.Task, 0, 60)
	for i := range 60 {
		tasks = append(tasks, model.Task{
			ID:               model.TaskID(fmt.Sprintf("task-%03d", i)),
			Type:             "Judicial",
			Status:           model.StatusTriage,
			DistributionDate: "2025-05-01",
		})
	}

	projection := Distribution(normalized(tasks...), testRoster, DistributionFilter{Type: "Judicial", Procurador: All})

	if e, g := RecentIntakeLimit, len(projection.Recent); e != g {
		t.Fatalf("len(projection.Recent): expected %d, got %d", e, g)
	}

	if e, g := model.TaskID("task-059"), projection.Recent[0].ID; e != g {
		t.Errorf("projection.Recent[0].ID: expected %s, got %s", e, g)
	}

	if e, g := 60, projection.Pending[0].Count; e != g {
		t.Errorf("projection.Pending[0].Count: expected %d, got %d", e, g)
	}
}

func TestDistributionMissingTypeIsNotJudicial(t *testing.T) {
	tasks := normalized(model.Task{ID: "legacy", Status: model.StatusTriage, DistributionDate: "2025-01-01"})

	projection := Distribution(tasks, testRoster, DistributionFilter{Type: "Judicial", Procurador: All})

	if e, g := 0, len(projection.Recent); e != g {
		t.Errorf("len(projection.Recent): expected %d, got %d", e, g)
	}

	if e, g := model.DefaultType, tasks[0].DisplayType(); e != g {
		t.Errorf("DisplayType(): expected %s, got %s", e, g)
	}
}
