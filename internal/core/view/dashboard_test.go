package view

import (
	"slices"
	"testing"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/davecgh/go-spew/spew"
)

func TestDashboard(t *testing.T) {
	projection := Dashboard(fixtures(), testRoster, testToday)

	expected := []AttorneyMetrics{
		{Procurador: "Lucas Grangeiro", Initials: "LG", Active: 2, Overdue: 1, DueThisWeek: 1},
		{Procurador: "Caterine", Initials: "CA", Active: 4, Overdue: 1, DueThisWeek: 1},
		{Procurador: "Luís Cabral", Initials: "LC", Active: 1, Overdue: 0, DueThisWeek: 0},
	}

	if !slices.Equal(expected, projection.Attorneys) {
		t.Errorf("projection.Attorneys: expected %s, got %s", spew.Sdump(expected), spew.Sdump(projection.Attorneys))
	}

	if e, g := "2025-06-01", projection.Today; e != g {
		t.Errorf("projection.Today: expected %s, got %s", e, g)
	}
}

func TestDetailsMatchDashboard(t *testing.T) {
	tasks := fixtures()
	dashboard := Dashboard(tasks, testRoster, testToday)

	for _, attorney := range dashboard.Attorneys {
		for _, metric := range Metrics {
			details := Details(tasks, attorney.Procurador, metric, testToday)

			if e, g := attorney.Count(metric), len(details.Tasks); e != g {
				t.Errorf("%s/%s: dashboard counts %d, details lists %d", attorney.Procurador, metric, e, g)
			}
		}
	}
}

func TestDetails(t *testing.T) {
	tasks := fixtures()

	overdue := Details(tasks, "Caterine", MetricOverdue, testToday)
	if e, g := []model.TaskID{"t1"}, ids(overdue.Tasks); !slices.Equal(e, g) {
		t.Errorf("overdue: expected %v, got %v", e, g)
	}

	if e, g := "Processos Atrasados - Caterine", overdue.Title; e != g {
		t.Errorf("overdue.Title: expected %q, got %q", e, g)
	}

	week := Details(tasks, "Caterine", MetricWeek, testToday)
	if e, g := []model.TaskID{"t3"}, ids(week.Tasks); !slices.Equal(e, g) {
		t.Errorf("week: expected %v, got %v", e, g)
	}

	active := Details(tasks, "Caterine", MetricActive, testToday)
	if e, g := []model.TaskID{"t7", "t3", "t8", "t1"}, ids(active.Tasks); !slices.Equal(e, g) {
		t.Errorf("active: expected %v, got %v", e, g)
	}
}

func TestScenarioOverdueAdvisoryTask(t *testing.T) {
	tasks := normalized(model.Task{
		ID:                 "t1",
		AssignedProcurador: "Caterine",
		Status:             model.StatusAdvisory,
		DueDate:            "2025-01-01",
		DistributionDate:   "2025-01-01",
		Type:               "Judicial",
	})

	board := Board(tasks, BoardFilter{Procurador: "Caterine", Assessor: All})
	if e, g := []model.TaskID{"t1"}, ids(board.Columns[1].Tasks); board.Columns[1].Status != model.StatusAdvisory || !slices.Equal(e, g) {
		t.Errorf("advisory column: expected %v, got %v", e, g)
	}

	dashboard := Dashboard(tasks, testRoster, testToday)
	caterine := dashboard.Attorneys[1]

	if e, g := 1, caterine.Overdue; e != g {
		t.Errorf("caterine.Overdue: expected %d, got %d", e, g)
	}

	if e, g := 0, caterine.DueThisWeek; e != g {
		t.Errorf("caterine.DueThisWeek: expected %d, got %d", e, g)
	}

	distribution := Distribution(tasks, testRoster, DistributionFilter{Type: "Judicial", Procurador: All})
	if e, g := []model.TaskID{"t1"}, ids(distribution.Recent); !slices.Equal(e, g) {
		t.Errorf("distribution.Recent: expected %v, got %v", e, g)
	}
}

func TestScenarioMissingProcurador(t *testing.T) {
	tasks := normalized(model.Task{
		ID:               "legacy",
		Status:           model.StatusTriage,
		DueDate:          "2025-05-01",
		DistributionDate: "2025-04-01",
		Type:             "Judicial",
	})

	board := Board(tasks, BoardFilter{Procurador: model.LegacyProcurador, Assessor: All})
	if e, g := 1, board.Total; e != g {
		t.Errorf("board.Total: expected %d, got %d", e, g)
	}

	distribution := Distribution(tasks, testRoster, DistributionFilter{Type: "Judicial", Procurador: model.LegacyProcurador})
	if e, g := 1, distribution.Pending[0].Count; e != g {
		t.Errorf("distribution.Pending[0].Count: expected %d, got %d", e, g)
	}
	if e, g := 1, len(distribution.Recent); e != g {
		t.Errorf("len(distribution.Recent): expected %d, got %d", e, g)
	}

	dashboard := Dashboard(tasks, testRoster, testToday)
	if e, g := 1, dashboard.Attorneys[0].Overdue; e != g {
		t.Errorf("dashboard.Attorneys[0].Overdue: expected %d, got %d", e, g)
	}

	reports := Reports(tasks, ReportFilter{Procurador: model.LegacyProcurador, Status: BucketAll})
	if e, g := 1, len(reports.Rows); e != g {
		t.Errorf("len(reports.Rows): expected %d, got %d", e, g)
	}
}
