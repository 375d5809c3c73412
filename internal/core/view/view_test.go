package view

import (
	"time"

	"github.com/bornholm/procuradoria/internal/core/model"
)

var (
	testRoster = []string{"Lucas Grangeiro", "Caterine", "Luís Cabral"}
	testToday  = time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
)

func normalized(tasks ...model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, model.Normalize(t))
	}
	return model.SortTasks(out)
}

func ids(tasks []model.Task) []model.TaskID {
	out := make([]model.TaskID, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func fixtures() []model.Task {
	return normalized(
		model.Task{ID: "t1", AttusNumber: "001", AssignedProcurador: "Caterine", Status: model.StatusAdvisory, DueDate: "2025-01-01", DistributionDate: "2025-01-01", Type: "Judicial"},
		model.Task{ID: "t2", AttusNumber: "002", Status: model.StatusTriage, DueDate: "2025-06-01", DistributionDate: "2025-05-20", Type: "Judicial"},
		model.Task{ID: "t3", AttusNumber: "003", AssignedProcurador: "Caterine", Responsible: "Ana", Status: model.StatusExecution, DueDate: "2025-06-08", DistributionDate: "2025-05-21", Type: "Administrativo"},
		model.Task{ID: "t4", AttusNumber: "004", AssignedProcurador: "Caterine", Responsible: "Ana", Status: model.StatusFinished, DueDate: "2025-05-01", DistributionDate: "2025-04-02", Type: "Judicial"},
		model.Task{ID: "t5", AttusNumber: "005", AssignedProcurador: "Luís Cabral", Responsible: "Bruno", Status: model.StatusCorrection, DueDate: "2025-06-09", Type: "Judicial"},
		model.Task{ID: "t6", AttusNumber: "006", AssignedProcurador: "Lucas Grangeiro", Status: model.StatusExecution, DueDate: "2025-05-31", DistributionDate: "2025-05-02"},
		model.Task{ID: "t7", AttusNumber: "007", AssignedProcurador: "Caterine", Status: model.StatusTriage, DistributionDate: "2025-05-21", Type: "Judicial"},
		model.Task{ID: "t8", AttusNumber: "008", AssignedProcurador: "Caterine", Status: "archived", DueDate: "bad", DistributionDate: "2025-03-03", Type: "Judicial"},
	)
}
