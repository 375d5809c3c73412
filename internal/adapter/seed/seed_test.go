package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/bornholm/procuradoria/internal/adapter/memory"
	"github.com/bornholm/procuradoria/internal/adapter/seed"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestImportFile(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTaskStore()

	report, err := seed.ImportFile(ctx, store, "testdata/tasks.yml")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := (seed.Report{Created: 3}), report; e != g {
		t.Errorf("report: expected %+v, got %+v", e, g)
	}

	task, err := store.GetByID(ctx, "task-1735689600000")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := model.Task{
		ID:                 "task-1735689600000",
		AttusNumber:        "2025.0001",
		SEINumber:          "SEI-62000.000001/2025-01",
		JudicialNumber:     "0200001-11.2025.8.06.0001",
		InterestedParty:    "Estado do Ceará",
		Type:               "Judicial",
		Status:             model.StatusAdvisory,
		AssignedProcurador: "Caterine",
		Responsible:        "Ana Paula",
		DistributionDate:   "2025-01-01",
		DueDate:            "2025-01-15",
	}

	if expected != task {
		t.Errorf("task: expected %s, got %s", spew.Sdump(expected), spew.Sdump(task))
	}

	report, err = seed.ImportFile(ctx, store, "testdata/tasks.yml")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := (seed.Report{Skipped: 3}), report; e != g {
		t.Errorf("report: expected %+v, got %+v", e, g)
	}
}

func TestDecode(t *testing.T) {
	tasks, err := seed.Decode(strings.NewReader(`{"tasks": [{"id": "task-1", "status": "execution"}]}`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(tasks); e != g {
		t.Fatalf("len(tasks): expected %d, got %d", e, g)
	}

	if e, g := model.StatusExecution, tasks[0].Status; e != g {
		t.Errorf("tasks[0].Status: expected %s, got %s", e, g)
	}

	if _, err := seed.Decode(strings.NewReader("tasks:\n  - attusNumber: '1'\n")); !errors.Is(err, seed.ErrMissingID) {
		t.Errorf("err: expected ErrMissingID, got %+v", err)
	}

	tasks, err = seed.Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(tasks); e != g {
		t.Errorf("len(tasks): expected %d, got %d", e, g)
	}
}
