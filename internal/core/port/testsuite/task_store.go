package testsuite

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

const snapshotTimeout = 5 * time.Second

func TestTaskStore(t *testing.T, factory func(t *testing.T) (port.TaskStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.TaskStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndGet",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := newTask("task-1")

				if err := store.Create(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				stored, err := store.GetByID(ctx, task.ID)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := task, stored; e != g {
					t.Errorf("stored: expected %s, got %s", spew.Sdump(e), spew.Sdump(g))
				}

				return nil
			},
		},
		{
			Name: "CreateDuplicate",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := newTask("task-1")

				if err := store.Create(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				err := store.Create(ctx, task)
				if !errors.Is(err, port.ErrAlreadyExists) {
					t.Errorf("err: expected port.ErrAlreadyExists, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "GetMissing",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				_, err := store.GetByID(ctx, "missing")
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "Replace",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := newTask("task-1")

				if err := store.Create(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				task.InterestedParty = "Município de Fortaleza"
				task.Responsible = "Ana"
				task.DueDate = ""

				if err := store.Replace(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				stored, err := store.GetByID(ctx, task.ID)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := task, stored; e != g {
					t.Errorf("stored: expected %s, got %s", spew.Sdump(e), spew.Sdump(g))
				}

				if err := store.Replace(ctx, newTask("missing")); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "PatchStatus",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := newTask("task-1")

				if err := store.Create(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				status := model.StatusExecution

				if err := store.Patch(ctx, task.ID, port.TaskPatch{Status: &status}); err != nil {
					return errors.WithStack(err)
				}

				stored, err := store.GetByID(ctx, task.ID)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := model.StatusExecution, stored.Status; e != g {
					t.Errorf("stored.Status: expected %s, got %s", e, g)
				}

				if e, g := task.AttusNumber, stored.AttusNumber; e != g {
					t.Errorf("stored.AttusNumber: expected %s, got %s", e, g)
				}

				if err := store.Patch(ctx, "missing", port.TaskPatch{Status: &status}); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "Subscribe",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				if err := store.Create(ctx, newTask("task-1")); err != nil {
					return errors.WithStack(err)
				}

				snapshots := make(chan []model.Task, 16)

				sub, err := store.Subscribe(ctx, func(tasks []model.Task) {
					snapshots <- tasks
				})
				if err != nil {
					return errors.WithStack(err)
				}

				defer sub.Unsubscribe()

				waitForSnapshot(t, snapshots, func(tasks []model.Task) bool {
					return containsTask(tasks, "task-1")
				})

				if err := store.Create(ctx, newTask("task-2")); err != nil {
					return errors.WithStack(err)
				}

				waitForSnapshot(t, snapshots, func(tasks []model.Task) bool {
					return containsTask(tasks, "task-1") && containsTask(tasks, "task-2")
				})

				status := model.StatusFinished
				if err := store.Patch(ctx, "task-2", port.TaskPatch{Status: &status}); err != nil {
					return errors.WithStack(err)
				}

				waitForSnapshot(t, snapshots, func(tasks []model.Task) bool {
					idx := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == "task-2" })
					return idx != -1 && tasks[idx].Status == model.StatusFinished
				})

				return nil
			},
		},
		{
			Name: "Unsubscribe",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				snapshots := make(chan []model.Task, 16)

				sub, err := store.Subscribe(ctx, func(tasks []model.Task) {
					snapshots <- tasks
				})
				if err != nil {
					return errors.WithStack(err)
				}

				waitForSnapshot(t, snapshots, func(tasks []model.Task) bool {
					return len(tasks) == 0
				})

				sub.Unsubscribe()

				if err := store.Create(ctx, newTask("task-1")); err != nil {
					return errors.WithStack(err)
				}

				select {
				case tasks := <-snapshots:
					t.Errorf("unexpected snapshot after unsubscribe: %s", spew.Sdump(tasks))
				case <-time.After(200 * time.Millisecond):
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}
		})
	}
}

func newTask(id model.TaskID) model.Task {
	return model.Task{
		ID:                 id,
		AttusNumber:        "0001",
		SEINumber:          "SEI-0001",
		JudicialNumber:     "0800001-00.2025.8.06.0001",
		InterestedParty:    "Estado do Ceará",
		Type:               "Judicial",
		Status:             model.StatusTriage,
		AssignedProcurador: "Caterine",
		Responsible:        model.Unassigned,
		DistributionDate:   "2025-05-20",
		DueDate:            "2025-06-01",
	}
}

func containsTask(tasks []model.Task, id model.TaskID) bool {
	return slices.ContainsFunc(tasks, func(t model.Task) bool { return t.ID == id })
}

func waitForSnapshot(t *testing.T, snapshots <-chan []model.Task, match func(tasks []model.Task) bool) {
	t.Helper()

	timeout := time.After(snapshotTimeout)

	for {
		select {
		case tasks := <-snapshots:
			if match(tasks) {
				return
			}
		case <-timeout:
			t.Fatalf("no matching snapshot received after %s", snapshotTimeout)
		}
	}
}
