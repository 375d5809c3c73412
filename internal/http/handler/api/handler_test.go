package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/procuradoria/internal/adapter/memory"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/api"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T, tasks ...model.Task) (*api.Handler, *service.Desk) {
	ctx, cancel := context.WithCancel(context.Background())

	store := memory.NewTaskStore()
	for _, task := range tasks {
		if err := store.Create(ctx, task); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	desk := service.NewDesk(store,
		service.WithDeskLocation(time.UTC),
		service.WithDeskClock(func() time.Time { return testNow }),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		desk.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	waitFor(t, func() bool { return len(desk.Tasks()) == len(tasks) && desk.Version() > 0 })

	return api.NewHandler(desk, service.NewReporter(desk, nil, nil)), desk
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for !condition() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func serve(handler http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	return res
}

func decode[T any](t *testing.T, res *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return v
}

func TestTasks(t *testing.T) {
	handler, desk := newTestHandler(t)

	res := serve(handler, http.MethodPost, "/tasks", `{"attusNumber": "2025.0001", "type": "Judicial", "assignedProcurador": "Caterine", "status": "finished"}`)
	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	created := decode[api.TaskResponse](t, res).Task

	if e, g := model.StatusTriage, created.Status; e != g {
		t.Errorf("created.Status: expected %s, got %s", e, g)
	}

	if e, g := "2025-06-01", created.DistributionDate; e != g {
		t.Errorf("created.DistributionDate: expected %s, got %s", e, g)
	}

	waitFor(t, func() bool { return len(desk.Tasks()) == 1 })

	res = serve(handler, http.MethodGet, "/tasks", "")
	list := decode[api.ListTasksResponse](t, res)

	if e, g := 1, len(list.Tasks); e != g {
		t.Fatalf("len(list.Tasks): expected %d, got %d", e, g)
	}

	res = serve(handler, http.MethodGet, "/tasks/"+string(created.ID), "")
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if fetched := decode[api.TaskResponse](t, res).Task; fetched != created {
		t.Errorf("fetched: expected %s, got %s", spew.Sdump(created), spew.Sdump(fetched))
	}

	res = serve(handler, http.MethodPut, "/tasks/"+string(created.ID), `{"attusNumber": "2025.0001", "status": "execution", "interestedParty": "Estado do Ceará"}`)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	if e, g := created.ID, decode[api.TaskResponse](t, res).Task.ID; e != g {
		t.Errorf("replaced.ID: expected %s, got %s", e, g)
	}

	type testCase struct {
		Method string
		Path   string
		Body   string
		Code   int
	}

	testCases := []testCase{
		{Method: http.MethodPost, Path: "/tasks", Body: `{"attusNumber": ""}`, Code: http.StatusBadRequest},
		{Method: http.MethodPost, Path: "/tasks", Body: `not json`, Code: http.StatusBadRequest},
		{Method: http.MethodGet, Path: "/tasks/missing", Code: http.StatusNotFound},
		{Method: http.MethodPut, Path: "/tasks/missing", Body: `{"attusNumber": "1"}`, Code: http.StatusNotFound},
		{Method: http.MethodPatch, Path: "/tasks/missing/status", Body: `{"status": "finished"}`, Code: http.StatusNotFound},
		{Method: http.MethodPatch, Path: "/tasks/" + string(created.ID) + "/status", Body: `{"status": "archived"}`, Code: http.StatusBadRequest},
		{Method: http.MethodPatch, Path: "/tasks/" + string(created.ID) + "/status", Body: `{"status": "correction"}`, Code: http.StatusNoContent},
		{Method: http.MethodGet, Path: "/dashboard/Caterine/unknown", Code: http.StatusNotFound},
		{Method: http.MethodGet, Path: "/reports/export", Code: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		res := serve(handler, tc.Method, tc.Path, tc.Body)
		if e, g := tc.Code, res.Code; e != g {
			t.Errorf("%s %s: expected status %d, got %d (%s)", tc.Method, tc.Path, e, g, res.Body.String())
		}
	}
}

func TestViews(t *testing.T) {
	handler, _ := newTestHandler(t,
		model.Task{ID: "t1", AttusNumber: "1", AssignedProcurador: "Caterine", Responsible: "Ana", Status: model.StatusAdvisory, DueDate: "2025-01-01", DistributionDate: "2025-01-01", Type: "Judicial"},
		model.Task{ID: "t2", AttusNumber: "2", Status: model.StatusTriage, DueDate: "2025-06-03", DistributionDate: "2025-05-20", Type: "Judicial"},
		model.Task{ID: "t3", AttusNumber: "3", AssignedProcurador: "Caterine", Status: model.StatusFinished, DistributionDate: "2025-05-21", Type: "Administrativo"},
	)

	board := decode[view.BoardProjection](t, serve(handler, http.MethodGet, "/board?procurador=Caterine", ""))
	if e, g := 2, board.Total; e != g {
		t.Errorf("board.Total: expected %d, got %d", e, g)
	}

	if e, g := 1, board.Columns[1].Count; e != g {
		t.Errorf("board.Columns[1].Count: expected %d, got %d", e, g)
	}

	all := decode[view.BoardProjection](t, serve(handler, http.MethodGet, "/board", ""))
	if e, g := 3, all.Total; e != g {
		t.Errorf("all.Total: expected %d, got %d", e, g)
	}

	assessors := decode[api.AssessorsResponse](t, serve(handler, http.MethodGet, "/assessors", ""))
	if e, g := []string{"Ana"}, assessors.Assessors; !slices.Equal(e, g) {
		t.Errorf("assessors.Assessors: expected %v, got %v", e, g)
	}

	distribution := decode[view.DistributionProjection](t, serve(handler, http.MethodGet, "/distribution/Judicial?month=2025-05", ""))
	if e, g := 1, len(distribution.Recent); e != g {
		t.Errorf("len(distribution.Recent): expected %d, got %d", e, g)
	}

	dashboard := decode[view.DashboardProjection](t, serve(handler, http.MethodGet, "/dashboard", ""))
	if e, g := 1, dashboard.Attorneys[1].Overdue; e != g {
		t.Errorf("dashboard.Attorneys[1].Overdue: expected %d, got %d", e, g)
	}

	if e, g := 1, dashboard.Attorneys[0].DueThisWeek; e != g {
		t.Errorf("dashboard.Attorneys[0].DueThisWeek: expected %d, got %d", e, g)
	}

	details := decode[view.DetailsProjection](t, serve(handler, http.MethodGet, "/dashboard/Caterine/overdue", ""))
	if e, g := "Processos Atrasados - Caterine", details.Title; e != g {
		t.Errorf("details.Title: expected %s, got %s", e, g)
	}

	reports := decode[view.ReportProjection](t, serve(handler, http.MethodGet, "/reports?procurador=Caterine&status=finished", ""))
	if e, g := 1, len(reports.Rows); e != g {
		t.Errorf("len(reports.Rows): expected %d, got %d", e, g)
	}
}
