package client_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/procuradoria/internal/adapter/memory"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/api"
	"github.com/bornholm/procuradoria/pkg/client"
	"github.com/pkg/errors"
)

type fakeRenderer struct{}

func (r *fakeRenderer) Render(ctx context.Context, projection view.ReportProjection, generatedAt time.Time) ([]byte, error) {
	return []byte("<html></html>"), nil
}

type fakeExporter struct{}

func (e *fakeExporter) Export(ctx context.Context, doc port.ReportDocument) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("%PDF-1.4 " + doc.Filename)), nil
}

func newTestClient(t *testing.T) *client.Client {
	ctx, cancel := context.WithCancel(context.Background())

	store := memory.NewTaskStore()
	desk := service.NewDesk(store, service.WithDeskLocation(time.UTC))

	done := make(chan struct{})
	go func() {
		defer close(done)
		desk.Run(ctx)
	}()

	reporter := service.NewReporter(desk, &fakeRenderer{}, &fakeExporter{})

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", api.NewHandler(desk, reporter)))

	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		cancel()
		<-done
	})

	serverURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return client.New(client.WithBaseURL(serverURL))
}

func TestClient(t *testing.T) {
	c := newTestClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := c.CreateTask(ctx, model.Task{
		AttusNumber:        "2025.0042",
		Type:               "Judicial",
		AssignedProcurador: "Luís Cabral",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := c.WaitForStatus(ctx, created.ID, model.StatusTriage, client.WithWaitForPollInterval(10*time.Millisecond)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := c.MoveTask(ctx, created.ID, model.StatusExecution); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	moved, err := c.WaitForStatus(ctx, created.ID, model.StatusExecution, client.WithWaitForPollInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := created.AttusNumber, moved.AttusNumber; e != g {
		t.Errorf("moved.AttusNumber: expected %s, got %s", e, g)
	}

	details, err := c.Details(ctx, "Luís Cabral", view.MetricActive)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(details.Tasks); e != g {
		t.Errorf("len(details.Tasks): expected %d, got %d", e, g)
	}

	board, err := c.Board(ctx, view.BoardFilter{Procurador: "Luís Cabral"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, board.Total; e != g {
		t.Errorf("board.Total: expected %d, got %d", e, g)
	}

	var pdf bytes.Buffer
	if err := c.ExportReport(ctx, view.ReportFilter{Procurador: "Luís Cabral"}, &pdf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.HasPrefix(pdf.String(), "%PDF-") {
		t.Errorf("expected a pdf document, got %q", pdf.String())
	}

	if _, err := c.GetTask(ctx, "missing"); !errors.Is(err, client.ErrNotFound) {
		t.Errorf("GetTask: expected ErrNotFound, got %+v", err)
	}

	if err := c.MoveTask(ctx, created.ID, "archived"); err == nil {
		t.Errorf("MoveTask: expected an error for an unknown status")
	}
}

func TestRateLimitTransport(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Retry-After", "0")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		io.WriteString(w, "ok")
	}))
	defer server.Close()

	httpClient := &http.Client{
		Transport: &client.RateLimitTransport{
			MaxRetries:  5,
			DefaultWait: time.Millisecond,
		},
	}

	res, err := httpClient.Get(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected %d, got %d", e, g)
	}

	if e, g := int32(3), calls.Load(); e != g {
		t.Errorf("calls: expected %d, got %d", e, g)
	}
}
