package events_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/procuradoria/internal/adapter/memory"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/http/handler/events"
	"github.com/pkg/errors"
)

func TestHandler(t *testing.T) {
	desk := service.NewDesk(memory.NewTaskStore())

	server := httptest.NewServer(events.NewHandler(desk, time.Minute))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := "text/event-stream", res.Header.Get("Content-Type"); e != g {
		t.Errorf("Content-Type: expected %s, got %s", e, g)
	}

	scanner := bufio.NewScanner(res.Body)

	readEventName := func() string {
		for scanner.Scan() {
			line := scanner.Text()
			if name, found := strings.CutPrefix(line, "event: "); found {
				return name
			}
		}
		t.Fatalf("stream closed: %+v", scanner.Err())
		return ""
	}

	if e, g := "hello", readEventName(); e != g {
		t.Fatalf("first event: expected %s, got %s", e, g)
	}

	desk.Notify(service.LevelError, "Erro ao atualizar status.", "task-1")

	if e, g := string(service.EventNotification), readEventName(); e != g {
		t.Errorf("second event: expected %s, got %s", e, g)
	}

	if !scanner.Scan() {
		t.Fatalf("missing event data")
	}

	if data := scanner.Text(); !strings.Contains(data, `"message":"Erro ao atualizar status."`) {
		t.Errorf("unexpected event data: %s", data)
	}
}
