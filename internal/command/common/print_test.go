package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bornholm/procuradoria/internal/core/model"
)

func TestPrintTasks(t *testing.T) {
	var buf bytes.Buffer

	tasks := []model.Task{
		model.Normalize(model.Task{
			ID:               "task-1",
			AttusNumber:      "0001",
			Type:             "Judicial",
			Status:           model.StatusExecution,
			DistributionDate: "2025-05-10",
		}),
		{ID: "task-2"},
	}

	if err := PrintTasks(&buf, tasks); err != nil {
		t.Fatalf("%+v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if e, g := 3, len(lines); e != g {
		t.Fatalf("len(lines): expected %d, got %d\n%s", e, g, buf.String())
	}

	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("expected header line, got %q", lines[0])
	}

	for _, expected := range []string{"task-1", "0001", "Execução", "10/05/2025"} {
		if !strings.Contains(lines[1], expected) {
			t.Errorf("expected %q in %q", expected, lines[1])
		}
	}

	if !strings.Contains(lines[2], model.DefaultType) {
		t.Errorf("expected default type in %q", lines[2])
	}
}
