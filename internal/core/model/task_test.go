package model

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	task := Normalize(Task{ID: "t1", AttusNumber: "001"})

	if e, g := LegacyProcurador, task.AssignedProcurador; e != g {
		t.Errorf("task.AssignedProcurador: expected %q, got %q", e, g)
	}

	if e, g := Unassigned, task.Responsible; e != g {
		t.Errorf("task.Responsible: expected %q, got %q", e, g)
	}

	if e, g := "", task.Type; e != g {
		t.Errorf("task.Type: expected raw type %q to be kept, got %q", e, g)
	}

	if e, g := DefaultType, task.DisplayType(); e != g {
		t.Errorf("task.DisplayType(): expected %q, got %q", e, g)
	}

	kept := Normalize(Task{AssignedProcurador: "Caterine", Responsible: "Ana Paula"})
	if e, g := "Caterine", kept.AssignedProcurador; e != g {
		t.Errorf("kept.AssignedProcurador: expected %q, got %q", e, g)
	}
	if e, g := "Ana Paula", kept.Responsible; e != g {
		t.Errorf("kept.Responsible: expected %q, got %q", e, g)
	}
}

func TestDisplayStatus(t *testing.T) {
	testCases := map[Status]string{
		StatusTriage:     "Triagem",
		StatusAdvisory:   "Assessoria",
		StatusExecution:  "Execução",
		StatusCorrection: "Correção",
		StatusFinished:   "Finalizado",
		"archived":       "archived",
		"":               "",
	}

	for status, expected := range testCases {
		if e, g := expected, DisplayStatus(status); e != g {
			t.Errorf("DisplayStatus(%q): expected %q, got %q", status, e, g)
		}
	}
}

func TestInitials(t *testing.T) {
	testCases := map[string]string{
		"":                "?",
		Unassigned:        "?",
		"Lucas Grangeiro": "LG",
		"Caterine":        "CA",
		"Luís Cabral":     "LC",
		"Él":              "ÉL",
		"x":               "X",
	}

	for name, expected := range testCases {
		if e, g := expected, Initials(name); e != g {
			t.Errorf("Initials(%q): expected %q, got %q", name, e, g)
		}
	}
}

func TestResponsibleLabels(t *testing.T) {
	unassigned := Normalize(Task{})

	if e, g := "Nenhum", unassigned.ResponsibleLabel("Nenhum"); e != g {
		t.Errorf("ResponsibleLabel: expected %q, got %q", e, g)
	}

	if e, g := "Gabinete", unassigned.ResponsibleFirstName(); e != g {
		t.Errorf("ResponsibleFirstName: expected %q, got %q", e, g)
	}

	assigned := Normalize(Task{Responsible: "Ana Paula Souza"})

	if e, g := "Ana Paula Souza", assigned.ResponsibleLabel("Nenhum"); e != g {
		t.Errorf("ResponsibleLabel: expected %q, got %q", e, g)
	}

	if e, g := "Ana", assigned.ResponsibleFirstName(); e != g {
		t.Errorf("ResponsibleFirstName: expected %q, got %q", e, g)
	}
}

func TestNewTaskID(t *testing.T) {
	now := time.UnixMilli(1735689600123)

	if e, g := TaskID("task-1735689600123"), NewTaskID(now); e != g {
		t.Errorf("NewTaskID: expected %q, got %q", e, g)
	}
}
