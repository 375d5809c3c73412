package model

import (
	"fmt"
	"strings"
	"time"
)

type TaskID string

// NewTaskID returns an identifier of the form task-<unix milliseconds>.
func NewTaskID(now time.Time) TaskID {
	return TaskID(fmt.Sprintf("task-%d", now.UnixMilli()))
}

type Status string

const (
	StatusTriage     Status = "triage"
	StatusAdvisory   Status = "advisory"
	StatusExecution  Status = "execution"
	StatusCorrection Status = "correction"
	StatusFinished   Status = "finished"
)

// Statuses lists the workflow steps in board column order.
var Statuses = []Status{
	StatusTriage,
	StatusAdvisory,
	StatusExecution,
	StatusCorrection,
	StatusFinished,
}

func (s Status) Valid() bool {
	switch s {
	case StatusTriage, StatusAdvisory, StatusExecution, StatusCorrection, StatusFinished:
		return true
	default:
		return false
	}
}

var statusLabels = map[Status]string{
	StatusTriage:     "Triagem",
	StatusAdvisory:   "Assessoria",
	StatusExecution:  "Execução",
	StatusCorrection: "Correção",
	StatusFinished:   "Finalizado",
}

// DisplayStatus returns the label of a status code. Unknown codes are
// returned unchanged.
func DisplayStatus(status Status) string {
	if label, exists := statusLabels[status]; exists {
		return label
	}

	return string(status)
}

const (
	// LegacyProcurador owns every task created before the attorney field existed.
	LegacyProcurador = "Lucas Grangeiro"
	Unassigned       = "Unassigned"
	DefaultType      = "Judicial"
)

type Task struct {
	ID                 TaskID `json:"id" yaml:"id"`
	AttusNumber        string `json:"attusNumber" yaml:"attusNumber"`
	SEINumber          string `json:"seiNumber,omitempty" yaml:"seiNumber,omitempty"`
	JudicialNumber     string `json:"judicialNumber,omitempty" yaml:"judicialNumber,omitempty"`
	InterestedParty    string `json:"interestedParty,omitempty" yaml:"interestedParty,omitempty"`
	Type               string `json:"type,omitempty" yaml:"type,omitempty"`
	Status             Status `json:"status" yaml:"status"`
	AssignedProcurador string `json:"assignedProcurador,omitempty" yaml:"assignedProcurador,omitempty"`
	Responsible        string `json:"responsible,omitempty" yaml:"responsible,omitempty"`
	DistributionDate   string `json:"distributionDate,omitempty" yaml:"distributionDate,omitempty"`
	DueDate            string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

// Normalize applies the legacy fallbacks of the stored records. It is applied
// once when a snapshot is read so that downstream code never has to.
//
// The task type is deliberately left as stored: filters compare the raw value.
func Normalize(t Task) Task {
	if t.AssignedProcurador == "" {
		t.AssignedProcurador = LegacyProcurador
	}

	if t.Responsible == "" {
		t.Responsible = Unassigned
	}

	return t
}

// DisplayType returns the task type used on cards and badges.
func (t Task) DisplayType() string {
	if t.Type == "" {
		return DefaultType
	}

	return t.Type
}

func (t Task) IsAssigned() bool {
	return t.Responsible != "" && t.Responsible != Unassigned
}

// ResponsibleLabel returns the responsible name, or fallback when nobody
// handles the task.
func (t Task) ResponsibleLabel(fallback string) string {
	if !t.IsAssigned() {
		return fallback
	}

	return t.Responsible
}

// ResponsibleFirstName is the short name displayed on board cards.
func (t Task) ResponsibleFirstName() string {
	if !t.IsAssigned() {
		return "Gabinete"
	}

	first, _, _ := strings.Cut(t.Responsible, " ")

	return first
}

func (t Task) IsFinished() bool {
	return t.Status == StatusFinished
}

// Initials returns the avatar letters of a person name.
func Initials(name string) string {
	if name == "" || name == Unassigned {
		return "?"
	}

	parts := strings.Split(name, " ")
	if len(parts) > 1 && parts[0] != "" && parts[1] != "" {
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[1]))
	}

	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}

	return strings.ToUpper(string(runes))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
