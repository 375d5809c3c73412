package gorm

import (
	"time"

	"github.com/bornholm/procuradoria/internal/core/model"
)

type Task struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	AttusNumber     string `gorm:"index"`
	SEINumber       string `gorm:"column:sei_number"`
	JudicialNumber  string
	InterestedParty string

	Type               string `gorm:"index"`
	Status             string `gorm:"index"`
	AssignedProcurador string `gorm:"index"`
	Responsible        string

	DistributionDate string
	DueDate          string
}

func (t *Task) toModel() model.Task {
	return model.Task{
		ID:                 model.TaskID(t.ID),
		AttusNumber:        t.AttusNumber,
		SEINumber:          t.SEINumber,
		JudicialNumber:     t.JudicialNumber,
		InterestedParty:    t.InterestedParty,
		Type:               t.Type,
		Status:             model.Status(t.Status),
		AssignedProcurador: t.AssignedProcurador,
		Responsible:        t.Responsible,
		DistributionDate:   t.DistributionDate,
		DueDate:            t.DueDate,
	}
}

// columns lists every mutable column, zero values included.
func (t *Task) columns() map[string]any {
	return map[string]any{
		"attus_number":        t.AttusNumber,
		"sei_number":          t.SEINumber,
		"judicial_number":     t.JudicialNumber,
		"interested_party":    t.InterestedParty,
		"type":                t.Type,
		"status":              t.Status,
		"assigned_procurador": t.AssignedProcurador,
		"responsible":         t.Responsible,
		"distribution_date":   t.DistributionDate,
		"due_date":            t.DueDate,
	}
}

func fromTask(t model.Task) *Task {
	return &Task{
		ID:                 string(t.ID),
		AttusNumber:        t.AttusNumber,
		SEINumber:          t.SEINumber,
		JudicialNumber:     t.JudicialNumber,
		InterestedParty:    t.InterestedParty,
		Type:               t.Type,
		Status:             string(t.Status),
		AssignedProcurador: t.AssignedProcurador,
		Responsible:        t.Responsible,
		DistributionDate:   t.DistributionDate,
		DueDate:            t.DueDate,
	}
}
