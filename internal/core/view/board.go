package view

import (
	"slices"

	"github.com/bornholm/procuradoria/internal/core/model"
)

type BoardFilter struct {
	Procurador string `json:"procurador"`
	Assessor   string `json:"assessor"`
}

type Column struct {
	Status model.Status `json:"status"`
	Label  string       `json:"label"`
	Count  int          `json:"count"`
	Tasks  []model.Task `json:"tasks"`
}

type BoardProjection struct {
	Filter  BoardFilter `json:"filter"`
	Columns []Column    `json:"columns"`
	// Table holds every matching task that is not finished.
	Table []model.Task `json:"table"`
	// Unplaced holds matching tasks whose status has no column.
	Unplaced []model.Task `json:"unplaced"`
	Total    int          `json:"total"`
}

// Board builds the desk of an attorney: one column per workflow status,
// keeping the input order inside each column.
func Board(tasks []model.Task, f BoardFilter) BoardProjection {
	columns := make([]Column, len(model.Statuses))
	index := make(map[model.Status]int, len(model.Statuses))

	for i, s := range model.Statuses {
		columns[i] = Column{
			Status: s,
			Label:  model.DisplayStatus(s),
			Tasks:  make([]model.Task, 0),
		}
		index[s] = i
	}

	projection := BoardProjection{
		Filter:   f,
		Table:    make([]model.Task, 0),
		Unplaced: make([]model.Task, 0),
	}

	for _, t := range tasks {
		if !matchesProcurador(t, f.Procurador) || !matchesAssessor(t, f.Assessor) {
			continue
		}

		projection.Total++

		if i, exists := index[t.Status]; exists {
			columns[i].Tasks = append(columns[i].Tasks, t)
			columns[i].Count++
		} else {
			projection.Unplaced = append(projection.Unplaced, t)
		}

		if !t.IsFinished() {
			projection.Table = append(projection.Table, t)
		}
	}

	projection.Columns = columns

	return projection
}

// Assessors lists the staff members currently responsible for at least one
// task, sorted by name.
func Assessors(tasks []model.Task) []string {
	seen := make(map[string]struct{})
	assessors := make([]string, 0)

	for _, t := range tasks {
		if !t.IsAssigned() {
			continue
		}

		if _, exists := seen[t.Responsible]; exists {
			continue
		}

		seen[t.Responsible] = struct{}{}
		assessors = append(assessors, t.Responsible)
	}

	slices.Sort(assessors)

	return assessors
}
