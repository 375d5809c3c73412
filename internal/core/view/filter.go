package view

import (
	"strings"

	"github.com/bornholm/procuradoria/internal/core/model"
)

// All is the filter value matching every task.
const All = "all"

func matchesProcurador(t model.Task, procurador string) bool {
	return procurador == All || t.AssignedProcurador == procurador
}

func matchesAssessor(t model.Task, assessor string) bool {
	return assessor == All || t.Responsible == assessor
}

// matchesMonth reports whether date belongs to month (YYYY-MM). An empty
// month matches everything, an empty date matches no month.
func matchesMonth(date string, month string) bool {
	if month == "" {
		return true
	}

	if date == "" {
		return false
	}

	return strings.HasPrefix(date, month)
}

func filter(tasks []model.Task, predicates ...func(model.Task) bool) []model.Task {
	filtered := make([]model.Task, 0)

	for _, t := range tasks {
		if matchesAll(t, predicates...) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

func matchesAll(t model.Task, predicates ...func(model.Task) bool) bool {
	for _, p := range predicates {
		if !p(t) {
			return false
		}
	}
	return true
}

func isActive(t model.Task) bool {
	return !t.IsFinished()
}

func assignedTo(procurador string) func(model.Task) bool {
	return func(t model.Task) bool {
		return matchesProcurador(t, procurador)
	}
}
