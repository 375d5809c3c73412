package view

import (
	"github.com/bornholm/procuradoria/internal/core/model"
)

// RecentIntakeLimit caps the rows of the intake log.
const RecentIntakeLimit = 50

type DistributionFilter struct {
	Type       string `json:"type"`
	Procurador string `json:"procurador"`
	Month      string `json:"month"`
}

type PendingCount struct {
	Procurador string `json:"procurador"`
	Count      int    `json:"count"`
}

type DistributionProjection struct {
	Filter  DistributionFilter `json:"filter"`
	Pending []PendingCount     `json:"pending"`
	Recent  []model.Task       `json:"recent"`
}

// Distribution builds the intake screen of a route type. The type is compared
// to the stored value as is: tasks saved without a type belong to no route.
func Distribution(tasks []model.Task, roster []string, f DistributionFilter) DistributionProjection {
	ofType := func(t model.Task) bool {
		return t.Type == f.Type
	}

	pending := make([]PendingCount, 0, len(roster))
	for _, procurador := range roster {
		count := 0
		for _, t := range tasks {
			if t.AssignedProcurador == procurador && isActive(t) && ofType(t) {
				count++
			}
		}
		pending = append(pending, PendingCount{Procurador: procurador, Count: count})
	}

	recent := filter(tasks,
		ofType,
		assignedTo(f.Procurador),
		func(t model.Task) bool {
			return matchesMonth(t.DistributionDate, f.Month)
		},
	)

	if len(recent) > RecentIntakeLimit {
		recent = recent[:RecentIntakeLimit]
	}

	return DistributionProjection{
		Filter:  f,
		Pending: pending,
		Recent:  recent,
	}
}
