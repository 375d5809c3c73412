package view

import (
	"time"

	"github.com/bornholm/procuradoria/internal/core/model"
)

// WeekWindowDays is the span of the "due this week" metric, today included.
const WeekWindowDays = 7

type Metric string

const (
	MetricActive  Metric = "active"
	MetricOverdue Metric = "overdue"
	MetricWeek    Metric = "week"
)

var Metrics = []Metric{MetricActive, MetricOverdue, MetricWeek}

func (m Metric) Valid() bool {
	switch m {
	case MetricActive, MetricOverdue, MetricWeek:
		return true
	default:
		return false
	}
}

func (m Metric) Label() string {
	switch m {
	case MetricActive:
		return "Em Andamento"
	case MetricOverdue:
		return "Atrasados"
	case MetricWeek:
		return "Vencendo na Semana"
	default:
		return string(m)
	}
}

// Title is the heading of the drill-down of m for an attorney.
func (m Metric) Title(procurador string) string {
	switch m {
	case MetricActive:
		return "Processos em Andamento - " + procurador
	case MetricOverdue:
		return "Processos Atrasados - " + procurador
	case MetricWeek:
		return "Vencendo na Semana - " + procurador
	default:
		return procurador
	}
}

// predicate returns the selection behind a metric. Unknown metrics select
// the active tasks.
func (m Metric) predicate(today time.Time) func(model.Task) bool {
	switch m {
	case MetricOverdue:
		return func(t model.Task) bool {
			return model.IsOverdue(t.DueDate, today)
		}
	case MetricWeek:
		return func(t model.Task) bool {
			return model.DueWithin(t.DueDate, today, WeekWindowDays)
		}
	default:
		return func(t model.Task) bool { return true }
	}
}

type AttorneyMetrics struct {
	Procurador  string `json:"procurador"`
	Initials    string `json:"initials"`
	Active      int    `json:"active"`
	Overdue     int    `json:"overdue"`
	DueThisWeek int    `json:"dueThisWeek"`
}

// Count returns the value of metric m.
func (a AttorneyMetrics) Count(m Metric) int {
	switch m {
	case MetricOverdue:
		return a.Overdue
	case MetricWeek:
		return a.DueThisWeek
	default:
		return a.Active
	}
}

type DashboardProjection struct {
	Today     string            `json:"today"`
	Attorneys []AttorneyMetrics `json:"attorneys"`
}

// Dashboard computes the workload of each roster attorney over the tasks
// that are not finished.
func Dashboard(tasks []model.Task, roster []string, today time.Time) DashboardProjection {
	attorneys := make([]AttorneyMetrics, 0, len(roster))

	for _, procurador := range roster {
		active := filter(tasks, isActive, assignedTo(procurador))

		attorneys = append(attorneys, AttorneyMetrics{
			Procurador:  procurador,
			Initials:    model.Initials(procurador),
			Active:      len(active),
			Overdue:     len(filter(active, MetricOverdue.predicate(today))),
			DueThisWeek: len(filter(active, MetricWeek.predicate(today))),
		})
	}

	return DashboardProjection{
		Today:     model.StartOfDay(today).Format(model.DateLayout),
		Attorneys: attorneys,
	}
}

type DetailsProjection struct {
	Procurador string       `json:"procurador"`
	Metric     Metric       `json:"metric"`
	Title      string       `json:"title"`
	Tasks      []model.Task `json:"tasks"`
}

// Details returns the tasks counted by a dashboard metric.
func Details(tasks []model.Task, procurador string, metric Metric, today time.Time) DetailsProjection {
	return DetailsProjection{
		Procurador: procurador,
		Metric:     metric,
		Title:      metric.Title(procurador),
		Tasks:      filter(tasks, isActive, assignedTo(procurador), metric.predicate(today)),
	}
}
