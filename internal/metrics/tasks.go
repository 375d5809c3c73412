package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTasks            = "tasks"
	NameOverdueTasks     = "overdue_tasks"
	NameAppliedSnapshots = "applied_snapshots_total"
	NameStatusMoves      = "status_moves_total"
	LabelStatus          = "status"
	LabelProcurador      = "procurador"
	LabelOutcome         = "outcome"
)

var Tasks = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name:      NameTasks,
		Help:      "Current tasks by workflow status",
		Namespace: Namespace,
	},
	[]string{LabelStatus},
)

var OverdueTasks = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name:      NameOverdueTasks,
		Help:      "Current overdue tasks by attorney",
		Namespace: Namespace,
	},
	[]string{LabelProcurador},
)

var AppliedSnapshots = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameAppliedSnapshots,
		Help:      "Total store snapshots applied to the desk",
		Namespace: Namespace,
	},
)

var StatusMoves = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameStatusMoves,
		Help:      "Total drag and drop status changes",
		Namespace: Namespace,
	},
	[]string{LabelOutcome},
)
