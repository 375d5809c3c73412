package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameStoreErrors = "store_errors_total"
	LabelOperation  = "operation"
)

var StoreErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameStoreErrors,
		Help:      "Total failed task store operations",
		Namespace: Namespace,
	},
	[]string{LabelOperation},
)
