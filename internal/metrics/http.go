package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameReportExports       = "report_exports_total"
	NameRateLimitedRequests = "rate_limited_requests_total"
)

var ReportExports = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameReportExports,
		Help:      "Total report exports",
		Namespace: Namespace,
	},
	[]string{LabelOutcome},
)

var RateLimitedRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameRateLimitedRequests,
		Help:      "Total requests rejected by the rate limiter",
		Namespace: Namespace,
	},
)
