// Package metrics exposes the Prometheus counters for the app. A single
// set is registered on the default registry; Default returns it.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AssessmentsTotal  prometheus.Counter
	ValidationErrors  *prometheus.CounterVec
	ReportsEmailed    prometheus.Counter
	ExportsTotal      *prometheus.CounterVec
	DashboardRequests prometheus.Counter
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Default returns the process-wide metrics set, registering it on first use.
func Default() *Metrics {
	once.Do(func() {
		defaultMetrics = &Metrics{
			AssessmentsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "healthbuddy_assessments_total",
				Help: "Completed health assessments.",
			}),
			ValidationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "healthbuddy_validation_errors_total",
				Help: "Rejected submissions by field.",
			}, []string{"field"}),
			ReportsEmailed: promauto.NewCounter(prometheus.CounterOpts{
				Name: "healthbuddy_reports_emailed_total",
				Help: "Health reports sent by email.",
			}),
			ExportsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "healthbuddy_exports_total",
				Help: "Dashboard exports by format.",
			}, []string{"format"}),
			DashboardRequests: promauto.NewCounter(prometheus.CounterOpts{
				Name: "healthbuddy_dashboard_requests_total",
				Help: "Dashboard page loads.",
			}),
		}
	})
	return defaultMetrics
}
