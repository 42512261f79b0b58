package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Endpoint call outcomes recorded by the API metrics.
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeInjected = "injected_failure"
	outcomeError    = "error"
)

// Submission workflow outcomes.
const (
	submissionSuccess      = "success"
	submissionBusinessFail = "business_failure"
	submissionNetworkError = "network_error"
	submissionBlocked      = "validation_blocked"
)

type metrics struct {
	apiCalls    *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

var (
	metricsInstance *metrics
	metricsOnce     sync.Once
	defaultRegistry = prometheus.DefaultRegisterer
)

// newMetrics registers the service metrics once; tests share the instance.
func newMetrics() *metrics {
	metricsOnce.Do(func() {
		metricsInstance = &metrics{
			apiCalls: promauto.With(defaultRegistry).NewCounterVec(prometheus.CounterOpts{
				Name: "simulated_api_calls_total",
				Help: "Total simulated API calls by endpoint and outcome",
			}, []string{"endpoint", "outcome"}),
			submissions: promauto.With(defaultRegistry).NewCounterVec(prometheus.CounterOpts{
				Name: "form_submissions_total",
				Help: "Total form submission workflow runs by form and outcome",
			}, []string{"form", "outcome"}),
		}
	})
	return metricsInstance
}
