package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	requestsTotal         *prometheus.CounterVec
	latencySeconds        *prometheus.HistogramVec
	errorsTotal           *prometheus.CounterVec
	registrationsTotal    *prometheus.CounterVec
	drivesCompletedTotal  *prometheus.CounterVec
	sweepRunsTotal        prometheus.Counter
	sweepDrivesClosed     prometheus.Counter
	sweepFailuresTotal    prometheus.Counter
	dashboardCacheResults *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the placement API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "placement_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		registrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_registrations_total",
			Help: "Registration attempts by outcome.",
		}, []string{"outcome"})

		drivesCompletedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_drives_completed_total",
			Help: "Drives moved out of Active by trigger source.",
		}, []string{"source"})

		sweepRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "placement_sweep_runs_total",
			Help: "Number of deadline sweep passes executed.",
		})

		sweepDrivesClosed = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "placement_sweep_drives_closed_total",
			Help: "Drives auto-closed by the deadline sweep.",
		})

		sweepFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "placement_sweep_failures_total",
			Help: "Per-drive failures skipped by the deadline sweep.",
		})

		dashboardCacheResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_dashboard_cache_results_total",
			Help: "Dashboard cache lookups by result.",
		}, []string{"result"})

		prometheus.MustRegister(
			requestsTotal,
			latencySeconds,
			errorsTotal,
			registrationsTotal,
			drivesCompletedTotal,
			sweepRunsTotal,
			sweepDrivesClosed,
			sweepFailuresTotal,
			dashboardCacheResults,
		)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the counter for API error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// Registrations exposes the registration outcome counter.
func Registrations() *prometheus.CounterVec {
	RegisterMetrics()
	return registrationsTotal
}

// DrivesCompleted exposes the drive completion counter.
func DrivesCompleted() *prometheus.CounterVec {
	RegisterMetrics()
	return drivesCompletedTotal
}

// SweepRuns exposes the sweep pass counter.
func SweepRuns() prometheus.Counter {
	RegisterMetrics()
	return sweepRunsTotal
}

// SweepDrivesClosed exposes the counter of drives auto-closed by the sweep.
func SweepDrivesClosed() prometheus.Counter {
	RegisterMetrics()
	return sweepDrivesClosed
}

// SweepFailures exposes the counter of per-drive sweep failures.
func SweepFailures() prometheus.Counter {
	RegisterMetrics()
	return sweepFailuresTotal
}

// DashboardCache exposes the dashboard cache result counter.
func DashboardCache() *prometheus.CounterVec {
	RegisterMetrics()
	return dashboardCacheResults
}
