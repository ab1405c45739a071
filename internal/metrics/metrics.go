// Package metrics provides Prometheus instrumentation for the
// scheduling core, exported via an HTTP endpoint in Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every metric the scheduling core emits.
type Registry struct {
	registry prometheus.Registerer

	jobsStarted   prometheus.Counter
	jobsCompleted prometheus.Counter
	jobsFailed    prometheus.Counter

	annealDuration prometheus.Histogram
	finalEnergy    prometheus.Histogram
	queueDepth     prometheus.Gauge
}

// NewRegistry creates and registers every metric against the global
// default registerer. It panics if a metric fails to register — a
// duplicate metric name is a programming error, not a runtime one.
func NewRegistry() *Registry {
	return NewRegistryWithRegisterer(prometheus.DefaultRegisterer)
}

// NewRegistryWithRegisterer creates and registers every metric against
// registerer, mainly for tests that want an isolated registry.
func NewRegistryWithRegisterer(registerer prometheus.Registerer) *Registry {
	r := &Registry{registry: registerer}

	r.jobsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduling_jobs_started_total",
		Help: "Total scheduling jobs that entered RUNNING",
	})
	r.registry.MustRegister(r.jobsStarted)

	r.jobsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduling_jobs_completed_total",
		Help: "Total scheduling jobs that reached COMPLETED",
	})
	r.registry.MustRegister(r.jobsCompleted)

	r.jobsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduling_jobs_failed_total",
		Help: "Total scheduling jobs that reached FAILED",
	})
	r.registry.MustRegister(r.jobsFailed)

	r.annealDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "anneal_duration_seconds",
		Help:    "Wall-clock duration of a full annealing run",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})
	r.registry.MustRegister(r.annealDuration)

	r.finalEnergy = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "anneal_final_energy",
		Help:    "Best energy reached by a completed annealing run",
		Buckets: []float64{0, 10, 100, 1000, 10000, 100000},
	})
	r.registry.MustRegister(r.finalEnergy)

	r.queueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_optimize_queue_depth",
		Help: "Pending schedule:optimize tasks",
	})
	r.registry.MustRegister(r.queueDepth)

	return r
}

// RecordJobStarted increments the started counter.
func (r *Registry) RecordJobStarted() { r.jobsStarted.Inc() }

// RecordJobCompleted increments the completed counter and observes the
// run's wall-clock duration and final energy.
func (r *Registry) RecordJobCompleted(durationSeconds, finalEnergy float64) {
	r.jobsCompleted.Inc()
	r.annealDuration.Observe(durationSeconds)
	r.finalEnergy.Observe(finalEnergy)
}

// RecordJobFailed increments the failed counter.
func (r *Registry) RecordJobFailed() { r.jobsFailed.Inc() }

// SetQueueDepth sets the current pending-task gauge.
func (r *Registry) SetQueueDepth(depth int) {
	r.queueDepth.Set(float64(depth))
}

// Handler returns an http.Handler serving this registry in Prometheus
// exposition format, for mounting at /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry.(prometheus.Gatherer), promhttp.HandlerOpts{})
}
