package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/brandgen/internal/orchestration"
)

// Namespace prefixes every metric name.
const Namespace = "brandgen"

// Remote calls take seconds to minutes.
var durationBuckets = []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120}

// Collector records generation attempts and implements
// orchestration.Recorder.
type Collector struct {
	registry *prometheus.Registry

	attempts      *prometheus.CounterVec
	attemptTime   *prometheus.HistogramVec
	stageTime     *prometheus.HistogramVec
	stageFailures *prometheus.CounterVec
}

// New returns a Collector with the Go runtime and process collectors
// registered alongside the generation metrics.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "generation_attempts_total",
			Help:      "Generation attempts by outcome.",
		}, []string{"outcome"}),
		attemptTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall-clock duration of generation attempts.",
			Buckets:   durationBuckets,
		}, []string{"outcome"}),
		stageTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of remote generation calls.",
			Buckets:   durationBuckets,
		}, []string{"stage", "result"}),
		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "stage_failures_total",
			Help:      "Failed remote generation calls.",
		}, []string{"stage"}),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.attempts, c.attemptTime, c.stageTime, c.stageFailures,
	)
	return c
}

// RecordAttempt counts a finished attempt.
func (c *Collector) RecordAttempt(outcome orchestration.Outcome, d time.Duration) {
	c.attempts.WithLabelValues(string(outcome)).Inc()
	c.attemptTime.WithLabelValues(string(outcome)).Observe(d.Seconds())
}

// RecordStage observes one remote call.
func (c *Collector) RecordStage(stage string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
		c.stageFailures.WithLabelValues(stage).Inc()
	}
	c.stageTime.WithLabelValues(stage, result).Observe(d.Seconds())
}

// Registerer exposes the registry so that other layers can add collectors.
func (c *Collector) Registerer() prometheus.Registerer { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
