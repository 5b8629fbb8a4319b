// Package metrics counts what a probe run did, in Prometheus format.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the set of events the request layer and the pipeline report.
type Recorder interface {
	RequestDone(statusCode int)
	RequestFailed()
	Retried(reason string, wait time.Duration)
	PipelineFinished(outcome string, stage string)
}

// Retry reasons.
const (
	ReasonRateLimit = "rate_limit"
	ReasonNetwork   = "network"
)

// Manager keeps the counters on a private registry.
type Manager struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	retries      *prometheus.CounterVec
	backoff      prometheus.Counter
	pipelineRuns *prometheus.CounterVec
}

// NewManager creates the counters on a fresh registry.
func NewManager() *Manager {
	m := &Manager{registry: prometheus.NewRegistry()}
	auto := promauto.With(m.registry)

	m.requests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leagueprobe",
		Name:      "requests_total",
		Help:      "Riot API attempts by HTTP status, or \"error\" for transport failures.",
	}, []string{"status"})

	m.retries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leagueprobe",
		Name:      "retries_total",
		Help:      "Retries scheduled by the request layer.",
	}, []string{"reason"})

	m.backoff = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "leagueprobe",
		Name:      "backoff_seconds_total",
		Help:      "Time spent waiting before retries.",
	})

	m.pipelineRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leagueprobe",
		Name:      "pipeline_runs_total",
		Help:      "Finished pipeline runs by outcome and last stage.",
	}, []string{"outcome", "stage"})

	return m
}

func (m *Manager) RequestDone(statusCode int) {
	m.requests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (m *Manager) RequestFailed() {
	m.requests.WithLabelValues("error").Inc()
}

func (m *Manager) Retried(reason string, wait time.Duration) {
	m.retries.WithLabelValues(reason).Inc()
	m.backoff.Add(wait.Seconds())
}

func (m *Manager) PipelineFinished(outcome string, stage string) {
	m.pipelineRuns.WithLabelValues(outcome, stage).Inc()
}

// Registry exposes the gatherer, mostly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile dumps the counters in the node exporter textfile format.
func (m *Manager) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Nop discards every event.
type Nop struct{}

func (Nop) RequestDone(int)                 {}
func (Nop) RequestFailed()                  {}
func (Nop) Retried(string, time.Duration)   {}
func (Nop) PipelineFinished(string, string) {}
