// Package metrics exposes conversion statistics in the Prometheus format, both over HTTP and as a
// node-exporter textfile for one-shot CLI runs.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	automaton "github.com/geange/grammar-automaton"
)

// Metrics owns a private registry so tests and embedded servers do not collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	conversions   *prometheus.CounterVec
	skipped       prometheus.Counter
	stageStates   *prometheus.GaugeVec
	stageDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gramdfa_conversions_total",
				Help: "Grammar conversions by result",
			},
			[]string{"result"},
		),
		skipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gramdfa_skipped_alternatives_total",
				Help: "Grammar alternatives ignored because they could not be parsed",
			},
		),
		stageStates: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gramdfa_stage_states",
				Help: "Number of states produced by the last run of each stage",
			},
			[]string{"stage"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gramdfa_stage_duration_seconds",
				Help:    "Duration of each conversion stage",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"stage"},
		),
	}
	m.registry.MustRegister(m.conversions, m.skipped, m.stageStates, m.stageDuration)
	return m
}

// Hooks feeds stage events into the collectors.
func (m *Metrics) Hooks() automaton.Hooks {
	return automaton.Hooks{
		OnStage: func(e automaton.StageEvent) {
			stage := string(e.Stage)
			m.stageStates.WithLabelValues(stage).Set(float64(e.Automaton.NumStates()))
			m.stageDuration.WithLabelValues(stage).Observe(e.Elapsed.Seconds())
		},
		OnSkip: func(string, string) {
			m.skipped.Inc()
		},
	}
}

// ObserveConversion counts one finished conversion.
func (m *Metrics) ObserveConversion(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.conversions.WithLabelValues(result).Inc()
}

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteTextfile atomically writes the registry to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Registry exposes the underlying gatherer.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
