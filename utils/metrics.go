package utils

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "gol"

// Metrics are the Prometheus collectors for a running game. Each Metrics
// owns its registry so that several games (or tests) never collide.
type Metrics struct {
	registry *prometheus.Registry

	Generations  prometheus.Counter
	Population   prometheus.Gauge
	DeadCells    prometheus.Gauge
	TickDuration prometheus.Histogram
	Restarts     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generations_total",
			Help:      "Total number of generations computed",
		}),
		Population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "population",
			Help:      "Living cells in the current generation",
		}),
		DeadCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "dead_cells",
			Help:      "Dead cells inside the bounding box of the current generation",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "tick_duration_seconds",
			Help:      "Time taken to compute one generation",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		Restarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "restarts_total",
			Help:      "Game restarts by reason",
		}, []string{"reason"}),
	}
	m.registry.MustRegister(m.Generations, m.Population, m.DeadCells, m.TickDuration, m.Restarts)
	return m
}

// ObserveTick records one computed generation
func (m *Metrics) ObserveTick(population, deadCells int, took time.Duration) {
	m.Generations.Inc()
	m.Population.Set(float64(population))
	m.DeadCells.Set(float64(deadCells))
	m.TickDuration.Observe(took.Seconds())
}

// ObserveRestart counts a restart for the given reason
func (m *Metrics) ObserveRestart(reason string) {
	m.Restarts.WithLabelValues(reason).Inc()
}

// Registry exposes the registry the collectors live in
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
