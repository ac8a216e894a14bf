// SPDX-License-Identifier: MIT

package sim

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/routeopt/route"
)

// Metrics holds the simulation collectors.
type Metrics struct {
	Simulations *prometheus.CounterVec
	Duration    prometheus.Histogram
	LastCost    prometheus.Gauge
	VirtualHops prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Simulations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "routeopt_simulations_total",
			Help: "Total number of simulation runs, labelled by status.",
		}, []string{"status"}),

		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "routeopt_simulation_duration_seconds",
			Help:    "Wall time of a simulation run.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),

		LastCost: f.NewGauge(prometheus.GaugeOpts{
			Name: "routeopt_last_tour_cost",
			Help: "Total cost of the most recent tour; +Inf when unreachable.",
		}),

		VirtualHops: f.NewCounter(prometheus.CounterOpts{
			Name: "routeopt_virtual_hops_total",
			Help: "Total number of virtual hops produced across runs.",
		}),
	}
}

// observe records one finished run. Nil-safe.
func (m *Metrics) observe(r Result) {
	if m == nil {
		return
	}
	m.Simulations.WithLabelValues(r.Status.String()).Inc()
	m.Duration.Observe(r.Elapsed.Seconds())

	switch r.Status {
	case StatusSuccess:
		m.LastCost.Set(float64(r.TotalCost))
	case StatusUnreachable:
		m.LastCost.Set(math.Inf(1))
	}

	m.VirtualHops.Add(float64(route.VirtualCount(r.Hops)))
}
