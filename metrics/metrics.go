// Package metrics exposes Prometheus collectors for knapsack solves.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tdw75/knapsack-problem/knapsack"
)

// Recorder holds the solver collectors. It implements knapsack.Observer.
type Recorder struct {
	// SolvesTotal counts solves by algorithm and outcome ("ok" or "error").
	SolvesTotal *prometheus.CounterVec

	// SolveDuration observes wall-clock solve time by algorithm.
	SolveDuration *prometheus.HistogramVec

	// SearchEventsTotal counts branch-and-bound events by kind:
	// node, pruned, infeasible, incumbent.
	SearchEventsTotal *prometheus.CounterVec

	// FrontierHighWater is the largest frontier seen by the last search.
	FrontierHighWater prometheus.Gauge

	// ObjectiveValue is the objective of the last successful solve by algorithm.
	ObjectiveValue *prometheus.GaugeVec
}

var _ knapsack.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
// Registration errors (e.g. duplicates) are returned unchanged.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_solves_total",
				Help: "Total number of solves by algorithm and outcome",
			},
			[]string{"algo", "outcome"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_solve_duration_seconds",
				Help:    "Wall-clock duration of one solve",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algo"},
		),
		SearchEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_search_events_total",
				Help: "Branch-and-bound search events by kind",
			},
			[]string{"kind"},
		),
		FrontierHighWater: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "knapsack_frontier_high_water",
				Help: "Largest frontier size reached by the last branch-and-bound search",
			},
		),
		ObjectiveValue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "knapsack_objective_value",
				Help: "Objective value of the last successful solve",
			},
			[]string{"algo"},
		),
	}

	for _, c := range []prometheus.Collector{
		r.SolvesTotal, r.SolveDuration, r.SearchEventsTotal, r.FrontierHighWater, r.ObjectiveValue,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveSolve records one finished solve.
func (r *Recorder) ObserveSolve(algo knapsack.Algorithm, sol knapsack.Solution, elapsed time.Duration, err error) {
	name := algo.String()
	r.SolveDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		r.SolvesTotal.WithLabelValues(name, "error").Inc()

		return
	}
	r.SolvesTotal.WithLabelValues(name, "ok").Inc()
	r.ObjectiveValue.WithLabelValues(name).Set(float64(sol.Objective))

	if algo != knapsack.BranchAndBound {
		return
	}
	r.SearchEventsTotal.WithLabelValues("node").Add(float64(sol.Stats.Nodes))
	r.SearchEventsTotal.WithLabelValues("pruned").Add(float64(sol.Stats.Pruned))
	r.SearchEventsTotal.WithLabelValues("infeasible").Add(float64(sol.Stats.Infeasible))
	r.SearchEventsTotal.WithLabelValues("incumbent").Add(float64(sol.Stats.Incumbents))
	r.FrontierHighWater.Set(float64(sol.Stats.MaxFrontier))
}
