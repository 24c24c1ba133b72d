package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "taro"

// Metrics holds the Prometheus collectors RouteCore reports against. The
// zero value is not usable; construct with New.
type Metrics struct {
	routeLatency    *prom.HistogramVec
	routeSettled    *prom.HistogramVec
	routeReachable  *prom.CounterVec
	routeBudgetHit  *prom.CounterVec
	matrixLatency   *prom.HistogramVec
	matrixCells     *prom.CounterVec
	frontierSize    *prom.GaugeVec
	liveOverlaySize prom.Gauge
}

// New registers RouteCore's collectors against reg and returns the
// handle used to report observations. Passing the same *prom.Registry
// to multiple New calls (e.g. in tests) registers each collector once;
// callers that need isolation should pass a fresh prom.NewRegistry().
func New(reg *prom.Registry) *Metrics {
	m := &Metrics{
		routeLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "latency_seconds",
			Help:      "Wall-clock duration of a single route() call.",
			Buckets:   prom.DefBuckets,
		}, []string{"algorithm", "heuristic"}),
		routeSettled: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "settled_states",
			Help:      "Number of states settled during a route() call.",
			Buckets:   prom.ExponentialBuckets(4, 2, 16),
		}, []string{"algorithm", "heuristic"}),
		routeReachable: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "total",
			Help:      "Completed route() calls by reachability outcome.",
		}, []string{"algorithm", "heuristic", "reachable"}),
		routeBudgetHit: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "budget_exceeded_total",
			Help:      "route() calls aborted by a search budget, by reason code.",
		}, []string{"reason"}),
		matrixLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "matrix",
			Name:      "latency_seconds",
			Help:      "Wall-clock duration of a single matrix() call.",
			Buckets:   prom.DefBuckets,
		}, []string{"algorithm"}),
		matrixCells: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "matrix",
			Name:      "cells_total",
			Help:      "Matrix cells produced, by reachability outcome.",
		}, []string{"reachable"}),
		frontierSize: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "frontier_size",
			Help:      "Combined forward/backward frontier size at query completion.",
		}, []string{"lane"}),
		liveOverlaySize: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Subsystem: "overlay",
			Name:      "live_entries",
			Help:      "Current number of live entries held by the overlay.",
		}),
	}

	for _, c := range []prom.Collector{
		m.routeLatency, m.routeSettled, m.routeReachable, m.routeBudgetHit,
		m.matrixLatency, m.matrixCells, m.frontierSize, m.liveOverlaySize,
	} {
		// Best effort: AlreadyRegisteredError only occurs when a caller
		// shares one registry across multiple New calls (e.g. in tests);
		// the already-registered collector keeps serving observations.
		_ = reg.Register(c)
	}

	return m
}

// ObserveRoute records one completed route() call.
func (m *Metrics) ObserveRoute(algorithm, heuristic string, reachable bool, settled int, dur time.Duration) {
	m.routeLatency.WithLabelValues(algorithm, heuristic).Observe(dur.Seconds())
	m.routeSettled.WithLabelValues(algorithm, heuristic).Observe(float64(settled))
	m.routeReachable.WithLabelValues(algorithm, heuristic, boolLabel(reachable)).Inc()
}

// ObserveRouteBudgetExceeded records a route() call aborted by a search
// budget, tagged with a low-cardinality label naming the exceeded budget
// kind (e.g. "settled_states").
func (m *Metrics) ObserveRouteBudgetExceeded(reason string) {
	m.routeBudgetHit.WithLabelValues(reason).Inc()
}

// ObserveMatrix records one completed matrix() call and the reachability
// outcome of every cell it produced.
func (m *Metrics) ObserveMatrix(algorithm string, dur time.Duration, reachableCells, unreachableCells int) {
	m.matrixLatency.WithLabelValues(algorithm).Observe(dur.Seconds())
	if reachableCells > 0 {
		m.matrixCells.WithLabelValues("true").Add(float64(reachableCells))
	}
	if unreachableCells > 0 {
		m.matrixCells.WithLabelValues("false").Add(float64(unreachableCells))
	}
}

// SetFrontierSize reports the forward or backward frontier size at the
// end of a query; lane is "forward" or "backward".
func (m *Metrics) SetFrontierSize(lane string, size int) {
	m.frontierSize.WithLabelValues(lane).Set(float64(size))
}

// SetLiveOverlaySize reports the overlay's current entry count.
func (m *Metrics) SetLiveOverlaySize(size int) {
	m.liveOverlaySize.Set(float64(size))
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
