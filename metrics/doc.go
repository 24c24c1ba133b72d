// Package metrics instruments RouteCore with Prometheus counters,
// gauges, and histograms: settled-state counts and query latency labeled
// by algorithm and heuristic, reachability outcomes, budget trips, and
// live-overlay size. A frontier-size gauge (SetFrontierSize) is also
// registered; RouteCore itself does not report to it. Grounded on
// 99souls-ariadne/engine/telemetry/metrics.PrometheusProvider's
// fqname-building and CollectorVec-registration idiom, narrowed to the
// handful of series RouteCore actually needs rather than a full generic
// provider abstraction.
package metrics
