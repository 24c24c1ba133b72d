// Package planner implements the search layer: dominance-labeled edge-based
// search over graphmodel.EdgeGraph, a bidirectional time-dependent A*
// point-to-point planner, and a one-to-many matrix planner. Every
// allocation-bearing structure here (the labelStore arena, the per-edge
// activeLabelLists, frontier heaps, the reverse best-distance table) is
// meant to be constructed once per (planner, goroutine) pair and reused
// across queries via Reset — the "per-query memory is bounded and
// reusable" requirement (spec §5).
//
// The frontier heaps are grounded on the teacher's dijkstra package: a
// container/heap min-heap with a lazy-decrease-key discipline (push a new
// entry rather than mutate one in place, and skip stale pops by checking
// liveness). Here "stale" is generalized from "already visited" to
// "label has been dominated" — see labelStore and activeLabelLists.
package planner
