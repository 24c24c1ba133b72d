// Package cost implements CostEngine: the pure function that turns one edge
// traversal — at a given departure tick, with a given predecessor edge,
// under resolved temporal/transition policies — into an effective cost.
//
// The engine composes four independent signals (spec §4.2):
//
//  1. base_weight, read straight off graphmodel.EdgeGraph.
//  2. a temporal multiplier sampled from the edge's graphmodel.Profile,
//     either discretely (one bucket) or interpolated (linearly blended
//     between adjacent buckets) — the interpolation arithmetic is
//     grounded on the teacher's dtw package, which blends adjacent
//     samples along a warped time axis the same way.
//  3. a live-traffic penalty from overlay.LiveOverlay.
//  4. a turn penalty from graphmodel.TurnCostMap, honored only in
//     EdgeBased transition mode (forbidden turns always block).
//
// ComputeEdgeCost never allocates and never touches shared mutable state
// beyond the read-only stores and the overlay's lock-free reads: it is
// purely a function of its inputs, matching the "no strategy objects on
// the hot path" design note in spec §9.
package cost
