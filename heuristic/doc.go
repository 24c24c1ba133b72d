// Package heuristic implements admissible lower-bound estimators consumed
// by the bidirectional planner: None, Euclidean, Spherical, and Landmark
// (ALT). Each Provider is bound once to a goal node, producing an
// immutable GoalBoundHeuristic whose EstimateFromNode is cheap enough to
// call on every forward frontier push.
//
// Geometry-based providers (Euclidean, Spherical) calibrate a single scale
// factor at construction time: the smallest observed
// base_weight*profile_min_multiplier/distance ratio across all positive-
// distance edges. Multiplying any geometric distance by that factor can
// never overestimate the true minimum cost to cover that distance, which
// is exactly the admissibility property A* requires (spec §4.3).
package heuristic
