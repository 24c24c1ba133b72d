// Package graphmodel defines the immutable, read-only data model TARO plans
// against: EdgeGraph (a CSR-style directed graph), ProfileStore (per-edge
// temporal multiplier curves), and TurnCostMap (per-transition penalties).
//
// None of the three types are ever mutated after construction. They are
// built once by an external loader (out of scope for this package — see
// package routecore for the collaborator contracts) and then shared,
// read-only, across every planner goroutine for the lifetime of a
// RouteCore instance. There is no internal locking because there is
// nothing to protect: a *EdgeGraph never changes shape after NewEdgeGraph
// returns.
//
// Node and edge identifiers are dense integers in [0, N) / [0, E); the
// mapping to external string identifiers is an external collaborator
// (routecore.IdMapper), not a concern of this package.
package graphmodel
