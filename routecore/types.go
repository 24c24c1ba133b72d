package routecore

import (
	"github.com/AayushPS/taro/heuristic"
	"github.com/AayushPS/taro/planner"
)

// Algorithm re-exports planner.Algorithm at the external boundary so
// callers never need to import the planner package directly.
type Algorithm = planner.Algorithm

const (
	Dijkstra = planner.Dijkstra
	AStar    = planner.AStar
)

// HeuristicKind selects which GoalBoundHeuristic provider a request binds
// against. Dijkstra requests must pair with HeuristicNone (spec §7's
// algorithm/heuristic mismatch check).
type HeuristicKind int

const (
	HeuristicNone HeuristicKind = iota
	HeuristicEuclidean
	HeuristicSpherical
	HeuristicLandmark
)

func (k HeuristicKind) String() string {
	switch k {
	case HeuristicNone:
		return "None"
	case HeuristicEuclidean:
		return "Euclidean"
	case HeuristicSpherical:
		return "Spherical"
	case HeuristicLandmark:
		return "Landmark"
	default:
		return "Unknown"
	}
}

// LandmarkStore re-exports heuristic.LandmarkStore: the external
// collaborator the Landmark heuristic binds against.
type LandmarkStore = heuristic.LandmarkStore

// IdMapper translates between the external string ids a caller speaks and
// the internal int32 node ids the graph/planner operate on (spec §6).
type IdMapper interface {
	ToInternal(external string) (int32, bool)
	ToExternal(internal int32) (string, bool)
}

// SpatialRuntime resolves typed coordinates to the nearest graph node,
// for callers addressing by location rather than by id (spec §6). Not
// consulted by RouteCore itself; supplied for the wrapper layer that
// turns (x, y) into a source/target id before calling Route/Matrix.
type SpatialRuntime interface {
	Nearest(x, y float64) (nodeID int32, distance float64, ok bool)
}

// RouteRequest is one point-to-point query, in external-id terms.
type RouteRequest struct {
	SourceID       string
	TargetID       string
	DepartureTicks int64
	Algorithm      Algorithm
	Heuristic      HeuristicKind
}

// RouteResponse is the external-id-terms outcome of a RouteRequest.
// Unreachable targets are canonicalized, not errors (spec §7):
// Reachable=false, TotalCost=+Inf, ArrivalTicks=DepartureTicks.
type RouteResponse struct {
	Reachable      bool
	DepartureTicks int64
	ArrivalTicks   int64
	TotalCost      float64
	SettledStates  int
	Algorithm      Algorithm
	Heuristic      HeuristicKind
	NodePath       []string
}

// MatrixRequest is a one-to-many-per-source query: every (source, target)
// pair in the cross product, in external-id terms. Duplicate target ids
// are deduplicated internally; a duplicate source id gets its row computed
// again for each occurrence. Either way, duplicated rows/columns mirror
// each other exactly (spec §4.5, §8).
type MatrixRequest struct {
	SourceIDs      []string
	TargetIDs      []string
	DepartureTicks int64
	Algorithm      Algorithm
	Heuristic      HeuristicKind
}

// MatrixRow is one source's results against every requested target id, in
// the original (possibly duplicated) target order.
type MatrixRow struct {
	SourceID  string
	Reachable []bool
	TotalCost []float64
	Arrival   []int64
	Settled   int
}

// MatrixResponse is the external-id-terms outcome of a MatrixRequest, one
// row per requested source id (including duplicates, in original order).
type MatrixResponse struct {
	Rows      []MatrixRow
	Algorithm Algorithm
	Heuristic HeuristicKind
}
