package graphmodel

import (
	"fmt"
	"math"
)

// Coordinate is a WGS-84 latitude/longitude pair attached to a node.
// Latitude must lie in [-90, 90] and longitude in [-180, 180] whenever
// spherical heuristics are used; Euclidean mode accepts any finite pair.
type Coordinate struct {
	Lat float64
	Lon float64
}

// EdgeInput is the caller-supplied description of one directed edge, used
// only during NewEdgeGraph construction. It is not retained.
type EdgeInput struct {
	Origin      int32
	Destination int32
	BaseWeight  float32
	ProfileID   int32
}

// EdgeGraph is an immutable CSR-style directed graph: node i's outgoing
// edges occupy the half-open range [FirstEdge(i), FirstEdge(i+1)) in the
// parallel edge arrays. It never changes shape after construction and is
// safe to share, read-only, across every goroutine for the lifetime of a
// RouteCore instance.
//
// Edges are grouped by origin in construction order (a stable partition),
// so two EdgeGraphs built from identical EdgeInput slices always expose
// the same edge ids in the same order — a prerequisite for the
// determinism guarantees in spec §5/§8.
type EdgeGraph struct {
	nodeCount int32
	edgeCount int32

	firstEdge       []int32 // len nodeCount+1, monotonically non-decreasing
	edgeDestination []int32 // len edgeCount
	edgeOrigin      []int32 // len edgeCount, matches the CSR bucket it lives in
	baseWeight      []float32
	edgeProfileID   []int32

	coord []Coordinate // len nodeCount, nil if coordinates were not supplied
}

// NewEdgeGraph validates and compiles edges into CSR form. profileCount
// bounds the valid range of EdgeInput.ProfileID ([0, profileCount)); pass
// the ProfileStore's length. coords may be nil (no geometry); if non-nil
// it must have exactly nodeCount entries.
//
// Validation order (fails fast on the first violation found):
//  1. nodeCount and len(edges) are non-negative.
//  2. every edge's Origin/Destination lies in [0, nodeCount).
//  3. every edge's BaseWeight is finite and >= 0.
//  4. every edge's ProfileID lies in [0, profileCount).
//  5. coords, if supplied, has exactly nodeCount entries and every
//     coordinate is finite.
func NewEdgeGraph(nodeCount int, edges []EdgeInput, profileCount int, coords []Coordinate) (*EdgeGraph, error) {
	if nodeCount < 0 {
		return nil, fmt.Errorf("%w: node_count=%d", ErrNegativeCount, nodeCount)
	}

	for i, e := range edges {
		if e.Origin < 0 || int(e.Origin) >= nodeCount || e.Destination < 0 || int(e.Destination) >= nodeCount {
			return nil, fmt.Errorf("%w: edge[%d] origin=%d destination=%d node_count=%d",
				ErrEdgeEndpointOutOfRange, i, e.Origin, e.Destination, nodeCount)
		}
		if math.IsNaN(float64(e.BaseWeight)) || math.IsInf(float64(e.BaseWeight), 0) || e.BaseWeight < 0 {
			return nil, fmt.Errorf("%w: edge[%d] base_weight=%v", ErrNonFiniteWeight, i, e.BaseWeight)
		}
		if e.ProfileID < 0 || int(e.ProfileID) >= profileCount {
			return nil, fmt.Errorf("%w: edge[%d] profile_id=%d profile_count=%d",
				ErrProfileIDOutOfRange, i, e.ProfileID, profileCount)
		}
	}

	if coords != nil {
		if len(coords) != nodeCount {
			return nil, fmt.Errorf("%w: got=%d want=%d", ErrCoordinateCountMismatch, len(coords), nodeCount)
		}
		for i, c := range coords {
			if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
				return nil, fmt.Errorf("%w: node=%d", ErrNonFiniteCoordinate, i)
			}
		}
	}

	g := &EdgeGraph{
		nodeCount:       int32(nodeCount),
		edgeCount:       int32(len(edges)),
		firstEdge:       make([]int32, nodeCount+1),
		edgeDestination: make([]int32, len(edges)),
		edgeOrigin:      make([]int32, len(edges)),
		baseWeight:      make([]float32, len(edges)),
		edgeProfileID:   make([]int32, len(edges)),
	}
	if coords != nil {
		g.coord = append([]Coordinate(nil), coords...)
	}

	// Stage 1: count out-degree per node.
	degree := make([]int32, nodeCount)
	for _, e := range edges {
		degree[e.Origin]++
	}

	// Stage 2: prefix-sum into firstEdge (CSR bucket boundaries).
	var running int32
	for v := 0; v < nodeCount; v++ {
		g.firstEdge[v] = running
		running += degree[v]
	}
	g.firstEdge[nodeCount] = running

	// Stage 3: stable scatter — a cursor per node tracks the next free slot
	// in its bucket. Iterating edges in input order and incrementing the
	// cursor preserves the caller's original relative ordering within a
	// bucket, which is what makes edge ids reproducible.
	cursor := append([]int32(nil), g.firstEdge[:nodeCount]...)
	for _, e := range edges {
		slot := cursor[e.Origin]
		cursor[e.Origin]++
		g.edgeDestination[slot] = e.Destination
		g.edgeOrigin[slot] = e.Origin
		g.baseWeight[slot] = e.BaseWeight
		g.edgeProfileID[slot] = e.ProfileID
	}

	return g, nil
}

// NodeCount returns N, the number of nodes.
func (g *EdgeGraph) NodeCount() int32 { return g.nodeCount }

// EdgeCount returns E, the number of directed edges.
func (g *EdgeGraph) EdgeCount() int32 { return g.edgeCount }

// OutgoingRange returns the half-open edge-id range [start, end) of node's
// outgoing edges. Panics if node is out of range — callers within this
// module always pass validated node ids; external callers should check
// 0 <= node < NodeCount() first.
func (g *EdgeGraph) OutgoingRange(node int32) (start, end int32) {
	return g.firstEdge[node], g.firstEdge[node+1]
}

// EdgeDestination returns the destination node of edgeID.
func (g *EdgeGraph) EdgeDestination(edgeID int32) int32 { return g.edgeDestination[edgeID] }

// EdgeOrigin returns the origin node of edgeID.
func (g *EdgeGraph) EdgeOrigin(edgeID int32) int32 { return g.edgeOrigin[edgeID] }

// BaseWeight returns the static (pre-temporal, pre-live, pre-turn) weight
// of edgeID.
func (g *EdgeGraph) BaseWeight(edgeID int32) float32 { return g.baseWeight[edgeID] }

// EdgeProfileID returns the temporal profile id bound to edgeID.
func (g *EdgeGraph) EdgeProfileID(edgeID int32) int32 { return g.edgeProfileID[edgeID] }

// HasCoordinates reports whether per-node geometry was supplied.
func (g *EdgeGraph) HasCoordinates() bool { return g.coord != nil }

// Coordinate returns node's coordinate and true, or a zero Coordinate and
// false if geometry was not supplied.
func (g *EdgeGraph) Coordinate(node int32) (Coordinate, bool) {
	if g.coord == nil {
		return Coordinate{}, false
	}
	return g.coord[node], true
}
