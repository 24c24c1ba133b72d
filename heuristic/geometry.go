package heuristic

import (
	"fmt"
	"math"

	"github.com/AayushPS/taro/graphmodel"
)

const earthRadiusMeters = 6371000.0

// geometryProvider backs both Euclidean and Spherical: they differ only in
// the distance function applied to a pair of coordinates.
type geometryProvider struct {
	graph     *graphmodel.EdgeGraph
	scale     float64
	spherical bool
}

// NewEuclidean calibrates a planar-distance heuristic. graph must carry
// coordinates.
func NewEuclidean(graph *graphmodel.EdgeGraph, profiles *graphmodel.ProfileStore) (Provider, error) {
	if !graph.HasCoordinates() {
		return nil, ErrCoordinatesRequired
	}
	scale, err := calibrateScale(graph, profiles, euclideanDistance)
	if err != nil {
		return nil, err
	}

	return &geometryProvider{graph: graph, scale: scale, spherical: false}, nil
}

// NewSpherical calibrates a great-circle-distance heuristic. graph must
// carry coordinates, and every coordinate must have latitude in [-90,90]
// and longitude in [-180,180].
func NewSpherical(graph *graphmodel.EdgeGraph, profiles *graphmodel.ProfileStore) (Provider, error) {
	if !graph.HasCoordinates() {
		return nil, ErrCoordinatesRequired
	}
	for n := int32(0); n < graph.NodeCount(); n++ {
		c, _ := graph.Coordinate(n)
		if c.Lat < -90 || c.Lat > 90 {
			return nil, fmt.Errorf("%w: node=%d lat=%v", ErrInvalidLatitude, n, c.Lat)
		}
		if c.Lon < -180 || c.Lon > 180 {
			return nil, fmt.Errorf("%w: node=%d lon=%v", ErrInvalidLongitude, n, c.Lon)
		}
	}
	scale, err := calibrateScale(graph, profiles, haversineDistance)
	if err != nil {
		return nil, err
	}

	return &geometryProvider{graph: graph, scale: scale, spherical: true}, nil
}

func (p *geometryProvider) BindGoal(goal int32) GoalBoundHeuristic {
	goalCoord, _ := p.graph.Coordinate(goal)

	return &geometryHeuristic{graph: p.graph, goal: goalCoord, scale: p.scale, spherical: p.spherical}
}

type geometryHeuristic struct {
	graph     *graphmodel.EdgeGraph
	goal      graphmodel.Coordinate
	scale     float64
	spherical bool
}

func (h *geometryHeuristic) EstimateFromNode(node int32) float64 {
	c, ok := h.graph.Coordinate(node)
	if !ok {
		return 0
	}

	var dist float64
	if h.spherical {
		dist = haversineDistance(c, h.goal)
	} else {
		dist = euclideanDistance(c, h.goal)
	}

	est := dist * h.scale
	if math.IsNaN(est) || math.IsInf(est, 0) || est < 0 {
		return 0
	}

	return est
}

// calibrateScale computes min_over_edges(base_weight * profile_min_multiplier / distance),
// restricted to edges whose endpoints both carry coordinates and whose
// geometric distance is strictly positive and finite (spec §4.3).
func calibrateScale(graph *graphmodel.EdgeGraph, profiles *graphmodel.ProfileStore, distanceFn func(a, b graphmodel.Coordinate) float64) (float64, error) {
	if graph.NodeCount() == 0 {
		return 0, ErrCalibrationEmptyGraph
	}

	best := math.Inf(1)
	found := false
	for e := int32(0); e < graph.EdgeCount(); e++ {
		origin := graph.EdgeOrigin(e)
		dest := graph.EdgeDestination(e)
		co, ok1 := graph.Coordinate(origin)
		cd, ok2 := graph.Coordinate(dest)
		if !ok1 || !ok2 {
			continue
		}

		dist := distanceFn(co, cd)
		if math.IsNaN(dist) || math.IsInf(dist, 0) || dist <= 0 {
			continue
		}

		profile := profiles.Get(graph.EdgeProfileID(e))
		candidate := float64(graph.BaseWeight(e)) * float64(profile.MinMultiplier) / dist
		if math.IsNaN(candidate) || math.IsInf(candidate, 0) || candidate < 0 {
			continue
		}
		if !found || candidate < best {
			best, found = candidate, true
		}
	}
	if !found {
		return 0, ErrNoPositiveDistanceEdges
	}

	return best, nil
}

func euclideanDistance(a, b graphmodel.Coordinate) float64 {
	return math.Hypot(b.Lon-a.Lon, b.Lat-a.Lat)
}

// haversineDistance returns the great-circle distance in meters, clamping
// the inner square-root argument to [0,1] so floating-point rounding near
// antipodal/coincident points never produces NaN, and normalizing the
// longitude delta across the anti-meridian.
func haversineDistance(a, b graphmodel.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := normalizeLonDelta(b.Lon-a.Lon) * math.Pi / 180

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	h = math.Max(0, math.Min(1, h))

	return earthRadiusMeters * 2 * math.Asin(math.Sqrt(h))
}

func normalizeLonDelta(d float64) float64 {
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}

	return d
}
