package graphmodel

import "errors"

// Sentinel errors returned while constructing the immutable data model.
// Every constructor validates eagerly and fails fast; there is no way to
// observe a partially-built EdgeGraph, Profile, or TurnCostMap.
var (
	// ErrNegativeCount indicates a negative node or edge count was given.
	ErrNegativeCount = errors.New("graphmodel: node/edge count must be non-negative")

	// ErrEdgeEndpointOutOfRange indicates an edge origin or destination id
	// falls outside [0, node_count).
	ErrEdgeEndpointOutOfRange = errors.New("graphmodel: edge endpoint out of range")

	// ErrNonFiniteWeight indicates a base edge weight is NaN, infinite, or negative.
	ErrNonFiniteWeight = errors.New("graphmodel: base weight must be finite and non-negative")

	// ErrProfileIDOutOfRange indicates an edge references a profile id that
	// does not exist in the bound ProfileStore.
	ErrProfileIDOutOfRange = errors.New("graphmodel: edge profile id out of range")

	// ErrCoordinateCountMismatch indicates a coordinate slice was supplied
	// with a length different from node_count.
	ErrCoordinateCountMismatch = errors.New("graphmodel: coordinate count must equal node count")

	// ErrInvalidLatitude indicates a latitude outside [-90, 90].
	ErrInvalidLatitude = errors.New("graphmodel: latitude out of range [-90, 90]")

	// ErrInvalidLongitude indicates a longitude outside [-180, 180].
	ErrInvalidLongitude = errors.New("graphmodel: longitude out of range [-180, 180]")

	// ErrNonFiniteCoordinate indicates a NaN or infinite coordinate component.
	ErrNonFiniteCoordinate = errors.New("graphmodel: coordinate must be finite")

	// ErrNonFiniteMultiplier indicates a profile scalar multiplier or bucket
	// value is NaN, infinite, or negative.
	ErrNonFiniteMultiplier = errors.New("graphmodel: multiplier must be finite and non-negative")

	// ErrEmptyBuckets indicates a profile was built with zero buckets.
	ErrEmptyBuckets = errors.New("graphmodel: profile must have at least one bucket")

	// ErrDuplicateProfileID indicates two profiles were registered under the
	// same profile id.
	ErrDuplicateProfileID = errors.New("graphmodel: duplicate profile id")

	// ErrInvalidPenalty indicates a turn penalty is negative or NaN (but not
	// the forbidden +Inf sentinel, which is always valid).
	ErrInvalidPenalty = errors.New("graphmodel: turn penalty must be non-negative or +Inf")

	// ErrDuplicateTransition indicates the same (from_edge, to_edge) pair was
	// registered more than once while building a TurnCostMap.
	ErrDuplicateTransition = errors.New("graphmodel: duplicate (from_edge, to_edge) transition")
)
