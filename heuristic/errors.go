package heuristic

import "errors"

// Sentinel errors for provider construction. Every constructor fails fast;
// there is no partially-constructed Provider.
var (
	ErrCoordinatesRequired      = errors.New("heuristic: graph coordinates required")
	ErrInvalidLatitude          = errors.New("heuristic: latitude out of range [-90,90]")
	ErrInvalidLongitude         = errors.New("heuristic: longitude out of range [-180,180]")
	ErrCalibrationEmptyGraph    = errors.New("heuristic: cannot calibrate an empty graph")
	ErrNoPositiveDistanceEdges  = errors.New("heuristic: no positive-distance edges to calibrate against")
	ErrLandmarkStoreMissing     = errors.New("heuristic: landmark store is nil")
	ErrLandmarkSignatureMismatch = errors.New("heuristic: landmark store signature does not match graph contract")
)
