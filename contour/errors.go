package contour

import "errors"

// Sentinel errors for contour extraction.
var (
	// ErrNilGrid indicates that no grid was supplied.
	ErrNilGrid = errors.New("contour: grid must not be nil")
	// ErrTopology indicates an internal stitching inconsistency: a segment
	// referenced a path endpoint the registry does not hold, or a frame walk
	// failed to reconnect. The extraction cannot produce a correct result
	// and fails as a whole.
	ErrTopology = errors.New("contour: inconsistent boundary topology")
)
