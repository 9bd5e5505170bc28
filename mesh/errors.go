package mesh

import "errors"

// Sentinel errors for mesh construction and discretization.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("mesh: input grid must have at least one row and one column")
	// ErrTooSmall indicates fewer than two samples along an axis.
	ErrTooSmall = errors.New("mesh: grid must have at least two samples per axis")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("mesh: all rows must have the same length")
	// ErrShapeMismatch indicates coordinate and value matrices of different shapes.
	ErrShapeMismatch = errors.New("mesh: coordinate and value matrices must share one shape")
	// ErrNonMonotonic indicates an axis that is not strictly increasing.
	ErrNonMonotonic = errors.New("mesh: axis coordinates must be strictly increasing")
	// ErrNonUniform indicates sample spacing that varies along an axis.
	ErrNonUniform = errors.New("mesh: axis coordinates must be evenly spaced")
	// ErrNotAligned indicates coordinate matrices that do not repeat one axis
	// across all rows (X) or all columns (Y).
	ErrNotAligned = errors.New("mesh: coordinate matrices must be axis-aligned")
	// ErrUnsortedLevels indicates discretization cut points out of order.
	ErrUnsortedLevels = errors.New("mesh: discretization levels must be strictly ascending")
)
