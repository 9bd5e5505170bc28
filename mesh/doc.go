// Package mesh provides validated rectangular sampling grids: per-sample
// (x, y) coordinates plus a discrete category value at every sample.
//
// What:
//
//   - Grid wraps an R×C category matrix together with the X and Y axes the
//     samples were taken on. Built from full coordinate matrices (New), bare
//     axes (FromAxes), or an origin and spacing (Uniform).
//   - Discretize buckets continuous samples into 1-based category indices at
//     a list of cut points, for feeding classifier/function output into a Grid.
//   - Grids are immutable once built; all inputs are deep-copied.
//
// Why:
//
//   - Decision surfaces: classify a meshgrid, discretize, hand to contour.
//   - Heatmaps: discretized intensity fields with category boundaries.
//   - Any downstream geometry that needs trustworthy grid invariants.
//
// Invariants enforced at construction:
//
//   - At least two samples per axis (a grid with no cells has no geometry).
//   - Rectangular matrices with matching shapes.
//   - Axes strictly increasing with uniform spacing (spacing may differ
//     between the two axes).
//   - Coordinate matrices must be axis-aligned: every row repeats the same
//     X axis, every column the same Y axis (as produced by a meshgrid).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrTooSmall: fewer than two samples along an axis.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrShapeMismatch: coordinate and value matrices disagree on shape.
//   - ErrNonMonotonic: an axis is not strictly increasing.
//   - ErrNonUniform: spacing varies along an axis.
//   - ErrNotAligned: coordinate matrices are not meshgrid-shaped.
//   - ErrUnsortedLevels: discretization cut points are not ascending.
//
// Complexity: construction and Discretize are O(R·C); accessors are O(1).
package mesh
