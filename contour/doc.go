// Package contour traces the boundaries between regions of different
// category value on a mesh.Grid and assembles them into fillable,
// hole-punched region polygons.
//
// What:
//
//   - Boundaries returns the maximal polylines separating differently
//     valued samples, one polyline per geometric boundary.
//   - Regions returns one closed, counter-clockwise polygon per maximal
//     region of constant value, with directly nested regions punched out
//     as clockwise holes, so filling every region paints the extent
//     exactly once at any fill transparency.
//
// How (four phases, one synchronous call):
//
//  1. Cell scan: each 2×2 sample cell contributes boundary crossings at
//     the midpoints of its unequal sides; cells with more than two
//     crossings route them through the cell centroid (the saddle policy).
//  2. Stitching: crossings are chained into maximal paths by a registry of
//     start/end endpoints; a dangling endpoint reference is ErrTopology.
//  3. Frame closure: paths that begin and end on the outer frame are
//     closed, either directly (same frame edge) or by walking the frame
//     counter-clockwise and absorbing the other open paths encountered.
//  4. Orientation & nesting: clockwise duplicates are discarded, each kept
//     polygon is tagged with the category it encloses, and the containment
//     forest is reduced to direct children for hole punching.
//
// Why:
//
//   - Decision-boundary plots: fill a classifier's decision surface
//     without overdraw artifacts.
//   - Discretized heatmaps: outline and fill value plateaus.
//
// Guarantees:
//
//   - Pure and deterministic: no shared state outlives a call; equal grids
//     yield equal output.
//   - Region areas (holes subtracted) always sum to the grid extent.
//
// Errors:
//
//   - ErrNilGrid: no grid supplied.
//   - ErrTopology: internal stitching inconsistency; the grid's cell scan
//     produced segments that do not chain. Not user-recoverable.
//
// Complexity: O(R·C) for extraction and stitching, O(K²·V) for the
// containment hierarchy over K regions with V vertices each.
package contour
