package contour

import "github.com/katalvlaran/contourgrid/mesh"

// cellBatch holds the directed segments contributed by one cell. Batches are
// kept separate because the stitcher classifies a whole cell against the
// registry state before applying any of it.
type cellBatch []segment

// scanCells walks every 2×2 sample cell in row-major order and collects its
// boundary crossings. For each cell the four sides are visited in the cyclic
// order left, top, right, bottom; the midpoint of a side whose two corner
// samples differ is a crossing point.
//
// Two crossings produce both directed segments between the two midpoints:
// every boundary is traced once per direction, and the frame-closure phase
// relies on the pair to recover the regions on either side. Three or four
// crossings (possible once three categories meet, or on a checkerboard
// saddle) produce the consecutive cyclic pairs, each routed through the
// centroid of the crossing points.
//
// Complexity: O(R·C) time and memory.
func scanCells(g *mesh.Grid) []cellBatch {
	rows, cols := g.Rows(), g.Cols()
	dx, dy := g.CellSize()
	hx, hy := dx/2, dy/2

	var batches []cellBatch
	// mids is reused per cell: crossing midpoints in cyclic side order.
	mids := make([]Point, 0, 4)
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			mids = mids[:0]
			if g.Value(r, c) != g.Value(r+1, c) { // left side
				mids = append(mids, Point{g.X(c), g.Y(r) + hy})
			}
			if g.Value(r+1, c) != g.Value(r+1, c+1) { // top side
				mids = append(mids, Point{g.X(c) + hx, g.Y(r + 1)})
			}
			if g.Value(r, c+1) != g.Value(r+1, c+1) { // right side
				mids = append(mids, Point{g.X(c + 1), g.Y(r) + hy})
			}
			if g.Value(r, c) != g.Value(r, c+1) { // bottom side
				mids = append(mids, Point{g.X(c) + hx, g.Y(r)})
			}
			if len(mids) == 0 {
				continue
			}
			batches = append(batches, cellSegments(mids))
		}
	}

	return batches
}

// cellSegments turns one cell's crossing midpoints into directed segments:
// the consecutive cyclic pairs, via the centroid when more than two
// crossings share the cell.
func cellSegments(mids []Point) cellBatch {
	n := len(mids)
	batch := make(cellBatch, 0, n)
	if n == 2 {
		batch = append(batch,
			segment{from: mids[0], to: mids[1]},
			segment{from: mids[1], to: mids[0]},
		)

		return batch
	}

	var mid Point
	for _, p := range mids {
		mid.X += p.X
		mid.Y += p.Y
	}
	mid.X /= float64(n)
	mid.Y /= float64(n)
	for i := 0; i < n; i++ {
		batch = append(batch, segment{
			from:   mids[i],
			to:     mids[(i+1)%n],
			mid:    mid,
			viaMid: true,
		})
	}

	return batch
}
