package contour

import (
	"fmt"
	"math"

	"github.com/katalvlaran/contourgrid/mesh"
)

// probePoint returns the grid sample just inside a counter-clockwise path,
// derived from its first segment. Boundary vertices sit either on a sampled
// X line (side midpoints of vertical cell sides) or on a sampled Y line
// (horizontal sides), one half-cell away from the interior sample on the
// left of the walking direction; stepping a half-cell inward therefore
// always lands exactly on a sample. For a counter-clockwise path that
// sample lies inside the polygon and carries the enclosed category.
func probePoint(p Path, g *mesh.Grid, eps float64) Point {
	dx, dy := g.CellSize()
	hx, hy := dx/2, dy/2
	a, b := p[0], p[1]

	vertical := math.Abs(a.X-b.X) <= eps
	horizontal := math.Abs(a.Y-b.Y) <= eps
	up := a.Y < b.Y
	down := a.Y > b.Y
	left := a.X > b.X
	right := a.X < b.X
	onYLine := g.OnYLine(a.Y, eps)

	switch {
	case vertical && up:
		return Point{a.X - hx, a.Y}
	case vertical && down:
		return Point{a.X + hx, a.Y}
	case horizontal && left:
		return Point{a.X, a.Y - hy}
	case horizontal && right:
		return Point{a.X, a.Y + hy}
	case onYLine && up:
		// Start is a bottom-side midpoint, first segment slants upward:
		// the interior sample is the cell's lower-left corner.
		return Point{a.X - hx, a.Y}
	case onYLine && down:
		return Point{a.X + hx, a.Y}
	case right:
		// Start is on a sampled X line (left-side midpoint), slanting right.
		return Point{a.X, a.Y + hy}
	default: // left, on a sampled X line
		return Point{a.X, a.Y - hy}
	}
}

// enclosedValue reads the category at the probe point of a counter-clockwise
// path. A miss means the cell scan emitted geometry off the sample lattice.
func enclosedValue(p Path, g *mesh.Grid, eps float64) (int, error) {
	probe := probePoint(p, g, eps)
	r, c, ok := g.Locate(probe.X, probe.Y, eps)
	if !ok {
		return 0, fmt.Errorf("%w: probe (%g, %g) hits no grid sample", ErrTopology, probe.X, probe.Y)
	}

	return g.Value(r, c), nil
}

// contains reports whether pt lies strictly inside the polygon, by even-odd
// ray casting with an explicit boundary test first: points on an edge or
// vertex are never inside. Adjacent region rings carry their shared
// boundary vertices exactly, so adjacency never counts as nesting.
func contains(poly Path, pt Point) bool {
	inside := false
	n := len(poly)
	if poly.Closed() {
		n--
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if onEdge(poly[j], poly[i], pt) {
			return false
		}
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, yj := poly[i].Y, poly[j].Y
		if (yi > pt.Y) == (yj > pt.Y) {
			continue
		}
		xCross := poly[j].X + (pt.Y-poly[j].Y)*(poly[i].X-poly[j].X)/(yi-yj)
		if pt.X < xCross {
			inside = !inside
		}
	}

	return inside
}

// onEdge reports whether pt lies on the segment ab. Shared vertices are
// propagated between rings without rounding, so exact comparison suffices.
func onEdge(a, b, pt Point) bool {
	if pt.X < math.Min(a.X, b.X) || pt.X > math.Max(a.X, b.X) ||
		pt.Y < math.Min(a.Y, b.Y) || pt.Y > math.Max(a.Y, b.Y) {
		return false
	}

	return (b.X-a.X)*(pt.Y-a.Y) == (b.Y-a.Y)*(pt.X-a.X)
}

// containsPath reports whether every vertex of inner lies strictly inside
// outer.
func containsPath(outer, inner Path) bool {
	n := len(inner)
	if inner.Closed() {
		n--
	}
	for i := 0; i < n; i++ {
		if !contains(outer, inner[i]) {
			return false
		}
	}

	return n > 0
}
