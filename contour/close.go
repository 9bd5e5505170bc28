package contour

import (
	"fmt"
	"math"

	"github.com/katalvlaran/contourgrid/mesh"
)

// frameCloser closes open paths against the grid's outer frame. One value
// lives for a single extraction call.
type frameCloser struct {
	g                      *mesh.Grid
	eps                    float64
	dx, dy, hx, hy         float64
	xMin, yMin, xMax, yMax float64
}

func newFrameCloser(g *mesh.Grid, eps float64) *frameCloser {
	fc := &frameCloser{g: g, eps: eps}
	fc.dx, fc.dy = g.CellSize()
	fc.hx, fc.hy = fc.dx/2, fc.dy/2
	fc.xMin, fc.yMin, fc.xMax, fc.yMax = g.Bounds()

	return fc
}

func (fc *frameCloser) near(a, b float64) bool {
	return math.Abs(a-b) <= fc.eps
}

func (fc *frameCloser) nearPt(a, b Point) bool {
	return fc.near(a.X, b.X) && fc.near(a.Y, b.Y)
}

// closeAll closes every open path. Paths whose two endpoints share a frame
// edge are closed directly and kept when counter-clockwise. Everything else,
// the clockwise complements of the direct closures included, is walked
// counter-clockwise around the frame, absorbing the other open paths met on
// the way, so each group of chained open paths consolidates into one closed
// region ring. Returns the closed rings and the category each encloses,
// keyed by ring start.
func (fc *frameCloser) closeAll(paths map[Point]Path, open []Point) (map[Point]Path, map[Point]int, error) {
	closed := make(map[Point]Path, len(open))
	values := make(map[Point]int, len(open))

	// Direct closures first: a path entering and leaving on one frame edge
	// encircles its region without help from the frame.
	remaining := make([]Point, 0, len(open))
	for _, s := range open {
		p := paths[s]
		end := p[len(p)-1]
		if !fc.sameEdge(s, end) {
			remaining = append(remaining, s)

			continue
		}
		ring := append(p.clone(), s)
		if ring.Area() <= 0 {
			// Clockwise: this is the twin bounding the region outside the
			// bump; the frame walk below will close it the long way round.
			remaining = append(remaining, s)

			continue
		}
		v, err := enclosedValue(ring, fc.g, fc.eps)
		if err != nil {
			return nil, nil, err
		}
		closed[s] = ring
		values[s] = v
	}

	for len(remaining) > 0 {
		start := remaining[0]
		remaining = remaining[1:]
		ring, rest, err := fc.walk(start, paths, remaining)
		if err != nil {
			return nil, nil, err
		}
		remaining = rest
		v, err := fc.edgeValue(start)
		if err != nil {
			return nil, nil, err
		}
		closed[start] = ring
		values[start] = v
	}

	return closed, values, nil
}

// walk steps counter-clockwise around the frame from the end of the path
// starting at start until it reconnects with start, appending frame corners
// and absorbing any open path whose start it passes. Consumed starts are
// removed from remaining.
func (fc *frameCloser) walk(start Point, paths map[Point]Path, remaining []Point) (Path, []Point, error) {
	ring := paths[start].clone()
	cur := ring[len(ring)-1]
	moveX, moveY := fc.step(cur)

	// Each step advances one cell along the frame; 2(R+C) steps plus the
	// four corner detours bound a full circuit. Exceeding the bound means
	// the walk can never reconnect.
	maxSteps := 4 * (fc.g.Rows() + fc.g.Cols() + 4)
	for steps := 0; !fc.nearPt(cur, start); steps++ {
		if steps > maxSteps {
			return nil, nil, fmt.Errorf("%w: frame walk from (%g, %g) never reconnects", ErrTopology, start.X, start.Y)
		}
		cur = Point{cur.X + moveX, cur.Y + moveY}

		// Past a frame corner: insert the corner vertex, restart half a
		// cell beyond it on the next edge, and turn.
		switch {
		case fc.near(cur.X, fc.xMax+fc.hx):
			ring = append(ring, Point{fc.xMax, fc.yMin})
			cur = Point{fc.xMax, fc.yMin + fc.hy}
			ring = append(ring, cur)
			moveX, moveY = 0, fc.dy
		case fc.near(cur.X, fc.xMin-fc.hx):
			ring = append(ring, Point{fc.xMin, fc.yMax})
			cur = Point{fc.xMin, fc.yMax - fc.hy}
			ring = append(ring, cur)
			moveX, moveY = 0, -fc.dy
		case fc.near(cur.Y, fc.yMax+fc.hy):
			ring = append(ring, Point{fc.xMax, fc.yMax})
			cur = Point{fc.xMax - fc.hx, fc.yMax}
			ring = append(ring, cur)
			moveX, moveY = -fc.dx, 0
		case fc.near(cur.Y, fc.yMin-fc.hy):
			ring = append(ring, Point{fc.xMin, fc.yMin})
			cur = Point{fc.xMin + fc.hx, fc.yMin}
			ring = append(ring, cur)
			moveX, moveY = fc.dx, 0
		}

		// The position now held, post-corner repositioning included, may be
		// another open path's start: absorb its vertices and carry on from
		// its end, which may sit on a different frame edge. The check must
		// run after corner handling, since the first midpoint past a corner
		// sits exactly half a cell along the new edge and would otherwise
		// be stepped over. It must not run again at the absorbed path's
		// end: the path starting there is the opposite-direction twin of
		// the one just absorbed, and belongs to the region across the
		// boundary.
		if i := fc.indexNear(remaining, cur); i >= 0 {
			other := remaining[i]
			remaining = append(remaining[:i], remaining[i+1:]...)
			absorbed := paths[other]
			if fc.nearPt(ring[len(ring)-1], absorbed[0]) {
				// A post-corner position is already in the ring.
				absorbed = absorbed[1:]
			}
			ring = append(ring, absorbed...)
			cur = ring[len(ring)-1]
			moveX, moveY = fc.step(cur)
		}
	}

	if !fc.nearPt(ring[len(ring)-1], start) {
		ring = append(ring, start)
	} else {
		ring[len(ring)-1] = start
	}

	return ring, remaining, nil
}

// sameEdge reports whether two frame points lie on one frame edge. Testing
// the edges, not coordinate equality, matters: a path from the right edge
// to the left edge at equal height shares a Y coordinate without sharing
// an edge, and must be closed by the frame walk, not directly.
func (fc *frameCloser) sameEdge(a, b Point) bool {
	switch {
	case fc.near(a.X, fc.xMin) && fc.near(b.X, fc.xMin):
		return true
	case fc.near(a.X, fc.xMax) && fc.near(b.X, fc.xMax):
		return true
	case fc.near(a.Y, fc.yMin) && fc.near(b.Y, fc.yMin):
		return true
	case fc.near(a.Y, fc.yMax) && fc.near(b.Y, fc.yMax):
		return true
	}

	return false
}

// step returns the per-step movement for a frame position, in the
// counter-clockwise sense: up the right edge, leftward along the top, down
// the left edge, rightward along the bottom.
func (fc *frameCloser) step(cur Point) (moveX, moveY float64) {
	switch {
	case fc.near(cur.X, fc.xMax), fc.near(cur.X, fc.xMin):
		moveX = 0
	case fc.near(cur.Y, fc.yMin):
		moveX = fc.dx
	default:
		moveX = -fc.dx
	}
	switch {
	case fc.near(cur.Y, fc.yMax), fc.near(cur.Y, fc.yMin):
		moveY = 0
	case fc.near(cur.X, fc.xMax):
		moveY = fc.dy
	default:
		moveY = -fc.dy
	}

	return moveX, moveY
}

// indexNear returns the index of the point in ps within tolerance of pt,
// or -1.
func (fc *frameCloser) indexNear(ps []Point, pt Point) int {
	for i, p := range ps {
		if fc.nearPt(p, pt) {
			return i
		}
	}

	return -1
}

// edgeValue reads the category enclosed by a frame-walked ring: the grid
// sample half a cell along the frame from the ring's start, in the clockwise
// sense, which is the first sample inside the walked region.
func (fc *frameCloser) edgeValue(start Point) (int, error) {
	var probe Point
	switch {
	case fc.near(start.X, fc.xMin):
		probe = Point{start.X, start.Y + fc.hy}
	case fc.near(start.X, fc.xMax):
		probe = Point{start.X, start.Y - fc.hy}
	case fc.near(start.Y, fc.yMin):
		probe = Point{start.X - fc.hx, start.Y}
	default:
		probe = Point{start.X + fc.hx, start.Y}
	}
	r, c, ok := fc.g.Locate(probe.X, probe.Y, fc.eps)
	if !ok {
		return 0, fmt.Errorf("%w: frame probe (%g, %g) hits no grid sample", ErrTopology, probe.X, probe.Y)
	}

	return fc.g.Value(r, c), nil
}
