package contour

import "sort"

// Point is a vertex in grid coordinate space.
type Point struct {
	X, Y float64
}

// Path is an ordered polyline. Closed paths repeat their first vertex at
// the end; open paths have both endpoints on the grid's outer frame.
type Path []Point

// Closed reports whether the path's last vertex repeats its first.
func (p Path) Closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// Area returns the signed area enclosed by the path (shoelace formula):
// positive for counter-clockwise winding, negative for clockwise. The
// closing edge is implied when the path does not repeat its first vertex.
func (p Path) Area() float64 {
	n := len(p)
	if p.Closed() {
		n--
	}
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}

	return sum / 2
}

// reversed returns a copy of p with its vertices in opposite order.
func (p Path) reversed() Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}

	return out
}

// clone returns an independent copy of p.
func (p Path) clone() Path {
	return append(Path(nil), p...)
}

// Region is one maximal area of constant category value: a counter-clockwise
// outer ring and the clockwise rings of its directly nested regions. Filling
// Outer and treating Holes as cut-outs paints the region exactly, with no
// overlap against the regions emitted for the holes themselves.
type Region struct {
	// Value is the category the region encloses.
	Value int
	// Outer is the closed, counter-clockwise outer ring.
	Outer Path
	// Holes are the closed, clockwise rings of direct children only;
	// deeper nesting is represented by those children's own holes.
	Holes []Path
}

// Options configures region extraction.
//
// Fields:
//   - Eps — tolerance for coordinate comparisons along the outer frame,
//     where walked positions are accumulated by repeated addition. Zero
//     selects a default of one millionth of the smaller cell dimension.
type Options struct {
	Eps float64
}

// DefaultOptions returns the recommended extraction settings.
func DefaultOptions() Options {
	return Options{}
}

// segment is one directed boundary crossing through a single cell, with an
// optional detour vertex at the cell centroid.
type segment struct {
	from, to Point
	mid      Point
	viaMid   bool
}

// pointLess orders points bottom-to-top, then left-to-right. Used wherever
// map contents must be traversed deterministically.
func pointLess(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

// pathLess orders paths lexicographically by vertex.
func pathLess(a, b Path) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return pointLess(a[i], b[i])
		}
	}

	return len(a) < len(b)
}

// sortPoints orders points in place by pointLess.
func sortPoints(ps []Point) {
	sort.Slice(ps, func(i, j int) bool { return pointLess(ps[i], ps[j]) })
}

// pathEqual reports exact vertex-wise equality.
func pathEqual(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
