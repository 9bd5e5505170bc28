package contour

import (
	"math"
	"sort"

	"github.com/katalvlaran/contourgrid/mesh"
)

// defaultEpsFraction scales the smaller cell dimension into the default
// frame-comparison tolerance.
const defaultEpsFraction = 1e-6

// Boundaries traces the maximal polylines separating differently valued
// samples of g. Each geometric boundary is reported once: the two traversal
// directions produced by the cell scan are collapsed, closed loops repeat
// their first vertex, and the result is sorted deterministically.
//
// A uniform grid yields no polylines. Complexity: O(R·C).
func Boundaries(g *mesh.Grid) ([]Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	rg, err := stitch(g)
	if err != nil {
		return nil, err
	}

	var out []Path
	starts := make([]Point, 0, len(rg.paths))
	for s := range rg.paths {
		starts = append(starts, s)
	}
	sortPoints(starts)
	for _, s := range starts {
		out = append(out, canonical(rg.paths[s]))
	}
	sort.Slice(out, func(i, j int) bool { return pathLess(out[i], out[j]) })

	dedup := make([]Path, 0, len(out))
	for _, p := range out {
		if len(dedup) == 0 || !pathEqual(p, dedup[len(dedup)-1]) {
			dedup = append(dedup, p)
		}
	}

	return dedup, nil
}

// Regions assembles the solid-fill polygons of g: one value-tagged,
// counter-clockwise ring per maximal region of constant category, with the
// rings of directly nested regions punched out as clockwise holes. Region
// areas, holes subtracted, sum exactly to the grid extent; no two regions
// overlap. The result is sorted deterministically by outer-ring start.
//
// A uniform grid yields a single full-extent region.
// Complexity: O(R·C + K²·V) for K regions of V vertices.
func Regions(g *mesh.Grid, opts Options) ([]Region, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	eps := opts.Eps
	if eps <= 0 {
		dx, dy := g.CellSize()
		eps = math.Min(dx, dy) * defaultEpsFraction
	}

	rg, err := stitch(g)
	if err != nil {
		return nil, err
	}

	rings := make(map[Point]Path)
	values := make(map[Point]int)

	// Interior loops arrive in twin pairs, one per traversal direction; the
	// counter-clockwise one encloses the region, the clockwise one is the
	// redundant exterior view and is dropped.
	for _, s := range rg.closedStarts() {
		ring := rg.paths[s]
		if ring.Area() <= 0 {
			continue
		}
		v, vErr := enclosedValue(ring, g, eps)
		if vErr != nil {
			return nil, vErr
		}
		rings[s] = ring
		values[s] = v
	}

	open := rg.openStarts()
	if len(open) == 0 {
		// No boundary reaches the frame, so the entire border ring shares
		// one category and its region has no stitched ring of its own:
		// it spans the full extent, minus whatever nests inside.
		xMin, yMin, xMax, yMax := g.Bounds()
		corner := Point{xMin, yMin}
		rings[corner] = Path{corner, {xMax, yMin}, {xMax, yMax}, {xMin, yMax}, corner}
		values[corner] = g.Value(0, 0)
	} else {
		fc := newFrameCloser(g, eps)
		closed, closedValues, cErr := fc.closeAll(rg.paths, open)
		if cErr != nil {
			return nil, cErr
		}
		for s, ring := range closed {
			rings[s] = ring
			values[s] = closedValues[s]
		}
	}

	starts := make([]Point, 0, len(rings))
	for s := range rings {
		starts = append(starts, s)
	}
	sortPoints(starts)

	direct := directChildren(starts, rings)

	regions := make([]Region, 0, len(starts))
	for _, s := range starts {
		reg := Region{Value: values[s], Outer: rings[s]}
		for _, child := range direct[s] {
			reg.Holes = append(reg.Holes, rings[child].reversed())
		}
		regions = append(regions, reg)
	}

	return regions, nil
}

// stitch runs the cell scan and merges every cell batch into a registry.
func stitch(g *mesh.Grid) (*registry, error) {
	rg := newRegistry()
	for _, batch := range scanCells(g) {
		if err := rg.addCell(batch); err != nil {
			return nil, err
		}
	}

	return rg, nil
}

// canonical maps a path and its reverse (and, for loops, every rotation of
// either) to one representative, so direction twins compare equal.
func canonical(p Path) Path {
	if !p.Closed() {
		if q := p.reversed(); pathLess(q, p) {
			return q
		}

		return p.clone()
	}

	cycle := p[:len(p)-1]
	fwd := rotateMin(cycle)
	rev := rotateMin(cycle.reversed())
	best := fwd
	if pathLess(rev, fwd) {
		best = rev
	}

	return append(best, best[0])
}

// rotateMin rotates a vertex cycle so its least vertex comes first.
func rotateMin(cycle Path) Path {
	lo := 0
	for i := 1; i < len(cycle); i++ {
		if pointLess(cycle[i], cycle[lo]) {
			lo = i
		}
	}
	out := make(Path, 0, len(cycle)+1)
	out = append(out, cycle[lo:]...)
	out = append(out, cycle[:lo]...)

	return out
}
