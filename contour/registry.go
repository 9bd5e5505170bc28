package contour

import "fmt"

// registry stitches directed segments into maximal paths. It owns three
// parallel maps whose joint invariants are the whole point of the type:
//
//   - paths maps each live path's start vertex to its full vertex list;
//   - startToEnd maps a live path's start to its current end;
//   - endToStart maps a live path's end to its current start.
//
// A path is closed once its start maps to itself in startToEnd; closed
// paths keep their entry in paths but drop out of endToStart, so the twin
// loop traced in the opposite direction can still close independently.
// Every mutation goes through splice/extendStart/extendEnd/add, which
// update all three maps together; a lookup miss inside any of them is an
// ErrTopology, never silently dropped data.
type registry struct {
	paths      map[Point]Path
	startToEnd map[Point]Point
	endToStart map[Point]Point
}

func newRegistry() *registry {
	return &registry{
		paths:      make(map[Point]Path),
		startToEnd: make(map[Point]Point),
		endToStart: make(map[Point]Point),
	}
}

// addCell merges one cell's segments into the registry. The whole batch is
// classified against the registry state as it stood before the cell, then
// applied in splice, extend-start, extend-end, new order: the two directed
// twins of a fresh crossing must both be seen as new, not have the second
// close a two-vertex loop against the first.
func (rg *registry) addCell(batch cellBatch) error {
	var splices, extStarts, extEnds, fresh []segment
	for _, seg := range batch {
		_, atEnd := rg.endToStart[seg.from]
		_, atStart := rg.startToEnd[seg.to]
		switch {
		case atEnd && atStart:
			splices = append(splices, seg)
		case atEnd:
			extEnds = append(extEnds, seg)
		case atStart:
			extStarts = append(extStarts, seg)
		default:
			fresh = append(fresh, seg)
		}
	}

	for _, seg := range splices {
		if err := rg.splice(seg); err != nil {
			return err
		}
	}
	for _, seg := range extStarts {
		if err := rg.extendStart(seg); err != nil {
			return err
		}
	}
	for _, seg := range extEnds {
		if err := rg.extendEnd(seg); err != nil {
			return err
		}
	}
	for _, seg := range fresh {
		rg.add(seg)
	}

	return nil
}

// splice joins the path ending at seg.from to the path starting at seg.to.
// When they are the same path the segment closes a loop.
func (rg *registry) splice(seg segment) error {
	tailEnd, ok := rg.startToEnd[seg.to]
	if !ok {
		return fmt.Errorf("%w: no path starts at (%g, %g)", ErrTopology, seg.to.X, seg.to.Y)
	}
	delete(rg.startToEnd, seg.to)
	headStart, ok := rg.endToStart[seg.from]
	if !ok {
		return fmt.Errorf("%w: no path ends at (%g, %g)", ErrTopology, seg.from.X, seg.from.Y)
	}
	delete(rg.endToStart, seg.from)

	head, ok := rg.paths[headStart]
	if !ok {
		return fmt.Errorf("%w: missing path for start (%g, %g)", ErrTopology, headStart.X, headStart.Y)
	}
	if seg.viaMid {
		head = append(head, seg.mid)
	}

	if tailEnd != seg.from {
		// Distinct paths: append the tail's vertices and redirect the
		// surviving endpoints at each other.
		tail, ok := rg.paths[seg.to]
		if !ok {
			return fmt.Errorf("%w: missing path for start (%g, %g)", ErrTopology, seg.to.X, seg.to.Y)
		}
		head = append(head, tail...)
		delete(rg.paths, seg.to)
		rg.paths[headStart] = head
		rg.startToEnd[headStart] = tailEnd
		rg.endToStart[tailEnd] = headStart

		return nil
	}

	// The path ending at seg.from is the one starting at seg.to: the segment
	// closes it into a loop. The end map deliberately stays untouched so the
	// loop's opposite-direction twin keeps its own bookkeeping intact.
	head = append(head, seg.to)
	rg.paths[headStart] = head
	rg.startToEnd[seg.to] = seg.to

	return nil
}

// extendStart prepends seg to the path starting at seg.to.
func (rg *registry) extendStart(seg segment) error {
	end, ok := rg.startToEnd[seg.to]
	if !ok {
		return fmt.Errorf("%w: no path starts at (%g, %g)", ErrTopology, seg.to.X, seg.to.Y)
	}
	old, ok := rg.paths[seg.to]
	if !ok {
		return fmt.Errorf("%w: missing path for start (%g, %g)", ErrTopology, seg.to.X, seg.to.Y)
	}
	delete(rg.startToEnd, seg.to)
	delete(rg.paths, seg.to)

	grown := make(Path, 0, len(old)+2)
	grown = append(grown, seg.from)
	if seg.viaMid {
		grown = append(grown, seg.mid)
	}
	grown = append(grown, old...)

	rg.paths[seg.from] = grown
	rg.startToEnd[seg.from] = end
	rg.endToStart[end] = seg.from

	return nil
}

// extendEnd appends seg to the path ending at seg.from.
func (rg *registry) extendEnd(seg segment) error {
	start, ok := rg.endToStart[seg.from]
	if !ok {
		return fmt.Errorf("%w: no path ends at (%g, %g)", ErrTopology, seg.from.X, seg.from.Y)
	}
	p, ok := rg.paths[start]
	if !ok {
		return fmt.Errorf("%w: missing path for start (%g, %g)", ErrTopology, start.X, start.Y)
	}
	delete(rg.endToStart, seg.from)

	if seg.viaMid {
		p = append(p, seg.mid)
	}
	p = append(p, seg.to)

	rg.paths[start] = p
	rg.startToEnd[start] = seg.to
	rg.endToStart[seg.to] = start

	return nil
}

// add registers seg as a brand new single-segment path.
func (rg *registry) add(seg segment) {
	p := make(Path, 0, 3)
	p = append(p, seg.from)
	if seg.viaMid {
		p = append(p, seg.mid)
	}
	p = append(p, seg.to)

	rg.paths[seg.from] = p
	rg.startToEnd[seg.from] = seg.to
	rg.endToStart[seg.to] = seg.from
}

// closedStarts returns the start vertices of closed loops, sorted.
func (rg *registry) closedStarts() []Point {
	var out []Point
	for s, e := range rg.startToEnd {
		if s == e {
			out = append(out, s)
		}
	}
	sortPoints(out)

	return out
}

// openStarts returns the start vertices of open paths, sorted.
func (rg *registry) openStarts() []Point {
	var out []Point
	for s, e := range rg.startToEnd {
		if s != e {
			out = append(out, s)
		}
	}
	sortPoints(out)

	return out
}
