package contour

import "sort"

// directChildren computes which region rings nest directly inside which.
// Ring A contains ring B when every vertex of B lies strictly inside A.
// The full containment relation is then reduced to direct children only:
// for each ring, the minimal set of contained rings covering all deeper
// nesting, found by visiting its contained rings in descending order of
// their own nested count and greedily keeping the ones not yet covered.
// A ring three levels down is thereby a child of its immediate parent, not
// of every ancestor, so each hole is punched exactly once.
//
// Complexity: O(K²·V) for K rings of V vertices.
func directChildren(starts []Point, rings map[Point]Path) map[Point][]Point {
	nested := make(map[Point][]Point, len(starts))
	for _, s := range starts {
		outer := rings[s]
		var inside []Point
		for _, t := range starts {
			if t == s {
				continue
			}
			if containsPath(outer, rings[t]) {
				inside = append(inside, t)
			}
		}
		nested[s] = inside
	}

	direct := make(map[Point][]Point, len(starts))
	for _, s := range starts {
		contained := append([]Point(nil), nested[s]...)
		sort.Slice(contained, func(i, j int) bool {
			ni, nj := len(nested[contained[i]]), len(nested[contained[j]])
			if ni != nj {
				return ni > nj
			}

			return pointLess(contained[i], contained[j])
		})

		covered := make(map[Point]bool, len(contained))
		var children []Point
		for _, t := range contained {
			if !covered[t] {
				children = append(children, t)
			}
			for _, deep := range nested[t] {
				covered[deep] = true
			}
		}
		sortPoints(children)
		direct[s] = children
	}

	return direct
}
