package contour_test

import (
	"fmt"

	"github.com/katalvlaran/contourgrid/contour"
	"github.com/katalvlaran/contourgrid/mesh"
)

// ExampleBoundaries traces the single polyline separating two categories on
// a 3×3 grid.
func ExampleBoundaries() {
	g, _ := mesh.Uniform(0, 0, 1, 1, [][]int{
		{1, 1, 2},
		{1, 2, 2},
		{1, 2, 2},
	})

	paths, _ := contour.Boundaries(g)
	for _, p := range paths {
		for i, pt := range p {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("(%.1f, %.1f)", pt.X, pt.Y)
		}
		fmt.Println()
	}
	// Output:
	// (1.5, 0.0) (1.0, 0.5) (0.5, 1.0) (0.5, 2.0)
}

// ExampleRegions fills the same grid solid: one value-tagged polygon per
// region, areas summing to the grid extent.
func ExampleRegions() {
	g, _ := mesh.Uniform(0, 0, 1, 1, [][]int{
		{1, 1, 2},
		{1, 2, 2},
		{1, 2, 2},
	})

	regions, _ := contour.Regions(g, contour.DefaultOptions())
	for _, r := range regions {
		fmt.Printf("value=%d area=%.1f holes=%d\n", r.Value, r.Outer.Area(), len(r.Holes))
	}
	// Output:
	// value=1 area=1.5 holes=0
	// value=2 area=2.5 holes=0
}

// ExampleRegions_holes shows an island becoming both a region of its own
// and a hole in the region surrounding it.
func ExampleRegions_holes() {
	g, _ := mesh.Uniform(0, 0, 1, 1, [][]int{
		{1, 1, 1},
		{1, 2, 1},
		{1, 1, 1},
	})

	regions, _ := contour.Regions(g, contour.DefaultOptions())
	for _, r := range regions {
		net := r.Outer.Area()
		for _, h := range r.Holes {
			net += h.Area()
		}
		fmt.Printf("value=%d net=%.1f holes=%d\n", r.Value, net, len(r.Holes))
	}
	// Output:
	// value=1 net=3.5 holes=1
	// value=2 net=0.5 holes=0
}
