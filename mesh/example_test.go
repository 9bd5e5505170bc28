package mesh_test

import (
	"fmt"

	"github.com/katalvlaran/contourgrid/mesh"
)

// ExampleDiscretize buckets a continuous field at two cut points.
func ExampleDiscretize() {
	z := [][]float64{
		{0.2, 1.4},
		{2.7, 3.1},
	}
	cats, _ := mesh.Discretize(z, []float64{1, 2, 3})
	fmt.Println(cats)
	// Output:
	// [[1 2] [3 4]]
}

// ExampleUniform builds an evenly spaced grid and reads it back.
func ExampleUniform() {
	g, _ := mesh.Uniform(0, 10, 0.5, 1, [][]int{
		{1, 1, 2},
		{1, 2, 2},
	})
	xMin, yMin, xMax, yMax := g.Bounds()
	fmt.Printf("%d×%d samples over [%g, %g]×[%g, %g]\n", g.Rows(), g.Cols(), xMin, xMax, yMin, yMax)
	fmt.Println("value at top-right:", g.Value(g.Rows()-1, g.Cols()-1))
	// Output:
	// 2×3 samples over [0, 1]×[10, 11]
	// value at top-right: 2
}
