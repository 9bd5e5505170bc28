package mesh_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/contourgrid/mesh"
)

// meshgrid expands axes into full coordinate matrices, the shape a caller
// gets from evaluating a function over a grid.
func meshgrid(xAxis, yAxis []float64) (xs, ys [][]float64) {
	xs = make([][]float64, len(yAxis))
	ys = make([][]float64, len(yAxis))
	for r := range yAxis {
		xs[r] = append([]float64(nil), xAxis...)
		ys[r] = make([]float64, len(xAxis))
		for c := range xAxis {
			ys[r][c] = yAxis[r]
		}
	}

	return xs, ys
}

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed grids.
func TestNew_Errors(t *testing.T) {
	goodX, goodY := meshgrid([]float64{0, 1}, []float64{0, 1})
	cases := []struct {
		name   string
		xs, ys [][]float64
		values [][]int
		err    error
	}{
		{"EmptyRows", goodX, goodY, [][]int{}, mesh.ErrEmptyGrid},
		{"EmptyCols", goodX, goodY, [][]int{{}}, mesh.ErrEmptyGrid},
		{"SingleSample", [][]float64{{0}}, [][]float64{{0}}, [][]int{{1}}, mesh.ErrTooSmall},
		{"Ragged", goodX, goodY, [][]int{{1, 2}, {3}}, mesh.ErrNonRectangular},
		{"ShapeMismatch", goodX, goodY, [][]int{{1, 2, 3}, {4, 5, 6}}, mesh.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.New(tc.xs, tc.ys, tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew_AxisErrors verifies axis validation: monotonicity, uniform
// spacing, and meshgrid alignment.
func TestNew_AxisErrors(t *testing.T) {
	values := [][]int{{1, 2, 3}, {4, 5, 6}}

	decreasingX, okY := meshgrid([]float64{2, 1, 0}, []float64{0, 1})
	if _, err := mesh.New(decreasingX, okY, values); !errors.Is(err, mesh.ErrNonMonotonic) {
		t.Errorf("decreasing axis error = %v; want ErrNonMonotonic", err)
	}

	unevenX, _ := meshgrid([]float64{0, 1, 3}, []float64{0, 1})
	if _, err := mesh.New(unevenX, okY, values); !errors.Is(err, mesh.ErrNonUniform) {
		t.Errorf("uneven axis error = %v; want ErrNonUniform", err)
	}

	okX, _ := meshgrid([]float64{0, 1, 2}, []float64{0, 1})
	skewedX := [][]float64{{0, 1, 2}, {0, 1, 2.5}}
	if _, err := mesh.New(skewedX, okY, values); !errors.Is(err, mesh.ErrNotAligned) {
		t.Errorf("skewed coordinates error = %v; want ErrNotAligned", err)
	}

	if _, err := mesh.New(okX, okY, values); err != nil {
		t.Errorf("valid grid rejected: %v", err)
	}
}

// TestFromAxes_Accessors checks dimensions, coordinates and values on a
// non-square grid with different spacing per axis.
func TestFromAxes_Accessors(t *testing.T) {
	g, err := mesh.FromAxes(
		[]float64{0, 1, 2},
		[]float64{10, 12},
		[][]int{{1, 2, 3}, {4, 5, 6}},
	)
	if err != nil {
		t.Fatalf("FromAxes error: %v", err)
	}

	if g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("dimensions = %d×%d; want 2×3", g.Rows(), g.Cols())
	}
	if g.X(2) != 2 || g.Y(1) != 12 {
		t.Errorf("axes: X(2)=%g Y(1)=%g; want 2, 12", g.X(2), g.Y(1))
	}
	if g.Value(1, 2) != 6 {
		t.Errorf("Value(1,2) = %d; want 6", g.Value(1, 2))
	}
	dx, dy := g.CellSize()
	if dx != 1 || dy != 2 {
		t.Errorf("CellSize = (%g, %g); want (1, 2)", dx, dy)
	}
	xMin, yMin, xMax, yMax := g.Bounds()
	if xMin != 0 || yMin != 10 || xMax != 2 || yMax != 12 {
		t.Errorf("Bounds = (%g, %g, %g, %g); want (0, 10, 2, 12)", xMin, yMin, xMax, yMax)
	}
}

// TestUniform checks the arithmetic-progression constructor against FromAxes.
func TestUniform(t *testing.T) {
	g, err := mesh.Uniform(-1, 0, 0.5, 0.25, [][]int{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		t.Fatalf("Uniform error: %v", err)
	}
	if g.X(1) != -0.5 {
		t.Errorf("X(1) = %g; want -0.5", g.X(1))
	}
	if g.Y(2) != 0.5 {
		t.Errorf("Y(2) = %g; want 0.5", g.Y(2))
	}
	if _, err = mesh.Uniform(0, 0, -1, 1, [][]int{{1, 2}, {3, 4}}); !errors.Is(err, mesh.ErrNonMonotonic) {
		t.Errorf("negative spacing error = %v; want ErrNonMonotonic", err)
	}
}

// TestImmutability verifies that mutating constructor inputs afterwards does
// not leak into the grid.
func TestImmutability(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	xAxis := []float64{0, 1}
	g, err := mesh.FromAxes(xAxis, []float64{0, 1}, values)
	if err != nil {
		t.Fatalf("FromAxes error: %v", err)
	}
	values[0][0] = 99
	xAxis[1] = 42
	if g.Value(0, 0) != 1 {
		t.Errorf("Value(0,0) = %d after input mutation; want 1", g.Value(0, 0))
	}
	if g.X(1) != 1 {
		t.Errorf("X(1) = %g after input mutation; want 1", g.X(1))
	}
}

//----------------------------------------------------------------------------//
// Lookup Tests
//----------------------------------------------------------------------------//

// TestLocate checks tolerance-based sample lookup, hits and misses.
func TestLocate(t *testing.T) {
	g, err := mesh.Uniform(0, 0, 1, 1, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if err != nil {
		t.Fatalf("Uniform error: %v", err)
	}

	r, c, ok := g.Locate(2+1e-9, 1-1e-9, 1e-6)
	if !ok || r != 1 || c != 2 {
		t.Errorf("Locate(2,1) = (%d,%d,%v); want (1,2,true)", r, c, ok)
	}
	if _, _, ok = g.Locate(0.5, 1, 1e-6); ok {
		t.Error("Locate(0.5,1) hit a sample; want miss")
	}
	if _, _, ok = g.Locate(-3, 0, 1e-6); ok {
		t.Error("Locate(-3,0) hit a sample; want miss")
	}

	if !g.OnXLine(1, 1e-6) || g.OnXLine(1.5, 1e-6) {
		t.Error("OnXLine misclassified 1 or 1.5")
	}
	if !g.OnYLine(2, 1e-6) || g.OnYLine(-1, 1e-6) {
		t.Error("OnYLine misclassified 2 or -1")
	}
}
