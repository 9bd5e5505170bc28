package mesh

import "math"

// alignTol is the relative tolerance used when validating that coordinate
// matrices repeat one axis and that spacing is uniform. Construction inputs
// normally come from exact meshgrid arithmetic, so this only needs to absorb
// float rounding, not real geometric slack.
const alignTol = 1e-9

// Grid is an immutable R×C sampling grid: strictly increasing, evenly spaced
// X and Y axes plus a category value per sample. Values[r][c] is the category
// at (X(c), Y(r)); row index follows the Y axis, column index the X axis,
// with the smallest coordinates at index (0, 0).
type Grid struct {
	xAxis  []float64
	yAxis  []float64
	values [][]int
}

// New constructs a Grid from full coordinate matrices and a category matrix,
// all of identical shape, as produced by evaluating a function over a
// meshgrid. Inputs are deep-copied.
//
// Returns ErrEmptyGrid, ErrTooSmall, ErrNonRectangular, ErrShapeMismatch,
// ErrNonMonotonic, ErrNonUniform or ErrNotAligned on malformed input.
// Complexity: O(R·C) time and memory.
func New(xs, ys [][]float64, values [][]int) (*Grid, error) {
	rows, cols, err := shapeOf(values)
	if err != nil {
		return nil, err
	}
	if err = matchShape(xs, rows, cols); err != nil {
		return nil, err
	}
	if err = matchShape(ys, rows, cols); err != nil {
		return nil, err
	}
	// Every row of xs must repeat xs[0]; every column of ys must repeat
	// the first column. Meshgrid output satisfies this exactly.
	for r := 1; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !near(xs[r][c], xs[0][c]) {
				return nil, ErrNotAligned
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 1; c < cols; c++ {
			if !near(ys[r][c], ys[r][0]) {
				return nil, ErrNotAligned
			}
		}
	}
	yAxis := make([]float64, rows)
	for r := 0; r < rows; r++ {
		yAxis[r] = ys[r][0]
	}

	return FromAxes(xs[0], yAxis, values)
}

// FromAxes constructs a Grid from bare X and Y axes and a category matrix
// with len(yAxis) rows and len(xAxis) columns. Inputs are deep-copied.
// Complexity: O(R·C) time and memory.
func FromAxes(xAxis, yAxis []float64, values [][]int) (*Grid, error) {
	rows, cols, err := shapeOf(values)
	if err != nil {
		return nil, err
	}
	if len(xAxis) != cols || len(yAxis) != rows {
		return nil, ErrShapeMismatch
	}
	if err = validateAxis(xAxis); err != nil {
		return nil, err
	}
	if err = validateAxis(yAxis); err != nil {
		return nil, err
	}
	g := &Grid{
		xAxis:  append([]float64(nil), xAxis...),
		yAxis:  append([]float64(nil), yAxis...),
		values: make([][]int, rows),
	}
	for r := 0; r < rows; r++ {
		g.values[r] = append([]int(nil), values[r]...)
	}

	return g, nil
}

// Uniform constructs a Grid whose samples start at (x0, y0) and advance by
// dx along columns and dy along rows — the meshgrid a caller would build by
// ranging over two arithmetic progressions.
// Complexity: O(R·C) time and memory.
func Uniform(x0, y0, dx, dy float64, values [][]int) (*Grid, error) {
	rows, cols, err := shapeOf(values)
	if err != nil {
		return nil, err
	}
	if dx <= 0 || dy <= 0 {
		return nil, ErrNonMonotonic
	}
	xAxis := make([]float64, cols)
	for c := 0; c < cols; c++ {
		xAxis[c] = x0 + float64(c)*dx
	}
	yAxis := make([]float64, rows)
	for r := 0; r < rows; r++ {
		yAxis[r] = y0 + float64(r)*dy
	}

	return FromAxes(xAxis, yAxis, values)
}

// Rows returns the number of samples along the Y axis.
func (g *Grid) Rows() int { return len(g.yAxis) }

// Cols returns the number of samples along the X axis.
func (g *Grid) Cols() int { return len(g.xAxis) }

// Value returns the category at row r, column c.
func (g *Grid) Value(r, c int) int { return g.values[r][c] }

// X returns the X coordinate of column c.
func (g *Grid) X(c int) float64 { return g.xAxis[c] }

// Y returns the Y coordinate of row r.
func (g *Grid) Y(r int) float64 { return g.yAxis[r] }

// CellSize returns the sample spacing along each axis.
func (g *Grid) CellSize() (dx, dy float64) {
	return g.xAxis[1] - g.xAxis[0], g.yAxis[1] - g.yAxis[0]
}

// Bounds returns the extent of the sampled area.
func (g *Grid) Bounds() (xMin, yMin, xMax, yMax float64) {
	return g.xAxis[0], g.yAxis[0], g.xAxis[len(g.xAxis)-1], g.yAxis[len(g.yAxis)-1]
}

// Locate maps a coordinate pair onto sample indices, tolerating a deviation
// of up to eps per axis. The second return is false when (x, y) does not hit
// a sample. Complexity: O(1).
func (g *Grid) Locate(x, y, eps float64) (r, c int, ok bool) {
	dx, dy := g.CellSize()
	c = int(math.Round((x - g.xAxis[0]) / dx))
	r = int(math.Round((y - g.yAxis[0]) / dy))
	if c < 0 || c >= len(g.xAxis) || r < 0 || r >= len(g.yAxis) {
		return 0, 0, false
	}
	if math.Abs(g.xAxis[c]-x) > eps || math.Abs(g.yAxis[r]-y) > eps {
		return 0, 0, false
	}

	return r, c, true
}

// OnXLine reports whether x coincides with a sampled X coordinate within eps.
func (g *Grid) OnXLine(x, eps float64) bool {
	dx, _ := g.CellSize()
	c := int(math.Round((x - g.xAxis[0]) / dx))

	return c >= 0 && c < len(g.xAxis) && math.Abs(g.xAxis[c]-x) <= eps
}

// OnYLine reports whether y coincides with a sampled Y coordinate within eps.
func (g *Grid) OnYLine(y, eps float64) bool {
	_, dy := g.CellSize()
	r := int(math.Round((y - g.yAxis[0]) / dy))

	return r >= 0 && r < len(g.yAxis) && math.Abs(g.yAxis[r]-y) <= eps
}

// shapeOf validates a category matrix and returns its dimensions.
func shapeOf(values [][]int) (rows, cols int, err error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	rows, cols = len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return 0, 0, ErrNonRectangular
		}
	}
	if rows < 2 || cols < 2 {
		return 0, 0, ErrTooSmall
	}

	return rows, cols, nil
}

// matchShape checks a coordinate matrix against the expected dimensions.
func matchShape(m [][]float64, rows, cols int) error {
	if len(m) != rows {
		return ErrShapeMismatch
	}
	for _, row := range m {
		if len(row) != cols {
			return ErrShapeMismatch
		}
	}

	return nil
}

// validateAxis checks strict monotonicity and uniform spacing.
func validateAxis(axis []float64) error {
	step := axis[1] - axis[0]
	for i := 1; i < len(axis); i++ {
		d := axis[i] - axis[i-1]
		if d <= 0 {
			return ErrNonMonotonic
		}
		if !near(d, step) {
			return ErrNonUniform
		}
	}

	return nil
}

// near compares two coordinates with a relative tolerance.
func near(a, b float64) bool {
	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), 1)

	return math.Abs(a-b) <= alignTol*scale
}
