package mesh

// Discretize buckets continuous samples into 1-based category indices.
// The cut points in levels split the value range into len(levels)+1 buckets:
// a sample z falls in bucket i+1 when levels[i-1] < z ≤ levels[i], with the
// list implicitly extended below the minimum and above the maximum sample so
// every value lands in exactly one bucket. An empty levels list maps every
// sample to category 1.
//
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input and
// ErrUnsortedLevels when the cut points are not strictly ascending.
// Complexity: O(R·C·L) time, O(R·C) memory.
func Discretize(z [][]float64, levels []float64) ([][]int, error) {
	if len(z) == 0 || len(z[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(z[0])
	for _, row := range z {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			return nil, ErrUnsortedLevels
		}
	}

	out := make([][]int, len(z))
	for r, row := range z {
		out[r] = make([]int, cols)
		for c, v := range row {
			// Buckets are half-open (lo, hi]; everything above the last
			// cut point shares the final bucket.
			cat := 1
			for _, cut := range levels {
				if v > cut {
					cat++
				}
			}
			out[r][c] = cat
		}
	}

	return out, nil
}
