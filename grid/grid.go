package grid

// New constructs a Grid from a non-empty, rectangular 2D slice of samples.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if samples has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func New(samples [][]Sample) (*Grid, error) {
	if len(samples) == 0 || len(samples[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(samples), len(samples[0])
	for _, row := range samples {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	flat := make([]Sample, 0, h*w)
	for _, row := range samples {
		flat = append(flat, row...)
	}

	return &Grid{height: h, width: w, samples: flat}, nil
}

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// At returns the sample at row r, column c. Callers must ensure (r,c)
// is in bounds; out-of-range access panics like a slice access would.
// Complexity: O(1).
func (g *Grid) At(r, c int) Sample {
	return g.samples[g.index(r, c)]
}

// index maps (r,c) to a row-major index: r*width + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.width + c
}
