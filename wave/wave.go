package wave

// Wave is the possibility tensor: one boolean per (cell, pattern), true
// while that pattern remains possible at that cell. Storage is a flat
// row-major arena indexed (row*width + col)*numPatterns + pattern, which
// keeps each cell's possibility vector contiguous for propagation.
//
// The tensor starts all true and bits are only ever cleared; Wave exposes
// no API that can set a cleared bit again.
type Wave struct {
	height, width int
	numPatterns   int
	bits          []bool
}

// New creates a tensor with every pattern possible at every cell.
// Returns ErrBadOutputSize for non-positive dimensions and ErrNoPatterns
// for numPatterns < 1.
// Complexity: O(H×W×P) memory.
func New(height, width, numPatterns int) (*Wave, error) {
	if height < 1 || width < 1 {
		return nil, ErrBadOutputSize
	}
	if numPatterns < 1 {
		return nil, ErrNoPatterns
	}
	bits := make([]bool, height*width*numPatterns)
	for i := range bits {
		bits[i] = true
	}

	return &Wave{height: height, width: width, numPatterns: numPatterns, bits: bits}, nil
}

// Height returns the number of rows.
func (w *Wave) Height() int { return w.height }

// Width returns the number of columns.
func (w *Wave) Width() int { return w.width }

// NumPatterns returns the pattern-axis length of the tensor.
func (w *Wave) NumPatterns() int { return w.numPatterns }

// InBounds reports whether cell lies within the output grid.
// Complexity: O(1).
func (w *Wave) InBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < w.height && cell.Col >= 0 && cell.Col < w.width
}

// cellBits returns the possibility vector of cell as a subslice of the
// arena. Mutations by package-internal callers clear bits only.
func (w *Wave) cellBits(cell Cell) []bool {
	base := (cell.Row*w.width + cell.Col) * w.numPatterns

	return w.bits[base : base+w.numPatterns]
}

// Possible reports whether pattern p remains possible at cell.
// Complexity: O(1).
func (w *Wave) Possible(cell Cell, p int) bool {
	return w.cellBits(cell)[p]
}

// CountPossible returns the number of patterns still possible at cell.
// Complexity: O(P).
func (w *Wave) CountPossible(cell Cell) int {
	n := 0
	for _, b := range w.cellBits(cell) {
		if b {
			n++
		}
	}

	return n
}

// PossibleIndices appends the indices of the patterns still possible at
// cell to dst and returns it. Pass a reused buffer to avoid allocation in
// hot loops.
// Complexity: O(P).
func (w *Wave) PossibleIndices(cell Cell, dst []int) []int {
	dst = dst[:0]
	for p, b := range w.cellBits(cell) {
		if b {
			dst = append(dst, p)
		}
	}

	return dst
}

// IsCollapsed reports whether cell has exactly one possible pattern.
// Complexity: O(P).
func (w *Wave) IsCollapsed(cell Cell) bool {
	return w.CountPossible(cell) == 1
}

// CollapsedPattern returns the single possible pattern index at cell and
// true, or (0, false) if the cell is not collapsed.
// Complexity: O(P).
func (w *Wave) CollapsedPattern(cell Cell) (int, bool) {
	idx, n := 0, 0
	for p, b := range w.cellBits(cell) {
		if b {
			idx = p
			n++
		}
	}
	if n != 1 {
		return 0, false
	}

	return idx, true
}

// Contradicted reports whether any cell has zero possible patterns.
// Complexity: O(H×W×P).
func (w *Wave) Contradicted() bool {
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			if w.CountPossible(Cell{Row: r, Col: c}) == 0 {
				return true
			}
		}
	}

	return false
}

// CountCollapsed returns the number of fully collapsed cells.
// Complexity: O(H×W×P).
func (w *Wave) CountCollapsed() int {
	n := 0
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			if w.IsCollapsed(Cell{Row: r, Col: c}) {
				n++
			}
		}
	}

	return n
}

// TotalPossibilities returns the count of true entries across the whole
// tensor. It is non-increasing over the lifetime of a solve.
// Complexity: O(H×W×P).
func (w *Wave) TotalPossibilities() int {
	n := 0
	for _, b := range w.bits {
		if b {
			n++
		}
	}

	return n
}

// Ban clears pattern p at cell. Banning an already-impossible pattern is
// a no-op. Ban is the only exported mutation and can only tighten the
// tensor; it exists for seeding constraints before a solve.
// Complexity: O(1).
func (w *Wave) Ban(cell Cell, p int) {
	w.cellBits(cell)[p] = false
}

// Clone returns an independent deep copy of the tensor.
// Complexity: O(H×W×P).
func (w *Wave) Clone() *Wave {
	bits := make([]bool, len(w.bits))
	copy(bits, w.bits)

	return &Wave{height: w.height, width: w.width, numPatterns: w.numPatterns, bits: bits}
}
