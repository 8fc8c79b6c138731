package pattern

import "github.com/katalvlaran/wavecollapse/grid"

// flipVertical returns p mirrored across its horizontal axis (row order
// reversed).
// Complexity: O(N²).
func flipVertical(p Pattern) Pattern {
	n := p.size
	data := make([]grid.Sample, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			data[r*n+c] = p.At(n-1-r, c)
		}
	}

	return Pattern{size: n, data: data}
}

// flipHorizontal returns p mirrored across its vertical axis (column
// order reversed).
// Complexity: O(N²).
func flipHorizontal(p Pattern) Pattern {
	n := p.size
	data := make([]grid.Sample, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			data[r*n+c] = p.At(r, n-1-c)
		}
	}

	return Pattern{size: n, data: data}
}

// rotate90 returns p rotated 90° counterclockwise: out(r,c) = in(c, N-1-r).
// Applying it k times yields the 90k° rotation.
// Complexity: O(N²).
func rotate90(p Pattern) Pattern {
	n := p.size
	data := make([]grid.Sample, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			data[r*n+c] = p.At(c, n-1-r)
		}
	}

	return Pattern{size: n, data: data}
}
