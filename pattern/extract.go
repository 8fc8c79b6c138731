package pattern

import "github.com/katalvlaran/wavecollapse/grid"

// Extract enumerates every size×size window of g (top-left corner inside
// the grid bounds, no wraparound), applies the configured augmentations,
// and deduplicates the candidates into an ordered Set.
//
// Augmentation mirrors the candidate list construction order: first all
// raw windows, then the vertical and horizontal flips of every window
// (if WithReflections), then the 90°/180°/270° rotations of every
// pre-augmentation window (if WithRotations). Frequencies count
// occurrences across the full augmented candidate list, so every pattern
// in the Set has frequency ≥ 1.
//
// Returns ErrNilGrid, ErrPatternSize, or ErrGridTooSmall for invalid
// input; extraction performs no work after a validation failure.
// Complexity: O(H×W×N²) plus augmentation and dedupe, see package doc.
func Extract(g *grid.Grid, size int, opts ...Option) (*Set, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if size < 1 {
		return nil, ErrPatternSize
	}
	if g.Height() < size || g.Width() < size {
		return nil, ErrGridTooSmall
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	windows := extractWindows(g, size)
	candidates := augment(windows, o)

	// Dedupe by exact sample equality, order stable per first occurrence.
	index := make(map[string]int, len(candidates))
	set := &Set{
		size:      size,
		dirs:      Directions(size),
		freqTotal: len(candidates),
	}
	for _, cand := range candidates {
		k := cand.key()
		if i, seen := index[k]; seen {
			set.freqs[i]++
			continue
		}
		index[k] = len(set.patterns)
		set.patterns = append(set.patterns, cand)
		set.freqs = append(set.freqs, 1)
	}

	return set, nil
}

// extractWindows copies every N×N window of g, row-major over top-left
// corners.
func extractWindows(g *grid.Grid, n int) []Pattern {
	rows, cols := g.Height()-n+1, g.Width()-n+1
	windows := make([]Pattern, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data := make([]grid.Sample, 0, n*n)
			for pr := 0; pr < n; pr++ {
				for pc := 0; pc < n; pc++ {
					data = append(data, g.At(r+pr, c+pc))
				}
			}
			windows = append(windows, Pattern{size: n, data: data})
		}
	}

	return windows
}

// augment appends the flip and rotation variants of the raw windows.
// Rotations are computed from the pre-augmentation windows, not from the
// flipped copies.
func augment(windows []Pattern, o ExtractOptions) []Pattern {
	candidates := windows
	if o.Reflections {
		for _, w := range windows {
			candidates = append(candidates, flipVertical(w))
		}
		for _, w := range windows {
			candidates = append(candidates, flipHorizontal(w))
		}
	}
	if o.Rotations {
		for k := 1; k <= 3; k++ {
			for _, w := range windows {
				rot := w
				for i := 0; i < k; i++ {
					rot = rotate90(rot)
				}
				candidates = append(candidates, rot)
			}
		}
	}

	return candidates
}
