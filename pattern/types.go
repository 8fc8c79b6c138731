// Package pattern defines the core types, options, and sentinel errors
// for the pattern-extraction subpackage of
// github.com/katalvlaran/wavecollapse.
package pattern

import (
	"errors"

	"github.com/katalvlaran/wavecollapse/grid"
)

// Sentinel errors for pattern extraction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("pattern: grid is nil")
	// ErrPatternSize indicates a pattern size smaller than 1.
	ErrPatternSize = errors.New("pattern: pattern size must be at least 1")
	// ErrGridTooSmall indicates the grid cannot fit a single window.
	ErrGridTooSmall = errors.New("pattern: grid smaller than pattern size in at least one dimension")
)

// Direction is an offset vector (DR rows, DC columns) at which two
// patterns may overlap. The zero offset is never a valid Direction.
type Direction struct {
	DR, DC int
}

// Inverse returns the direction multiplied by -1 on both axes.
// Inverse is involutive: d.Inverse().Inverse() == d.
// Complexity: O(1).
func (d Direction) Inverse() Direction {
	return Direction{DR: -d.DR, DC: -d.DC}
}

// Directions returns every offset (dr,dc) with |dr|,|dc| < n, excluding
// (0,0), in a stable generation order (column offset outer, row offset
// inner). For n = 1 the result is empty (size-1 patterns cannot overlap);
// for n = 2 it holds the 8 surrounding offsets.
// Complexity: O(n²) time and memory.
func Directions(n int) []Direction {
	dirs := make([]Direction, 0, (2*n-1)*(2*n-1)-1)
	for dc := -n + 1; dc < n; dc++ {
		for dr := -n + 1; dr < n; dr++ {
			if dr == 0 && dc == 0 {
				continue
			}
			dirs = append(dirs, Direction{DR: dr, DC: dc})
		}
	}

	return dirs
}

// Pattern is an immutable N×N block of samples, stored row-major.
type Pattern struct {
	size int
	data []grid.Sample // len = size*size
}

// Size returns the pattern's side length N.
// Complexity: O(1).
func (p Pattern) Size() int { return p.size }

// At returns the sample at row r, column c of the pattern.
// Complexity: O(1).
func (p Pattern) At(r, c int) grid.Sample {
	return p.data[r*p.size+c]
}

// TopLeft returns the pattern's representative sample, the one a fully
// collapsed cell renders as.
// Complexity: O(1).
func (p Pattern) TopLeft() grid.Sample {
	return p.data[0]
}

// key returns a comparable dedupe key over the raw sample bytes.
func (p Pattern) key() string {
	b := make([]byte, 0, len(p.data)*grid.Channels)
	for _, s := range p.data {
		b = append(b, s[0], s[1], s[2])
	}

	return string(b)
}

// Option configures extraction via functional arguments.
type Option func(*ExtractOptions)

// ExtractOptions holds the augmentation switches for Extract.
type ExtractOptions struct {
	// Reflections adds the horizontal and vertical flip of every window.
	Reflections bool
	// Rotations adds the 90°, 180° and 270° rotations of every window.
	Rotations bool
}

// DefaultOptions returns ExtractOptions with both augmentations disabled.
func DefaultOptions() ExtractOptions {
	return ExtractOptions{Reflections: false, Rotations: false}
}

// WithReflections enables flip augmentation.
func WithReflections() Option {
	return func(o *ExtractOptions) { o.Reflections = true }
}

// WithRotations enables rotation augmentation.
func WithRotations() Option {
	return func(o *ExtractOptions) { o.Rotations = true }
}

// Set is the ordered outcome of extraction: distinct patterns (stable per
// first occurrence), parallel frequencies, and the direction set for the
// pattern size. A Set is immutable once returned by Extract.
type Set struct {
	size      int
	patterns  []Pattern
	freqs     []int
	dirs      []Direction
	freqTotal int
}

// Len returns the number of distinct patterns.
// Complexity: O(1).
func (s *Set) Len() int { return len(s.patterns) }

// Size returns the pattern side length N.
// Complexity: O(1).
func (s *Set) Size() int { return s.size }

// Pattern returns the i-th distinct pattern.
// Complexity: O(1).
func (s *Set) Pattern(i int) Pattern { return s.patterns[i] }

// Frequency returns the occurrence count of the i-th pattern across the
// full augmented candidate list. Always ≥ 1.
// Complexity: O(1).
func (s *Set) Frequency(i int) int { return s.freqs[i] }

// Frequencies returns a copy of the parallel frequency list.
// Complexity: O(P).
func (s *Set) Frequencies() []int {
	out := make([]int, len(s.freqs))
	copy(out, s.freqs)

	return out
}

// TotalFrequency returns the sum of all pattern frequencies, i.e. the
// size of the augmented candidate list.
// Complexity: O(1).
func (s *Set) TotalFrequency() int { return s.freqTotal }

// Directions returns the direction set for the pattern size. The slice
// is shared; callers must not mutate it.
// Complexity: O(1).
func (s *Set) Directions() []Direction { return s.dirs }
