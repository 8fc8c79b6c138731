// Package rules defines the compatibility table and its construction for
// github.com/katalvlaran/wavecollapse.
package rules

import (
	"errors"

	"github.com/katalvlaran/wavecollapse/pattern"
)

// ErrNilPatternSet is returned when Build receives a nil or empty set.
var ErrNilPatternSet = errors.New("rules: pattern set is nil or empty")

// Table maps (pattern index, direction) to the set of pattern indices
// that may legally be placed at that offset. Rows are stored as dense
// boolean masks aligned with the wave possibility tensor, so propagation
// can union and intersect them without conversions. Immutable once built.
type Table struct {
	numPatterns int
	dirs        []pattern.Direction
	dirIndex    map[pattern.Direction]int
	inverse     []int    // inverse[di] = index of dirs[di].Inverse()
	allowed     [][]bool // allowed[p*len(dirs)+di] is a mask of length numPatterns
}

// Build derives the full compatibility table for set.
// Pairs are evaluated once over q ≥ p; a match fills both rules[p][d] and
// rules[q][−d], which keeps the table symmetric under direction inversion
// by construction.
// Returns ErrNilPatternSet for a nil or empty set.
// Complexity: O(P²×D×N²) worst case.
func Build(set *pattern.Set) (*Table, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrNilPatternSet
	}
	dirs := set.Directions()
	t := &Table{
		numPatterns: set.Len(),
		dirs:        dirs,
		dirIndex:    make(map[pattern.Direction]int, len(dirs)),
		inverse:     make([]int, len(dirs)),
		allowed:     make([][]bool, set.Len()*len(dirs)),
	}
	for di, d := range dirs {
		t.dirIndex[d] = di
	}
	for di, d := range dirs {
		t.inverse[di] = t.dirIndex[d.Inverse()]
	}
	for i := range t.allowed {
		t.allowed[i] = make([]bool, set.Len())
	}

	for di, d := range dirs {
		inv := t.inverse[di]
		for p := 0; p < set.Len(); p++ {
			for q := p; q < set.Len(); q++ {
				if !Compatible(set.Pattern(p), set.Pattern(q), d) {
					continue
				}
				t.allowed[p*len(dirs)+di][q] = true
				t.allowed[q*len(dirs)+inv][p] = true
			}
		}
	}

	return t, nil
}

// NumPatterns returns the number of pattern indices the table covers.
// Complexity: O(1).
func (t *Table) NumPatterns() int { return t.numPatterns }

// NumDirections returns the size of the direction set.
// Complexity: O(1).
func (t *Table) NumDirections() int { return len(t.dirs) }

// Direction returns the di-th direction of the table's direction set.
// Complexity: O(1).
func (t *Table) Direction(di int) pattern.Direction { return t.dirs[di] }

// DirIndex returns the table index of direction d and whether d belongs
// to the direction set.
// Complexity: O(1).
func (t *Table) DirIndex(d pattern.Direction) (int, bool) {
	di, ok := t.dirIndex[d]

	return di, ok
}

// InverseIndex returns the index of the inverse of the di-th direction.
// Complexity: O(1).
func (t *Table) InverseIndex(di int) int { return t.inverse[di] }

// Allows reports whether pattern q may be placed at offset d from a cell
// holding pattern p. Unknown directions allow nothing.
// Complexity: O(1).
func (t *Table) Allows(p int, d pattern.Direction, q int) bool {
	di, ok := t.dirIndex[d]
	if !ok {
		return false
	}

	return t.allowed[p*len(t.dirs)+di][q]
}

// Mask returns the dense compatibility row for pattern p in the di-th
// direction: Mask(p,di)[q] is true iff q is compatible. The row is shared
// with the table; callers must treat it as read-only.
// Complexity: O(1).
func (t *Table) Mask(p, di int) []bool {
	return t.allowed[p*len(t.dirs)+di]
}

// Compatible reports whether patterns a and b agree on their overlapping
// region when b sits at offset d from a. The overlap of a is clipped to
// the valid intersection window and compared sample-wise against the
// mirrored overlap of b. An offset whose magnitude reaches the pattern
// size yields an empty overlap, which compares as vacuously compatible.
// Complexity: O(N²).
func Compatible(a, b pattern.Pattern, d pattern.Direction) bool {
	n := a.Size()
	ar0, ar1, ac0, ac1 := overlap(n, d)
	br0, _, bc0, _ := overlap(n, d.Inverse())
	for r := 0; r < ar1-ar0; r++ {
		for c := 0; c < ac1-ac0; c++ {
			if a.At(ar0+r, ac0+c) != b.At(br0+r, bc0+c) {
				return false
			}
		}
	}

	return true
}

// overlap returns the half-open row and column bounds of the region of an
// n×n pattern that intersects a second pattern offset by d. The bounds
// collapse to an empty range when |d| ≥ n on either axis.
func overlap(n int, d pattern.Direction) (r0, r1, c0, c1 int) {
	r0, r1 = max(0, d.DR), min(n+d.DR, n)
	c0, c1 = max(0, d.DC), min(n+d.DC, n)
	if r0 > r1 {
		r1 = r0
	}
	if c0 > c1 {
		c1 = c0
	}

	return r0, r1, c0, c1
}
