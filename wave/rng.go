// Package wave - RNG utilities for collapse choice and tie-breaking.
//
// Randomness policy, shared by every solver entry point:
//   - Determinism: same seed ⇒ identical output across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere in the package.
//   - math/rand.Rand is NOT goroutine-safe; a solve owns its source.
package wave

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// weightedChoice draws one element of indices with probability
// proportional to weights[indices[i]]. Weights are positive by the
// frequency-table invariant, so the running total is always ≥ 1.
// Complexity: O(len(indices)).
func weightedChoice(rng *rand.Rand, indices []int, weights []int) int {
	total := 0
	for _, idx := range indices {
		total += weights[idx]
	}
	x := rng.Intn(total)
	for _, idx := range indices {
		x -= weights[idx]
		if x < 0 {
			return idx
		}
	}
	// Unreachable while weights stay positive; keep the last index as a
	// deterministic fallback.
	return indices[len(indices)-1]
}

// pickUniform returns one cell of cells, uniformly at random.
// Complexity: O(1).
func pickUniform(rng *rand.Rand, cells []Cell) Cell {
	return cells[rng.Intn(len(cells))]
}
