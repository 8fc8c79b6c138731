package wave

import "math/rand"

// MinEntropyCell selects the next cell to collapse.
//
// The contradiction scan takes priority: if any cell has zero possible
// patterns the result is (Cell{}, StatusContradiction) regardless of the
// other cells' entropies. Otherwise the entropy of every uncollapsed cell
// is the sum, over its possible patterns, of that pattern's frequency
// normalized by the global frequency sum; collapsed cells contribute 0
// and are excluded from the minimum search. If no cell has positive
// entropy the wave is fully collapsed. Ties for the minimum are broken
// uniformly at random, never by scan order.
//
// freqs must be the solver's frequency table (one positive entry per
// pattern index); rng must be non-nil.
// Complexity: O(H×W×P).
func (w *Wave) MinEntropyCell(freqs []int, rng *rand.Rand) (Cell, Status) {
	total := 0
	for _, f := range freqs {
		total += f
	}

	minEntropy := 0.0
	var minima []Cell
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			cell := Cell{Row: r, Col: c}
			bits := w.cellBits(cell)

			possible := 0
			sum := 0
			for p, b := range bits {
				if b {
					possible++
					sum += freqs[p]
				}
			}
			if possible == 0 {
				return Cell{}, StatusContradiction
			}
			if possible == 1 {
				// collapsed: entropy defined as 0 for selection purposes
				continue
			}
			entropy := float64(sum) / float64(total)
			switch {
			case len(minima) == 0 || entropy < minEntropy:
				minEntropy = entropy
				minima = append(minima[:0], cell)
			case entropy == minEntropy:
				minima = append(minima, cell)
			}
		}
	}
	if len(minima) == 0 {
		return Cell{}, StatusCollapsed
	}

	return pickUniform(rng, minima), StatusInProgress
}
