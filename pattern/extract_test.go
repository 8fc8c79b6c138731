package pattern_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/pattern"
)

// mustGrid builds a grid from compact RGB triples, failing the test on error.
func mustGrid(t *testing.T, rows [][]grid.Sample) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)

	return g
}

func s(v uint8) grid.Sample { return grid.Sample{v, v, v} }

// TestExtract_Errors verifies input validation precedes any extraction work.
func TestExtract_Errors(t *testing.T) {
	g := mustGrid(t, [][]grid.Sample{
		{s(1), s(2)},
		{s(3), s(4)},
	})

	if _, err := pattern.Extract(nil, 1); !errors.Is(err, pattern.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
	if _, err := pattern.Extract(g, 0); !errors.Is(err, pattern.ErrPatternSize) {
		t.Errorf("size 0: want ErrPatternSize, got %v", err)
	}
	if _, err := pattern.Extract(g, 3); !errors.Is(err, pattern.ErrGridTooSmall) {
		t.Errorf("oversized pattern: want ErrGridTooSmall, got %v", err)
	}
}

// TestExtract_WindowCount checks the (H−N+1)(W−N+1) enumeration on a grid
// of all-distinct samples, where dedupe never merges.
func TestExtract_WindowCount(t *testing.T) {
	g := mustGrid(t, [][]grid.Sample{
		{s(1), s(2), s(3), s(4)},
		{s(5), s(6), s(7), s(8)},
		{s(9), s(10), s(11), s(12)},
	})

	set, err := pattern.Extract(g, 2)
	require.NoError(t, err)
	require.Equal(t, (3-2+1)*(4-2+1), set.Len())
	require.Equal(t, set.Len(), set.TotalFrequency())
	for i := 0; i < set.Len(); i++ {
		require.Equal(t, 1, set.Frequency(i))
	}
}

// TestExtract_DedupeAndFrequency verifies identical windows collapse into
// one pattern with summed frequency and first-occurrence order.
func TestExtract_DedupeAndFrequency(t *testing.T) {
	// Uniform grid: every window is identical.
	g := mustGrid(t, [][]grid.Sample{
		{s(7), s(7), s(7)},
		{s(7), s(7), s(7)},
	})

	set, err := pattern.Extract(g, 2)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	require.Equal(t, 2, set.Frequency(0)) // two windows, both equal
	require.Equal(t, 2, set.TotalFrequency())
	require.Equal(t, s(7), set.Pattern(0).TopLeft())
}

// TestExtract_Reflections checks the candidate list triples and that a
// horizontally asymmetric window gains its mirror as a new pattern.
func TestExtract_Reflections(t *testing.T) {
	g := mustGrid(t, [][]grid.Sample{
		{s(1), s(2)},
	})

	plain, err := pattern.Extract(g, 1)
	require.NoError(t, err)
	require.Equal(t, 2, plain.TotalFrequency())

	set, err := pattern.Extract(g, 1, pattern.WithReflections())
	require.NoError(t, err)
	// 2 windows ×3 (raw + vertical flips + horizontal flips).
	require.Equal(t, 6, set.TotalFrequency())
	// 1×1 flips are identity, so still only two distinct patterns.
	require.Equal(t, 2, set.Len())
	require.Equal(t, 3, set.Frequency(0))
	require.Equal(t, 3, set.Frequency(1))
}

// TestExtract_Rotations checks the ×4 candidate growth and that rotations
// of an asymmetric window become distinct patterns.
func TestExtract_Rotations(t *testing.T) {
	g := mustGrid(t, [][]grid.Sample{
		{s(1), s(2)},
		{s(3), s(4)},
	})

	set, err := pattern.Extract(g, 2, pattern.WithRotations())
	require.NoError(t, err)
	// 1 window ×4 (raw + three rotations), all distinct.
	require.Equal(t, 4, set.TotalFrequency())
	require.Equal(t, 4, set.Len())

	// 90° CCW of [[1,2],[3,4]] is [[2,4],[1,3]].
	rot := set.Pattern(1)
	require.Equal(t, s(2), rot.At(0, 0))
	require.Equal(t, s(4), rot.At(0, 1))
	require.Equal(t, s(1), rot.At(1, 0))
	require.Equal(t, s(3), rot.At(1, 1))
}

// TestExtract_FirstOccurrenceOrder pins pattern order to the scan order of
// the raw windows.
func TestExtract_FirstOccurrenceOrder(t *testing.T) {
	g := mustGrid(t, [][]grid.Sample{
		{s(9), s(8), s(9)},
	})

	set, err := pattern.Extract(g, 1)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	require.Equal(t, s(9), set.Pattern(0).TopLeft())
	require.Equal(t, s(8), set.Pattern(1).TopLeft())
	require.Equal(t, 2, set.Frequency(0))
	require.Equal(t, 1, set.Frequency(1))
}

// TestDirections covers count, zero-offset exclusion, and inverse closure.
func TestDirections(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		dirs := pattern.Directions(n)
		require.Len(t, dirs, (2*n-1)*(2*n-1)-1, "n=%d", n)

		seen := make(map[pattern.Direction]bool, len(dirs))
		for _, d := range dirs {
			require.NotEqual(t, pattern.Direction{}, d)
			require.Equal(t, d, d.Inverse().Inverse())
			seen[d] = true
		}
		// Closed under inversion.
		for _, d := range dirs {
			require.True(t, seen[d.Inverse()], "missing inverse of %+v", d)
		}
	}
}
