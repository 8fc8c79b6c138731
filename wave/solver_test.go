package wave_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/pattern"
	"github.com/katalvlaran/wavecollapse/rules"
	"github.com/katalvlaran/wavecollapse/wave"
)

// SolverSuite exercises the observe/collapse/propagate loop end to end.
type SolverSuite struct {
	suite.Suite
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func (s *SolverSuite) sample(v uint8) grid.Sample { return grid.Sample{v, v, v} }

// checkerboard builds an alternating two-color grid.
func (s *SolverSuite) checkerboard(h, w int) *grid.Grid {
	rows := make([][]grid.Sample, h)
	for r := range rows {
		rows[r] = make([]grid.Sample, w)
		for c := range rows[r] {
			if (r+c)%2 == 0 {
				rows[r][c] = s.sample(0)
			} else {
				rows[r][c] = s.sample(255)
			}
		}
	}
	g, err := grid.New(rows)
	s.Require().NoError(err)

	return g
}

func (s *SolverSuite) extract(g *grid.Grid, size int, opts ...pattern.Option) (*pattern.Set, *rules.Table) {
	set, err := pattern.Extract(g, size, opts...)
	s.Require().NoError(err)
	table, err := rules.Build(set)
	s.Require().NoError(err)

	return set, table
}

// TestInputValidation verifies the guards that run before any solving work.
func (s *SolverSuite) TestInputValidation() {
	set, table := s.extract(s.checkerboard(3, 3), 2)

	_, err := wave.Solve(nil, table, 4, 4)
	s.Require().ErrorIs(err, wave.ErrNilPatternSet)

	_, err = wave.Solve(set, nil, 4, 4)
	s.Require().ErrorIs(err, wave.ErrNilRuleTable)

	_, err = wave.Solve(set, table, 0, 4)
	s.Require().ErrorIs(err, wave.ErrBadOutputSize)

	_, err = wave.Solve(set, table, 4, 4, wave.WithMaxIterations(-1))
	s.Require().ErrorIs(err, wave.ErrOptionViolation)

	// A table built for a different pattern count is rejected.
	rows := [][]grid.Sample{
		{s.sample(1), s.sample(2), s.sample(3), s.sample(4)},
		{s.sample(5), s.sample(6), s.sample(7), s.sample(8)},
	}
	g, err2 := grid.New(rows)
	s.Require().NoError(err2)
	other, otherTable := s.extract(g, 2)
	s.Require().NotEqual(set.Len(), other.Len())
	_, err = wave.Solve(set, otherTable, 4, 4)
	s.Require().ErrorIs(err, wave.ErrTableMismatch)
}

// TestSingleColor is the trivial end-to-end scenario: a 2×2 single-color
// input with pattern size 1 solved to 4×4 collapses every cell to the one
// pattern.
func (s *SolverSuite) TestSingleColor() {
	rows := [][]grid.Sample{
		{s.sample(9), s.sample(9)},
		{s.sample(9), s.sample(9)},
	}
	g, err := grid.New(rows)
	s.Require().NoError(err)

	set, table := s.extract(g, 1)
	s.Require().Equal(1, set.Len())

	res, err := wave.Solve(set, table, 4, 4)
	s.Require().NoError(err)
	s.Require().Equal(wave.StatusCollapsed, res.Outcome)
	s.Require().Equal(16, res.Wave.CountCollapsed())
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p, ok := res.Wave.CollapsedPattern(wave.Cell{Row: r, Col: c})
			s.Require().True(ok)
			s.Require().Equal(0, p)
		}
	}
}

// TestCheckerboard solves a structured input and checks every adjacent
// pair of collapsed cells against the rule table.
func (s *SolverSuite) TestCheckerboard() {
	set, table := s.extract(s.checkerboard(4, 4), 2)

	res, err := wave.Solve(set, table, 6, 6, wave.WithSeed(7))
	s.Require().NoError(err)
	s.Require().Equal(wave.StatusCollapsed, res.Outcome)
	s.Require().Equal(36, res.Wave.CountCollapsed())

	// Local consistency: every collapsed pair at every direction obeys
	// the compatibility table.
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			p, ok := res.Wave.CollapsedPattern(wave.Cell{Row: r, Col: c})
			s.Require().True(ok)
			for di := 0; di < table.NumDirections(); di++ {
				d := table.Direction(di)
				nr, nc := r+d.DR, c+d.DC
				if nr < 0 || nr >= 6 || nc < 0 || nc >= 6 {
					continue
				}
				q, ok := res.Wave.CollapsedPattern(wave.Cell{Row: nr, Col: nc})
				s.Require().True(ok)
				s.Require().True(table.Allows(p, d, q),
					"cells (%d,%d)→(%d,%d) hold incompatible patterns %d,%d", r, c, nr, nc, p, q)
			}
		}
	}
}

// TestDeterminism: identical seeds must reproduce identical output.
func (s *SolverSuite) TestDeterminism() {
	set, table := s.extract(s.checkerboard(4, 4), 2)

	first, err := wave.Solve(set, table, 5, 5, wave.WithSeed(42))
	s.Require().NoError(err)
	second, err := wave.Solve(set, table, 5, 5, wave.WithSeed(42))
	s.Require().NoError(err)

	s.Require().Equal(first.Outcome, second.Outcome)
	s.Require().Equal(first.Iterations, second.Iterations)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			p1, _ := first.Wave.CollapsedPattern(wave.Cell{Row: r, Col: c})
			p2, _ := second.Wave.CollapsedPattern(wave.Cell{Row: r, Col: c})
			s.Require().Equal(p1, p2)
		}
	}
}

// TestMonotonicity: the snapshot hook sees a non-increasing count of true
// entries after every propagate phase.
func (s *SolverSuite) TestMonotonicity() {
	set, table := s.extract(s.checkerboard(4, 4), 2, pattern.WithRotations())

	var totals []int
	var iters []int
	res, err := wave.Solve(set, table, 8, 8, wave.WithSeed(3),
		wave.WithSnapshot(func(w *wave.Wave, iteration int) {
			totals = append(totals, w.TotalPossibilities())
			iters = append(iters, iteration)
		}))
	s.Require().NoError(err)
	s.Require().Equal(wave.StatusCollapsed, res.Outcome)
	s.Require().NotEmpty(totals)
	s.Require().Equal(res.Iterations, len(totals), "one snapshot per propagate phase")

	prev := 8 * 8 * set.Len()
	for i, total := range totals {
		s.Require().LessOrEqual(total, prev, "snapshot %d grew the tensor", i)
		s.Require().Equal(i+1, iters[i])
		prev = total
	}
	// Terminal tensor: one bit per cell.
	s.Require().Equal(8*8, totals[len(totals)-1])
}

// TestContradiction: an input strip whose two patterns admit no vertical
// neighbor at all must reach Contradiction on any 2×2 solve, not loop.
func (s *SolverSuite) TestContradiction() {
	// Six distinct colors: both extracted 2×2 patterns have unique rows,
	// so no pattern may sit above or below another.
	rows := [][]grid.Sample{
		{s.sample(1), s.sample(2), s.sample(3)},
		{s.sample(4), s.sample(5), s.sample(6)},
	}
	g, err := grid.New(rows)
	s.Require().NoError(err)
	set, table := s.extract(g, 2)
	s.Require().Equal(2, set.Len())

	down := pattern.Direction{DR: 1, DC: 0}
	for p := 0; p < set.Len(); p++ {
		for q := 0; q < set.Len(); q++ {
			s.Require().False(table.Allows(p, down, q))
		}
	}

	res, err := wave.Solve(set, table, 2, 2, wave.WithSeed(11))
	s.Require().NoError(err)
	s.Require().Equal(wave.StatusContradiction, res.Outcome)
	s.Require().True(res.Wave.Contradicted())
}

// TestForcedContradiction pins pattern 0 at (0,0) on the same
// incompatible strip and resumes the solve to a terminal state.
func (s *SolverSuite) TestForcedContradiction() {
	rows := [][]grid.Sample{
		{s.sample(1), s.sample(2), s.sample(3)},
		{s.sample(4), s.sample(5), s.sample(6)},
	}
	g, err := grid.New(rows)
	s.Require().NoError(err)
	set, table := s.extract(g, 2)

	w, err := wave.New(2, 2, set.Len())
	s.Require().NoError(err)
	w.Ban(wave.Cell{}, 1) // pin pattern 0 at (0,0)

	res, err := wave.Resume(w, set, table, wave.WithSeed(5))
	s.Require().NoError(err)
	s.Require().Equal(wave.StatusContradiction, res.Outcome)
}

// TestContextCancellation: a cancelled context aborts at the iteration
// boundary with ctx.Err(), before any terminal outcome.
func (s *SolverSuite) TestContextCancellation() {
	set, table := s.extract(s.checkerboard(4, 4), 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := wave.Solve(set, table, 4, 4, wave.WithContext(ctx))
	s.Require().ErrorIs(err, context.Canceled)
}

// TestIterationLimit: the guard fires before termination on a large
// output.
func (s *SolverSuite) TestIterationLimit() {
	set, table := s.extract(s.checkerboard(4, 4), 2)

	_, err := wave.Solve(set, table, 16, 16, wave.WithMaxIterations(1))
	s.Require().ErrorIs(err, wave.ErrIterationLimit)
}

// TestSolve_NoDirections: pattern size 1 has an empty direction set, so
// solving degenerates to independent weighted draws and still terminates
// collapsed.
func TestSolve_NoDirections(t *testing.T) {
	rows := [][]grid.Sample{
		{{1, 1, 1}, {2, 2, 2}},
		{{2, 2, 2}, {1, 1, 1}},
	}
	g, err := grid.New(rows)
	require.NoError(t, err)
	set, err := pattern.Extract(g, 1)
	require.NoError(t, err)
	table, err := rules.Build(set)
	require.NoError(t, err)
	require.Equal(t, 0, table.NumDirections())

	res, err := wave.Solve(set, table, 3, 3, wave.WithSeed(2))
	require.NoError(t, err)
	require.Equal(t, wave.StatusCollapsed, res.Outcome)
	require.Equal(t, 9, res.Wave.CountCollapsed())
}
