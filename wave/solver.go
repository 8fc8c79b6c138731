package wave

import (
	"github.com/katalvlaran/wavecollapse/pattern"
	"github.com/katalvlaran/wavecollapse/rules"
)

// solver encapsulates the mutable state of one solve: the tensor it owns
// exclusively, the read-only rule table and frequencies, and the
// propagation work queue with its pending flags.
type solver struct {
	wave    *Wave
	table   *rules.Table
	freqs   []int
	opts    SolveOptions
	queue   []Cell
	pending []bool // per cell; guards against duplicate queue entries
	scratch []bool // reusable allowed-union mask, length P
	indices []int  // reusable possible-index buffer
}

// Solve runs the observe/collapse/propagate loop over a fresh all-true
// tensor of the given output dimensions, applying any number of
// functional Options.
//
// The loop per iteration: observe (contradiction check, then min-entropy
// selection), collapse the selected cell to one pattern drawn with
// probability proportional to frequency over its remaining candidates,
// then propagate the constraint breadth-first until the tensor is locally
// arc-consistent again. Terminal states are StatusCollapsed and
// StatusContradiction; both are normal outcomes carried in Result, and a
// contradiction is never retried internally.
//
// Returns ErrNilPatternSet, ErrNilRuleTable, ErrTableMismatch or
// ErrBadOutputSize for invalid input, ErrOptionViolation for bad options,
// ErrIterationLimit if the WithMaxIterations guard fires, or ctx.Err()
// if the WithContext context is cancelled between iterations.
func Solve(set *pattern.Set, table *rules.Table, height, width int, opts ...Option) (*Result, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrNilPatternSet
	}
	if table == nil {
		return nil, ErrNilRuleTable
	}
	if table.NumPatterns() != set.Len() || table.NumDirections() != len(set.Directions()) {
		return nil, ErrTableMismatch
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	w, err := New(height, width, set.Len())
	if err != nil {
		return nil, err
	}

	s := &solver{
		wave:    w,
		table:   table,
		freqs:   set.Frequencies(),
		opts:    o,
		pending: make([]bool, height*width),
		scratch: make([]bool, set.Len()),
		indices: make([]int, 0, set.Len()),
	}

	return s.run()
}

// Resume continues a partially constrained tensor (for example one
// seeded with Ban) to a terminal state using the same loop as Solve.
// The tensor must have been built for the same pattern set as table.
func Resume(w *Wave, set *pattern.Set, table *rules.Table, opts ...Option) (*Result, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrNilPatternSet
	}
	if table == nil {
		return nil, ErrNilRuleTable
	}
	if table.NumPatterns() != set.Len() || table.NumDirections() != len(set.Directions()) ||
		w == nil || w.NumPatterns() != set.Len() {
		return nil, ErrTableMismatch
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &solver{
		wave:    w,
		table:   table,
		freqs:   set.Frequencies(),
		opts:    o,
		pending: make([]bool, w.Height()*w.Width()),
		scratch: make([]bool, set.Len()),
		indices: make([]int, 0, set.Len()),
	}

	return s.run()
}

// run drives the state machine to a terminal state.
func (s *solver) run() (*Result, error) {
	iterations := 0
	for {
		// abort point: iteration boundary only, never mid-phase
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		cell, status := s.wave.MinEntropyCell(s.freqs, s.opts.Rand)
		switch status {
		case StatusContradiction:
			return &Result{Wave: s.wave, Outcome: StatusContradiction, Iterations: iterations}, nil
		case StatusCollapsed:
			return &Result{Wave: s.wave, Outcome: StatusCollapsed, Iterations: iterations}, nil
		}

		if s.opts.MaxIterations > 0 && iterations >= s.opts.MaxIterations {
			return nil, ErrIterationLimit
		}
		iterations++

		s.collapse(cell)
		s.propagate(cell)

		if s.opts.Snapshot != nil {
			s.opts.Snapshot(s.wave.Clone(), iterations)
		}
	}
}

// collapse fixes cell to a single pattern drawn from its remaining
// candidates, weighted by frequency normalized over those candidates
// only. All other bits of the cell are cleared; the chosen bit was
// already true, so the tensor only tightens.
func (s *solver) collapse(cell Cell) {
	s.indices = s.wave.PossibleIndices(cell, s.indices)
	chosen := weightedChoice(s.opts.Rand, s.indices, s.freqs)
	bits := s.wave.cellBits(cell)
	for p := range bits {
		if p != chosen {
			bits[p] = false
		}
	}
}

// propagate restores local arc consistency after a collapse: a FIFO
// queue of cells to re-examine, seeded with the collapsed cell. For each
// dequeued cell and each direction, the in-bounds, uncollapsed neighbor
// is narrowed to the union of the rule rows of the source cell's
// remaining patterns; a strict narrowing re-enqueues the neighbor unless
// it is already pending.
func (s *solver) propagate(start Cell) {
	s.enqueue(start)
	for len(s.queue) > 0 {
		cell := s.dequeue()
		for di := 0; di < s.table.NumDirections(); di++ {
			d := s.table.Direction(di)
			neighbor := Cell{Row: cell.Row + d.DR, Col: cell.Col + d.DC}
			if !s.wave.InBounds(neighbor) || s.wave.IsCollapsed(neighbor) {
				continue
			}
			if s.narrow(cell, neighbor, di) {
				s.enqueue(neighbor)
			}
		}
	}
}

// narrow intersects neighbor's possibility vector with the set of
// patterns allowed by the source cell's remaining possibilities in the
// di-th direction. Reports whether any bit was cleared.
func (s *solver) narrow(source, neighbor Cell, di int) bool {
	for p := range s.scratch {
		s.scratch[p] = false
	}
	s.indices = s.wave.PossibleIndices(source, s.indices)
	for _, p := range s.indices {
		for q, ok := range s.table.Mask(p, di) {
			if ok {
				s.scratch[q] = true
			}
		}
	}

	changed := false
	bits := s.wave.cellBits(neighbor)
	for p, b := range bits {
		if b && !s.scratch[p] {
			bits[p] = false
			changed = true
		}
	}

	return changed
}

// enqueue adds cell to the work queue unless it is already pending.
func (s *solver) enqueue(cell Cell) {
	idx := cell.Row*s.wave.Width() + cell.Col
	if s.pending[idx] {
		return
	}
	s.pending[idx] = true
	s.queue = append(s.queue, cell)
}

// dequeue pops the first pending cell and clears its flag.
func (s *solver) dequeue() Cell {
	cell := s.queue[0]
	s.queue = s.queue[1:]
	s.pending[cell.Row*s.wave.Width()+cell.Col] = false

	return cell
}
