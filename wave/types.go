// Package wave defines the tensor types, solver options, and sentinel
// errors for the solver subpackage of
// github.com/katalvlaran/wavecollapse.
package wave

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for tensor construction and solver execution.
var (
	// ErrNilPatternSet is returned if a nil or empty pattern set is passed.
	ErrNilPatternSet = errors.New("wave: pattern set is nil or empty")
	// ErrNilRuleTable is returned if a nil rule table is passed.
	ErrNilRuleTable = errors.New("wave: rule table is nil")
	// ErrTableMismatch indicates the rule table covers a different number
	// of patterns than the pattern set.
	ErrTableMismatch = errors.New("wave: rule table does not match pattern set")
	// ErrBadOutputSize indicates non-positive output dimensions.
	ErrBadOutputSize = errors.New("wave: output dimensions must be positive")
	// ErrNoPatterns indicates a tensor over zero patterns.
	ErrNoPatterns = errors.New("wave: at least one pattern is required")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wave: invalid option supplied")
	// ErrIterationLimit is returned when WithMaxIterations fires before
	// the solve reaches a terminal state.
	ErrIterationLimit = errors.New("wave: iteration limit reached before termination")
)

// Cell addresses one output position by row and column.
type Cell struct {
	Row, Col int
}

// Status describes the solver state machine.
type Status int

const (
	// StatusUninitialized is the zero value; no solve has produced it.
	StatusUninitialized Status = iota
	// StatusInProgress means an uncollapsed cell with positive entropy exists.
	StatusInProgress
	// StatusCollapsed means every cell holds exactly one pattern.
	StatusCollapsed
	// StatusContradiction means some cell has zero possible patterns.
	StatusContradiction
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusCollapsed:
		return "collapsed"
	case StatusContradiction:
		return "contradiction"
	default:
		return "uninitialized"
	}
}

// SnapshotFunc observes solve progress. It receives an independent clone
// of the tensor after each propagate phase, plus the iteration count.
// The solver ignores anything the hook does; it is fire-and-forget.
type SnapshotFunc func(w *Wave, iteration int)

// Option configures Solve via functional arguments. An invalid option is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*SolveOptions)

// SolveOptions holds parameters and callbacks to customize a solve.
type SolveOptions struct {
	// Ctx allows aborting the solve between iterations.
	Ctx context.Context

	// Rand is the randomness source for collapse choice and entropy
	// tie-breaks. Must not be shared with other goroutines during the
	// solve.
	Rand *rand.Rand

	// Snapshot, if non-nil, runs after every propagate phase.
	Snapshot SnapshotFunc

	// MaxIterations, if > 0, bounds the number of collapse iterations.
	// A value of 0 explicitly disables the guard.
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep default runs reproducible.
const defaultSeed int64 = 1

// DefaultOptions returns SolveOptions with sane defaults:
//   - context.Background()
//   - deterministic default RNG stream (seed 0 policy)
//   - no snapshot hook
//   - no iteration limit.
func DefaultOptions() SolveOptions {
	return SolveOptions{
		Ctx:           context.Background(),
		Rand:          rngFromSeed(0),
		Snapshot:      nil,
		MaxIterations: 0,
		err:           nil,
	}
}

// WithContext sets a custom context, consulted once per iteration at the
// observe boundary.
func WithContext(ctx context.Context) Option {
	return func(o *SolveOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand injects a randomness source. The solver takes ownership for
// the duration of the solve.
func WithRand(r *rand.Rand) Option {
	return func(o *SolveOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed derives a deterministic randomness source from seed.
// Seed 0 selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *SolveOptions) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithSnapshot registers a progress hook, run after each propagate phase.
func WithSnapshot(fn SnapshotFunc) Option {
	return func(o *SolveOptions) {
		if fn != nil {
			o.Snapshot = fn
		}
	}
}

// WithMaxIterations bounds the number of collapse iterations.
//
//	n > 0: limit to n iterations
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *SolveOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxIterations = n
		}
	}
}

// Result holds the outcome of a solve:
//   - Wave: the terminal tensor (read-only once returned).
//   - Outcome: StatusCollapsed or StatusContradiction.
//   - Iterations: number of collapse iterations performed.
type Result struct {
	Wave       *Wave
	Outcome    Status
	Iterations int
}
