package wavecollapse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/pattern"
	"github.com/katalvlaran/wavecollapse/rules"
	"github.com/katalvlaran/wavecollapse/wave"
)

// Sentinel errors for configuration validation.
var (
	// ErrNilGrid indicates a nil input grid.
	ErrNilGrid = errors.New("wavecollapse: input grid is nil")
	// ErrBadOutputSize indicates a non-positive output dimension.
	ErrBadOutputSize = errors.New("wavecollapse: output dimensions must be positive")
	// ErrBadPatternSize indicates a pattern size below 1.
	ErrBadPatternSize = errors.New("wavecollapse: pattern size must be at least 1")
	// ErrPatternExceedsGrid indicates the pattern window does not fit the
	// input grid in one or both axes.
	ErrPatternExceedsGrid = errors.New("wavecollapse: pattern size exceeds input grid")
)

// Config describes one generation run.
type Config struct {
	// PatternSize is the window side length N; patterns are N×N.
	PatternSize int
	// OutHeight and OutWidth are the output grid dimensions in cells.
	OutHeight, OutWidth int
	// Reflect adds horizontally and vertically flipped pattern variants.
	Reflect bool
	// Rotate adds the 90°, 180° and 270° pattern variants.
	Rotate bool
}

// Run bundles a finished generation: the solver result plus the learned
// pattern set and rule table, which rendering and inspection need.
type Run struct {
	Result   *wave.Result
	Patterns *pattern.Set
	Rules    *rules.Table
}

// Generate runs the full pipeline on g: extract patterns per cfg, derive
// adjacency rules, and solve an OutHeight×OutWidth possibility field.
// Solver options (seed, context, snapshot hook, iteration cap) pass
// through to wave.Solve.
//
// Configuration is validated before any work starts; a contradiction is
// not an error and is reported through Run.Result.Outcome.
// Complexity: dominated by the solve, O(H×W×P) per iteration.
func Generate(g *grid.Grid, cfg Config, opts ...wave.Option) (*Run, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.PatternSize < 1 {
		return nil, ErrBadPatternSize
	}
	if cfg.OutHeight < 1 || cfg.OutWidth < 1 {
		return nil, ErrBadOutputSize
	}
	if cfg.PatternSize > g.Height() || cfg.PatternSize > g.Width() {
		return nil, fmt.Errorf("%w: %d over %dx%d input",
			ErrPatternExceedsGrid, cfg.PatternSize, g.Height(), g.Width())
	}

	var extractOpts []pattern.Option
	if cfg.Reflect {
		extractOpts = append(extractOpts, pattern.WithReflections())
	}
	if cfg.Rotate {
		extractOpts = append(extractOpts, pattern.WithRotations())
	}
	set, err := pattern.Extract(g, cfg.PatternSize, extractOpts...)
	if err != nil {
		return nil, err
	}

	table, err := rules.Build(set)
	if err != nil {
		return nil, err
	}

	res, err := wave.Solve(set, table, cfg.OutHeight, cfg.OutWidth, opts...)
	if err != nil {
		return nil, err
	}

	return &Run{Result: res, Patterns: set, Rules: table}, nil
}
