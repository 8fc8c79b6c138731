// Package wave holds the possibility tensor of a wave function collapse
// run and the observe/collapse/propagate solver that drives it to a
// terminal state.
//
// What:
//
//   - Wave is a dense boolean tensor with one bit per (cell, pattern),
//     true while that pattern remains possible at that cell. Bits start
//     all true and are only ever cleared: constraint tightening is
//     monotonic for the lifetime of a solve.
//   - MinEntropyCell scans for a contradiction first, then selects the
//     uncollapsed cell with minimum frequency-weighted entropy, breaking
//     ties uniformly at random to avoid directional bias in the output.
//   - Solve iterates observe → collapse → propagate until the tensor is
//     fully collapsed or some cell runs out of patterns.
//
// Why:
//
//   - Collapsing the least-entropy cell first keeps the search close to
//     forced moves; breadth-first propagation restores local arc
//     consistency after each collapse, so contradictions surface at the
//     earliest possible iteration.
//
// Concurrency:
//
//   - The solver is single-threaded and owns its Wave exclusively until
//     termination. Snapshot hooks receive an independent clone. The
//     context supplied via WithContext is consulted once per iteration,
//     at the observe boundary — never mid-phase.
//
// Complexity:
//
//   - MinEntropyCell: O(H×W×P) per call.
//   - One propagate pass: O(cells touched × D × P).
//   - Solve: at most H×W collapse iterations; each clears at least one
//     bit or terminates, so the loop cannot run forever.
//
// Options:
//
//   - WithSeed / WithRand: deterministic randomness (seed 0 selects a
//     fixed default stream).
//   - WithContext: abort between iterations with ctx.Err().
//   - WithSnapshot: observe progress after each propagate phase.
//   - WithMaxIterations: hard iteration guard, 0 disables.
//
// Errors:
//
//   - ErrNilPatternSet, ErrNilRuleTable, ErrTableMismatch: invalid solver
//     input.
//   - ErrBadOutputSize, ErrNoPatterns: invalid tensor dimensions.
//   - ErrOptionViolation: an invalid functional option was supplied.
//   - ErrIterationLimit: the WithMaxIterations guard fired.
//
// A contradiction is not an error: it is a defined terminal Outcome,
// surfaced in Result and never retried internally.
package wave
