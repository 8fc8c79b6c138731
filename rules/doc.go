// Package rules derives the adjacency-compatibility table that constrains
// a wave function collapse run.
//
// What:
//
//   - Build compares every ordered pattern pair at every overlap
//     direction and records which patterns may legally sit at offset d
//     from a cell holding pattern p.
//   - Two patterns are compatible in direction d iff the overlap region
//     of the first (clipped to the valid intersection window) is
//     sample-wise identical to the mirrored overlap region of the second.
//
// Why:
//
//   - The solver's propagation phase intersects each cell's possibility
//     vector with the union of these rows; precomputing the table once
//     per solve keeps that hot loop free of sample comparisons.
//
// Complexity:
//
//   - Build: O(P²×D×N²) worst case, paid once per solve. The pair loop
//     runs over q ≥ p and fills both rules[p][d] and rules[q][−d] in one
//     comparison.
//
// Invariants:
//
//   - Symmetry under direction inversion: q ∈ rules[p][d] ⇔ p ∈ rules[q][−d].
//   - Offsets whose magnitude reaches the pattern size have an empty
//     overlap and compare as vacuously compatible. The direction set
//     produced by pattern.Directions never contains such offsets; the
//     convention only matters for direct Compatible calls and is pinned
//     by tests rather than inherited silently.
//
// Errors:
//
//   - ErrNilPatternSet: Build received a nil or empty pattern set.
package rules
