// Package pattern extracts the deduplicated N×N sample blocks that drive
// a wave function collapse run, together with their occurrence
// frequencies and the offset directions at which two blocks can overlap.
//
// What:
//
//   - Extract scans every N×N window of an input grid (no wraparound),
//     optionally augments the candidates with reflections and rotations,
//     and deduplicates them into an ordered Set with parallel frequencies.
//   - Directions enumerates all (dr,dc) offsets with |dr|,|dc| < N,
//     excluding (0,0) — the (2N−1)²−1 positions at which two patterns of
//     size N can overlap.
//
// Why:
//
//   - The rule engine compares every pattern pair at every direction; the
//     solver weights random collapses by the frequencies collected here.
//   - Patterns and their order are fixed once extraction finishes; every
//     later stage indexes into this Set and never mutates it.
//
// Complexity:
//
//   - Extract:    O(H×W×N²) to enumerate windows, ×4 with reflections,
//     ×4 with rotations, plus O(K×N²) dedupe over K candidates.
//   - Directions: O(N²).
//
// Options:
//
//   - WithReflections: add the horizontal and vertical flip of every
//     window as additional candidates.
//   - WithRotations: add the 90°, 180° and 270° rotations of every
//     (pre-augmentation) window as additional candidates.
//
// Errors:
//
//   - ErrNilGrid: the input grid is nil.
//   - ErrPatternSize: the requested pattern size is smaller than 1.
//   - ErrGridTooSmall: the grid is smaller than the pattern size in
//     either dimension.
package pattern
