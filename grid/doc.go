// Package grid models the rectangular sample grid that seeds a wave
// function collapse run, plus decoding from common image formats.
//
// What:
//
//   - Grid wraps a rectangular field of RGB samples, deep-copied on
//     construction and immutable afterwards.
//   - Load / Decode turn a PNG or JPEG file into a Grid, dropping any
//     alpha channel so every sample carries exactly Channels values.
//   - InBounds, At and Height/Width expose safe, bounds-checked access.
//
// Why:
//
//   - The pattern extractor scans fixed-size windows over this grid; it
//     relies on the grid being rectangular and never mutated mid-solve.
//   - Keeping decode here keeps the solver packages free of I/O.
//
// Complexity:
//
//   - New:    O(H×W) time and memory (deep copy).
//   - At:     O(1).
//   - Decode: O(H×W) over the decoded image.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDecode: the reader does not contain a decodable PNG/JPEG image.
package grid
