// Package grid defines the core types and sentinel errors for the
// input-grid subpackage of github.com/katalvlaran/wavecollapse.
package grid

import "errors"

// Channels is the fixed number of color channels per sample.
// Decoders reduce richer pixel formats (RGBA, NRGBA, ...) to this count.
const Channels = 3

// Sentinel errors for grid construction and decoding.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDecode indicates the input stream is not a decodable image.
	ErrDecode = errors.New("grid: cannot decode input image")
)

// Sample is one grid cell: Channels color values in RGB order.
type Sample [Channels]uint8

// Grid is an immutable rectangular field of samples.
// The zero value is not usable; construct via New, Load or Decode.
type Grid struct {
	height, width int
	samples       []Sample // row-major, len = height*width
}
