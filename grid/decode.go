package grid

import (
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders for the formats the generator accepts.
	_ "image/jpeg"
	_ "image/png"
)

// Load reads and decodes the image at path into a Grid.
// Returns a wrapped ErrDecode if the file cannot be opened or decoded.
// Complexity: O(H×W) over the decoded image.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode decodes a PNG or JPEG stream into a Grid, dropping any alpha
// channel so each sample carries exactly Channels values.
// Returns a wrapped ErrDecode on malformed input.
// Complexity: O(H×W) over the decoded image.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}
	flat := make([]Sample, 0, h*w)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit premultiplied channels; keep the top byte.
			flat = append(flat, Sample{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)})
		}
	}

	return &Grid{height: h, width: w, samples: flat}, nil
}
