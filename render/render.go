// Package render defines image materialization for
// github.com/katalvlaran/wavecollapse.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/katalvlaran/wavecollapse/pattern"
	"github.com/katalvlaran/wavecollapse/wave"
)

// Sentinel errors for rendering operations.
var (
	// ErrNilWave indicates a nil tensor was passed.
	ErrNilWave = errors.New("render: wave is nil")
	// ErrNilPatternSet indicates a nil or empty pattern set was passed.
	ErrNilPatternSet = errors.New("render: pattern set is nil or empty")
	// ErrShapeMismatch indicates the tensor's pattern axis differs from
	// the pattern set length.
	ErrShapeMismatch = errors.New("render: wave and pattern set disagree on pattern count")
	// ErrNoFrames indicates WriteGIF was called before any Capture.
	ErrNoFrames = errors.New("render: no frames captured")
	// ErrBadVideoOptions indicates a non-positive FPS or a negative
	// length or upscale target.
	ErrBadVideoOptions = errors.New("render: invalid video options")
)

// DefaultRenderEvery is the iteration cadence at which callers typically
// refresh progress output during a run.
const DefaultRenderEvery = 15

// Image materializes w as one pixel per cell. Collapsed cells take their
// pattern's top-left sample; uncollapsed cells take the mean of the
// top-left samples of their remaining candidates; contradicted cells
// render black.
// Complexity: O(H×W×P).
func Image(w *wave.Wave, set *pattern.Set) (*image.RGBA, error) {
	if w == nil {
		return nil, ErrNilWave
	}
	if set == nil || set.Len() == 0 {
		return nil, ErrNilPatternSet
	}
	if w.NumPatterns() != set.Len() {
		return nil, ErrShapeMismatch
	}

	img := image.NewRGBA(image.Rect(0, 0, w.Width(), w.Height()))
	for r := 0; r < w.Height(); r++ {
		for c := 0; c < w.Width(); c++ {
			cell := wave.Cell{Row: r, Col: c}
			var sumR, sumG, sumB, n int
			for p := 0; p < set.Len(); p++ {
				if !w.Possible(cell, p) {
					continue
				}
				s := set.Pattern(p).TopLeft()
				sumR += int(s[0])
				sumG += int(s[1])
				sumB += int(s[2])
				n++
			}
			px := color.RGBA{A: 255}
			if n > 0 {
				px.R = uint8(sumR / n)
				px.G = uint8(sumG / n)
				px.B = uint8(sumB / n)
			}
			img.SetRGBA(c, r, px)
		}
	}

	return img, nil
}

// Upscale enlarges img by the integer nearest-neighbor factor that
// brings its larger dimension up to (at most) target. A target at or
// below the current size returns the image unchanged.
// Complexity: O(out pixels).
func Upscale(img *image.RGBA, target int) *image.RGBA {
	b := img.Bounds()
	longest := b.Dx()
	if b.Dy() > longest {
		longest = b.Dy()
	}
	factor := 1
	if longest > 0 && target > longest {
		factor = target / longest
	}
	if factor <= 1 {
		return img
	}

	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := 0; y < out.Bounds().Dy(); y++ {
		for x := 0; x < out.Bounds().Dx(); x++ {
			out.SetRGBA(x, y, img.RGBAAt(b.Min.X+x/factor, b.Min.Y+y/factor))
		}
	}

	return out
}

// SavePNG writes img to path in PNG format.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
