package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/katalvlaran/wavecollapse/pattern"
	"github.com/katalvlaran/wavecollapse/wave"
)

// VideoOptions controls the animated GIF written by Recorder.WriteGIF.
// It replaces the rendering constants of earlier revisions with an
// explicit configuration value passed by the caller.
type VideoOptions struct {
	// FPS is the playback rate of the clip.
	FPS int
	// MaxSeconds caps the clip length; captured frames beyond
	// FPS×MaxSeconds are subsampled evenly.
	MaxSeconds int
	// TargetHeight is the nearest-neighbor upscale target for frames.
	TargetHeight int
}

// DefaultVideoOptions returns the standard clip parameters:
// 30 FPS, 30 seconds maximum, frames upscaled toward 1000 pixels.
func DefaultVideoOptions() VideoOptions {
	return VideoOptions{FPS: 30, MaxSeconds: 30, TargetHeight: 1000}
}

// Recorder accumulates per-iteration frames of a solve for later
// encoding. The zero value is ready to use. A Recorder is not
// goroutine-safe; capture from the solver's goroutine only.
type Recorder struct {
	frames []*image.RGBA
}

// Capture renders the current tensor and appends it as a frame.
// Rendering failures are returned and leave the frame list unchanged.
func (rec *Recorder) Capture(w *wave.Wave, set *pattern.Set) error {
	img, err := Image(w, set)
	if err != nil {
		return err
	}
	rec.frames = append(rec.frames, img)

	return nil
}

// Hook adapts the recorder to the solver's snapshot callback. Render
// errors cannot surface through the fire-and-forget hook, so frames that
// fail to render are skipped.
func (rec *Recorder) Hook(set *pattern.Set) wave.SnapshotFunc {
	return func(w *wave.Wave, _ int) {
		_ = rec.Capture(w, set)
	}
}

// Len returns the number of captured frames.
func (rec *Recorder) Len() int { return len(rec.frames) }

// WriteGIF encodes the captured run as an animated GIF at path.
// When more frames were captured than FPS×MaxSeconds allows, frames are
// subsampled at an even stride; the final frame is always kept so the
// clip ends on the terminal state.
// Returns ErrNoFrames if nothing was captured and ErrBadVideoOptions if
// FPS is below 1 or MaxSeconds or TargetHeight is negative.
func (rec *Recorder) WriteGIF(path string, opts VideoOptions) error {
	if opts.FPS < 1 || opts.MaxSeconds < 0 || opts.TargetHeight < 0 {
		return fmt.Errorf("%w: FPS %d, MaxSeconds %d, TargetHeight %d",
			ErrBadVideoOptions, opts.FPS, opts.MaxSeconds, opts.TargetHeight)
	}
	if len(rec.frames) == 0 {
		return ErrNoFrames
	}

	budget := opts.FPS * opts.MaxSeconds
	stride := 1
	if budget > 0 && len(rec.frames) > budget {
		stride = len(rec.frames) / budget
	}

	anim := &gif.GIF{}
	delay := 100 / opts.FPS // GIF delays are in 1/100ths of a second
	if delay < 1 {
		delay = 1
	}
	for i := 0; i < len(rec.frames); i += stride {
		anim.Image = append(anim.Image, palettedFrame(rec.frames[i], opts.TargetHeight))
		anim.Delay = append(anim.Delay, delay)
	}
	if last := len(rec.frames) - 1; last%stride != 0 {
		anim.Image = append(anim.Image, palettedFrame(rec.frames[last], opts.TargetHeight))
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gif.EncodeAll(f, anim)
}

// palettedFrame upscales a frame and quantizes it to the Plan9 palette
// for GIF encoding.
func palettedFrame(img *image.RGBA, targetHeight int) *image.Paletted {
	scaled := Upscale(img, targetHeight)
	out := image.NewPaletted(scaled.Bounds(), palette.Plan9)
	draw.Draw(out, scaled.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	return out
}
