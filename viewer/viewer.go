package viewer

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/wavecollapse/pattern"
	"github.com/katalvlaran/wavecollapse/render"
	"github.com/katalvlaran/wavecollapse/wave"
)

// ErrBadWindow indicates non-positive grid dimensions or scale.
var ErrBadWindow = errors.New("viewer: window dimensions and scale must be positive")

// FrameBuffer is the capacity of the channel between solver and window.
const FrameBuffer = 8

// Hook returns a snapshot callback that renders each tensor snapshot and
// sends it to frames. Sends never block: when the channel is full the
// frame is dropped, so the display can lag or disappear without stalling
// the solve.
func Hook(set *pattern.Set, frames chan<- *image.RGBA) wave.SnapshotFunc {
	return func(w *wave.Wave, _ int) {
		img, err := render.Image(w, set)
		if err != nil {
			return
		}
		select {
		case frames <- img:
		default:
		}
	}
}

// Viewer displays frames from a channel. It implements ebiten.Game.
type Viewer struct {
	height, width int
	frames        <-chan *image.RGBA
	current       *image.RGBA
}

// New creates a viewer for a height×width cell grid fed by frames.
func New(height, width int, frames <-chan *image.RGBA) (*Viewer, error) {
	if height < 1 || width < 1 {
		return nil, ErrBadWindow
	}

	return &Viewer{height: height, width: width, frames: frames}, nil
}

// Update drains the frame channel, keeping only the newest frame whose
// dimensions match the viewer's grid. Mismatched frames are dropped so
// an arbitrary producer cannot crash the draw loop.
func (v *Viewer) Update() error {
	for {
		select {
		case img, ok := <-v.frames:
			if !ok {
				return nil
			}
			if img == nil || img.Bounds().Dx() != v.width || img.Bounds().Dy() != v.height {
				continue
			}
			v.current = img
		default:
			return nil
		}
	}
}

// Draw writes the latest frame to the screen. Before the first frame
// arrives the screen stays blank.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.current == nil {
		return
	}
	screen.WritePixels(v.current.Pix)
}

// Layout reports one logical pixel per cell; the window scale set by Run
// stretches cells on screen.
func (v *Viewer) Layout(_, _ int) (int, int) { return v.width, v.height }

// Run opens a window titled title over a height×width cell grid, each
// cell scale pixels on screen, and blocks until the window is closed.
// Must be called from the main goroutine.
func Run(title string, height, width, scale int, frames <-chan *image.RGBA) error {
	if scale < 1 {
		return ErrBadWindow
	}
	v, err := New(height, width, frames)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetWindowTitle(title)

	return ebiten.RunGame(v)
}
