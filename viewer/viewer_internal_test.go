package viewer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUpdate_DropsMismatchedFrames: frames whose dimensions disagree
// with the viewer's grid never become the drawn frame.
func TestUpdate_DropsMismatchedFrames(t *testing.T) {
	frames := make(chan *image.RGBA, 4)
	v, err := New(3, 4, frames)
	require.NoError(t, err)

	frames <- image.NewRGBA(image.Rect(0, 0, 4, 4)) // wrong height
	frames <- nil
	require.NoError(t, v.Update())
	require.Nil(t, v.current)

	good := image.NewRGBA(image.Rect(0, 0, 4, 3))
	frames <- image.NewRGBA(image.Rect(0, 0, 1, 1)) // wrong both axes
	frames <- good
	require.NoError(t, v.Update())
	require.Same(t, good, v.current)
}
