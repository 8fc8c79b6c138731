package grid_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavecollapse/grid"
)

// TestNew_Errors verifies that empty and ragged inputs are rejected.
func TestNew_Errors(t *testing.T) {
	// no rows
	if _, err := grid.New(nil); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("nil input: want ErrEmptyGrid, got %v", err)
	}
	// rows but no columns
	if _, err := grid.New([][]grid.Sample{{}}); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("empty row: want ErrEmptyGrid, got %v", err)
	}
	// ragged rows
	ragged := [][]grid.Sample{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}},
	}
	if _, err := grid.New(ragged); !errors.Is(err, grid.ErrNonRectangular) {
		t.Errorf("ragged input: want ErrNonRectangular, got %v", err)
	}
}

// TestNew_DeepCopy ensures the grid is insulated from later mutation of
// the caller's slice.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]grid.Sample{
		{{10, 20, 30}, {40, 50, 60}},
		{{70, 80, 90}, {11, 12, 13}},
	}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[0][0] = grid.Sample{0, 0, 0}
	require.Equal(t, grid.Sample{10, 20, 30}, g.At(0, 0))
	require.Equal(t, 2, g.Height())
	require.Equal(t, 2, g.Width())
}

// TestInBounds covers the four edges of the boundary predicate.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]grid.Sample{
		{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	})
	require.NoError(t, err)

	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(1, 2))
	require.False(t, g.InBounds(-1, 0))
	require.False(t, g.InBounds(0, -1))
	require.False(t, g.InBounds(2, 0))
	require.False(t, g.InBounds(0, 3))
}

// TestDecode_PNG round-trips a tiny image through the PNG decoder and
// checks the alpha channel is dropped.
func TestDecode_PNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	g, err := grid.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, g.Height())
	require.Equal(t, 2, g.Width())
	require.Equal(t, grid.Sample{255, 0, 0}, g.At(0, 0))
	require.Equal(t, grid.Sample{0, 255, 0}, g.At(0, 1))
	require.Equal(t, grid.Sample{0, 0, 255}, g.At(1, 0))
	require.Equal(t, grid.Sample{255, 255, 255}, g.At(1, 1))
}

// TestDecode_Malformed ensures garbage input surfaces ErrDecode.
func TestDecode_Malformed(t *testing.T) {
	_, err := grid.Decode(bytes.NewReader([]byte("not an image")))
	require.ErrorIs(t, err, grid.ErrDecode)
}

// TestLoad_MissingFile ensures an unreadable path surfaces ErrDecode.
func TestLoad_MissingFile(t *testing.T) {
	_, err := grid.Load("definitely/not/here.png")
	require.ErrorIs(t, err, grid.ErrDecode)
}
