package pixels_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"spotlit/internal/graphics/pixels"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func sample() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(2, 0, color.NRGBA{0, 0, 255, 255})
	img.Set(0, 1, color.NRGBA{10, 20, 30, 255})
	img.Set(1, 1, color.NRGBA{40, 50, 60, 128})
	img.Set(2, 1, color.NRGBA{70, 80, 90, 0})
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sample()))

	rgb, err := pixels.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, 3, rgb.Width)
	assert.Equal(t, 2, rgb.Height)
	assert.Len(t, rgb.Pix, 3*2*3)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgb.At(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgb.At(2, 0))
	// Alpha is dropped, not premultiplied into the color.
	assert.Equal(t, color.RGBA{40, 50, 60, 255}, rgb.At(1, 1))
}

func TestDecodeBMP(t *testing.T) {
	opaque := image.NewRGBA(image.Rect(0, 0, 3, 2))
	opaque.Set(1, 0, color.RGBA{0, 255, 0, 255})
	opaque.Set(0, 1, color.RGBA{10, 20, 30, 255})
	for _, p := range []image.Point{{0, 0}, {2, 0}, {1, 1}, {2, 1}} {
		opaque.Set(p.X, p.Y, color.RGBA{0, 0, 0, 255})
	}

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, opaque))

	rgb, err := pixels.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rgb.At(1, 0))
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, rgb.At(0, 1))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := pixels.Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wood.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sample()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	rgb, err := pixels.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, rgb.Width)

	_, err = pixels.Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFlipVertical(t *testing.T) {
	rgb := pixels.FromImage(sample())
	rgb.FlipVertical()

	assert.Equal(t, color.RGBA{10, 20, 30, 255}, rgb.At(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgb.At(0, 1))
}

func TestGrain(t *testing.T) {
	a := color.RGBA{200, 150, 100, 255}
	b := color.RGBA{50, 40, 30, 255}

	g := pixels.Grain(32, 1, a, b)
	require.Len(t, g.Pix, 32*32*3)
	assert.Equal(t, g, pixels.Grain(32, 1, a, b), "same seed must reproduce")
	assert.NotEqual(t, g.Pix, pixels.Grain(32, 2, a, b).Pix)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			assert.True(t, c.R >= b.R && c.R <= a.R, "R=%d at %d,%d", c.R, x, y)
			assert.True(t, c.B >= b.B && c.B <= a.B, "B=%d at %d,%d", c.B, x, y)
		}
	}

	assert.Empty(t, pixels.Grain(0, 1, a, b).Pix)
}
