package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorFallbacksDiffer(t *testing.T) {
	diffuse := DiffuseFallback()
	specular := SpecularFallback()
	require.Equal(t, diffuse.Width, specular.Width)

	var diffuseSum, specularSum int
	for y := 0; y < specular.Height; y++ {
		for x := 0; x < specular.Width; x++ {
			c := specular.At(x, y)
			// Grey: the highlight keeps the light's color
			assert.True(t, c.R == c.G && c.G == c.B, "specular %v at %d,%d", c, x, y)
			specularSum += int(c.R)

			d := diffuse.At(x, y)
			diffuseSum += int(d.R)
		}
	}
	assert.Less(t, specularSum*2, diffuseSum, "specular map should be much dimmer")
}

func TestLoadPixelsMissingFileUsesFallback(t *testing.T) {
	dir := t.TempDir()

	img, err := loadPixels(filepath.Join(dir, "wood_spec.png"), SpecularFallback)
	require.NoError(t, err)
	assert.Equal(t, SpecularFallback(), img)

	_, err = loadPixels(filepath.Join(dir, "wood.png"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPixelsPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.png")
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []uint8{255, 0, 0, 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := loadPixels(path, DiffuseFallback)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.At(1, 1))
}

func TestLoadPixelsCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := loadPixels(path, DiffuseFallback)
	assert.Error(t, err)
}
