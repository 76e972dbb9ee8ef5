package graphics

import (
	"errors"
	"image/color"
	"io/fs"
	"log/slog"

	"spotlit/internal/graphics/pixels"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Texture is a 2D RGB texture on the GPU
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// Bind binds the texture to the given texture unit
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}

// Fallback generates the image used when a texture file is missing
type Fallback func() *pixels.RGB

// Procedural stand-ins for the floor maps
const fallbackSize = 256

// DiffuseFallback is a brown wood grain
func DiffuseFallback() *pixels.RGB {
	return pixels.Grain(fallbackSize, 1,
		color.RGBA{0xb0, 0x85, 0x5a, 0xff},
		color.RGBA{0x6e, 0x4b, 0x2e, 0xff})
}

// SpecularFallback is a dim grey grain so highlights stay untinted and weak
func SpecularFallback() *pixels.RGB {
	return pixels.Grain(fallbackSize, 2,
		color.RGBA{0x40, 0x40, 0x40, 0xff},
		color.RGBA{0x10, 0x10, 0x10, 0xff})
}

// LoadTexture loads a repeating, mipmapped 2D texture from a file. A missing
// file yields the fallback image and a warning instead of an error.
func LoadTexture(path string, fallback Fallback) (*Texture, error) {
	img, err := loadPixels(path, fallback)
	if err != nil {
		return nil, err
	}
	return UploadTexture(img), nil
}

func loadPixels(path string, fallback Fallback) (*pixels.RGB, error) {
	img, err := pixels.Load(path)
	if errors.Is(err, fs.ErrNotExist) && fallback != nil {
		slog.Warn("texture missing, using procedural fallback", "path", path)
		return fallback(), nil
	}
	return img, err
}

// UploadTexture creates a GL texture from packed RGB pixels
func UploadTexture(img *pixels.RGB) *Texture {
	img.FlipVertical()

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	// RGB rows are not 4-byte aligned in general
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGB,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGB,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: texture, Width: img.Width, Height: img.Height}
}
