// Package pixels decodes images into tightly packed RGB buffers ready for
// texture upload.
package pixels

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// RGB is an 8-bit-per-channel image with no row padding. Row 0 is the top of
// the source image.
type RGB struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the color of pixel (x, y).
func (p *RGB) At(x, y int) color.RGBA {
	i := (y*p.Width + x) * 3
	return color.RGBA{p.Pix[i], p.Pix[i+1], p.Pix[i+2], 0xff}
}

// FlipVertical reverses row order in place. GL expects the first row to be
// the bottom of the texture.
func (p *RGB) FlipVertical() {
	stride := p.Width * 3
	tmp := make([]uint8, stride)
	for top, bottom := 0, p.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := p.Pix[top*stride : (top+1)*stride]
		b := p.Pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Decode reads any registered image format and drops the alpha channel.
func Decode(r io.Reader) (*RGB, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), nil
}

// Load opens and decodes the image at path.
func Load(path string) (*RGB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// FromImage converts img to packed RGB.
func FromImage(img image.Image) *RGB {
	b := img.Bounds()
	out := &RGB{Width: b.Dx(), Height: b.Dy(), Pix: make([]uint8, b.Dx()*b.Dy()*3)}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.Pix[i] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			i += 3
		}
	}
	return out
}
