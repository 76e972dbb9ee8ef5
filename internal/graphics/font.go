package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"math"
	"os"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlas is a baked glyph sheet. Image is kept until Upload.
type FontAtlas struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	Characters map[rune]FontCharacter

	image *image.Alpha
}

const (
	atlasWidth   = 512
	atlasPadding = 1
	firstGlyph   = rune(32)
	lastGlyph    = rune(126)
)

// LoadFontAtlas bakes the font at path, or the built-in Go Regular face when path is empty.
func LoadFontAtlas(path string, fontPixels int) (*FontAtlas, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}
	return BuildFontAtlas(data, fontPixels)
}

// BuildFontAtlas rasterizes printable ASCII from a TrueType/OpenType font into an
// alpha atlas. No GL calls are made; see Upload.
func BuildFontAtlas(fontBytes []byte, fontPixels int) (*FontAtlas, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	// First pass: pack rows to find the atlas height
	offsetX, offsetY, rowHeight := 0, 0, 0
	for r := firstGlyph; r <= lastGlyph; r++ {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || dr.Empty() {
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + atlasPadding
			rowHeight = 0
		}
		offsetX += dr.Dx() + atlasPadding
		rowHeight = max(rowHeight, dr.Dy())
	}
	atlasH := nextPowerOfTwo(offsetY + rowHeight)

	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	characters := make(map[rune]FontCharacter)

	// Second pass: render each glyph into the atlas and record metrics
	offsetX, offsetY, rowHeight = 0, 0, 0
	for r := firstGlyph; r <= lastGlyph; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		fc := FontCharacter{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		if dr.Empty() {
			// Space or non-drawable glyph; still record advance
			characters[r] = fc
			continue
		}

		gw, gh := dr.Dx(), dr.Dy()
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + atlasPadding
			rowHeight = 0
		}

		dst := image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh)
		draw.Draw(atlasImg, dst, mask, maskp, draw.Src)

		fc.AtlasX = float32(offsetX)
		fc.AtlasY = float32(offsetY)
		fc.Width = float32(gw)
		fc.Height = float32(gh)
		characters[r] = fc

		offsetX += gw + atlasPadding
		rowHeight = max(rowHeight, gh)
	}

	return &FontAtlas{AtlasW: atlasWidth, AtlasH: atlasH, Characters: characters, image: atlasImg}, nil
}

// Upload creates the GL_RED texture and releases the CPU copy
func (a *FontAtlas) Upload() {
	gl.GenTextures(1, &a.TextureID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, a.TextureID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(a.AtlasW), int32(a.AtlasH), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	a.image = nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// FontRenderer renders ASCII text strings using a prebuilt atlas
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads the atlas and compiles the text shader from shaders.
// Coordinates passed to Render are pixels with a top-left origin.
func NewFontRenderer(atlas *FontAtlas, shaders fs.FS, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(shaders, "shaders/text.vert", "shaders/text.frag")
	if err != nil {
		return nil, err
	}
	if atlas.TextureID == 0 {
		atlas.Upload()
	}
	fr := &FontRenderer{
		atlas:      atlas,
		shader:     shader,
		projection: mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1),
	}
	fr.initGL()
	return fr, nil
}

func (fr *FontRenderer) initGL() {
	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// 6 verts per char, 4 floats per vert; resized on demand in Render
	gl.BufferData(gl.ARRAY_BUFFER, 64*6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetViewport rebuilds the pixel projection for a new framebuffer size
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Render draws text with its baseline starting at (x, y).
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	verts := fr.atlas.layout([]rune(text), x, y, scale)
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)

	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMat4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan the buffer to avoid stalls on dynamic updates
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose releases GL objects
func (fr *FontRenderer) Dispose() {
	gl.DeleteBuffers(1, &fr.vbo)
	gl.DeleteVertexArrays(1, &fr.vao)
	gl.DeleteTextures(1, &fr.atlas.TextureID)
	fr.shader.Delete()
}

// layout builds two triangles per glyph: x, y, u, v per vertex.
func (a *FontAtlas) layout(chars []rune, x, y, scale float32) []float32 {
	vertices := make([]float32, 0, len(chars)*6*4)
	for _, r := range chars {
		fc, ok := a.Characters[r]
		if !ok {
			// Skip missing glyphs
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			vertices = append(vertices, a.quad(fc, x, y, scale)...)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}

func (a *FontAtlas) quad(fc FontCharacter, x, y, scale float32) []float32 {
	xPos := x + fc.BearingX*scale
	yPos := y - fc.BearingY*scale
	w := fc.Width * scale
	h := fc.Height * scale

	u0 := fc.AtlasX / float32(a.AtlasW)
	v0 := fc.AtlasY / float32(a.AtlasH)
	u1 := u0 + fc.Width/float32(a.AtlasW)
	v1 := v0 + fc.Height/float32(a.AtlasH)

	return []float32{
		xPos, yPos + h, u0, v1,
		xPos, yPos, u0, v0,
		xPos + w, yPos, u1, v0,

		xPos, yPos + h, u0, v1,
		xPos + w, yPos, u1, v0,
		xPos + w, yPos + h, u1, v1,
	}
}
