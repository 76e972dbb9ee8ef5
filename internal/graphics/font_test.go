package graphics

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestBuildFontAtlas(t *testing.T) {
	atlas, err := BuildFontAtlas(goregular.TTF, 48)
	require.NoError(t, err)

	assert.Equal(t, atlasWidth, atlas.AtlasW)
	assert.Equal(t, 0, atlas.AtlasH&(atlas.AtlasH-1), "height %d is not a power of two", atlas.AtlasH)

	for r := firstGlyph; r <= lastGlyph; r++ {
		assert.Contains(t, atlas.Characters, r, "missing %q", r)
	}
	assert.Greater(t, atlas.Characters[' '].Advance, 0)
	assert.Zero(t, atlas.Characters[' '].Width)

	var placed []image.Rectangle
	for r, fc := range atlas.Characters {
		if fc.Width == 0 {
			continue
		}
		rect := image.Rect(int(fc.AtlasX), int(fc.AtlasY), int(fc.AtlasX+fc.Width), int(fc.AtlasY+fc.Height))
		assert.True(t, rect.In(image.Rect(0, 0, atlas.AtlasW, atlas.AtlasH)), "%q at %v outside atlas", r, rect)
		for _, other := range placed {
			assert.False(t, rect.Overlaps(other), "%q at %v overlaps %v", r, rect, other)
		}
		placed = append(placed, rect)
	}
}

func TestBuildFontAtlasRejectsGarbage(t *testing.T) {
	_, err := BuildFontAtlas([]byte("nope"), 12)
	assert.Error(t, err)
}

func TestLoadFontAtlasMissingFile(t *testing.T) {
	_, err := LoadFontAtlas(t.TempDir()+"/missing.ttf", 12)
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	atlas, err := LoadFontAtlas("", 48)
	require.NoError(t, err)

	// "1 2": two drawable glyphs, the space only advances.
	verts := atlas.layout([]rune("1 2"), 10, 30, 0.5)
	require.Len(t, verts, 2*6*4)

	one := atlas.Characters['1']
	assert.InDelta(t, 10+one.BearingX*0.5, verts[0], 1e-4)

	// The second glyph starts after both advances.
	two := atlas.Characters['2']
	wantX := 10 + float32(one.Advance+atlas.Characters[' '].Advance)*0.5 + two.BearingX*0.5
	assert.InDelta(t, wantX, verts[24], 1e-4)

	// Texture coordinates stay normalized.
	for i := 2; i < len(verts); i += 4 {
		assert.GreaterOrEqual(t, verts[i], float32(0))
		assert.LessOrEqual(t, verts[i], float32(1))
		assert.GreaterOrEqual(t, verts[i+1], float32(0))
		assert.LessOrEqual(t, verts[i+1], float32(1))
	}

	assert.Empty(t, atlas.layout([]rune("   "), 0, 0, 1))
}

func TestProjection(t *testing.T) {
	p := NewProjection(1024, 768)
	assert.InDelta(t, 1024.0/768.0, p.AspectRatio, 1e-6)

	narrow := p.Matrix(10)
	wide := p.Matrix(45)
	// A narrower field of view magnifies.
	assert.Greater(t, narrow[5], wide[5])
}
