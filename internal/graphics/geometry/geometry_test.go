package geometry_test

import (
	"math"
	"testing"

	"spotlit/internal/graphics/geometry"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlane(t *testing.T) {
	g := geometry.Plane()

	assert.Nil(t, g.Indices)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.ElementCount())
	for i := 0; i < g.VertexCount(); i++ {
		pos, normal, uv := g.Vertex(i)
		assert.Equal(t, float32(-1), pos[1])
		assert.Equal(t, [3]float32{0, 1, 0}, normal)
		assert.Contains(t, []float32{0, 5.5}, uv[0])
		assert.Contains(t, []float32{0, 5.5}, uv[1])
	}
}

func TestCube(t *testing.T) {
	g := geometry.Cube(1)

	require.Equal(t, 24, g.VertexCount())
	require.Equal(t, 36, g.ElementCount())
	for _, idx := range g.Indices {
		assert.Less(t, int(idx), g.VertexCount())
	}

	for i := 0; i < g.VertexCount(); i++ {
		pos, normal, _ := g.Vertex(i)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0.5, math.Abs(float64(pos[axis])), 1e-6)
		}
		// The vertex lies on the face its normal points out of.
		p, n := mgl32.Vec3(pos), mgl32.Vec3(normal)
		assert.InDelta(t, 0.5, p.Dot(n), 1e-6)
	}
}

func TestCubeWindingFacesOutward(t *testing.T) {
	g := geometry.Cube(2)
	for tri := 0; tri < len(g.Indices); tri += 3 {
		a, n, _ := g.Vertex(int(g.Indices[tri]))
		b, _, _ := g.Vertex(int(g.Indices[tri+1]))
		c, _, _ := g.Vertex(int(g.Indices[tri+2]))
		pa, pb, pc := mgl32.Vec3(a), mgl32.Vec3(b), mgl32.Vec3(c)
		face := pb.Sub(pa).Cross(pc.Sub(pa))
		assert.Greater(t, face.Dot(mgl32.Vec3(n)), float32(0), "triangle %d", tri/3)
	}
}

func TestTorus(t *testing.T) {
	const outer, inner = 0.7, 0.3
	g := geometry.Torus(outer, inner, 60, 60)

	require.Equal(t, 61*61, g.VertexCount())
	require.Equal(t, 60*60*6, g.ElementCount())
	for _, idx := range g.Indices {
		require.Less(t, int(idx), g.VertexCount())
	}

	for i := 0; i < g.VertexCount(); i++ {
		pos, normal, uv := g.Vertex(i)
		p, n := mgl32.Vec3(pos), mgl32.Vec3(normal)

		assert.InDelta(t, 1, n.Len(), 1e-5)
		assert.GreaterOrEqual(t, uv[0], float32(0))
		assert.LessOrEqual(t, uv[0], float32(1))

		// Distance from the ring's center line equals the tube radius.
		ringDist := math.Hypot(float64(p[0]), float64(p[1]))
		center := mgl32.Vec3{p[0], p[1], 0}.Normalize().Mul(outer)
		assert.InDelta(t, inner, p.Sub(center).Len(), 1e-5)
		assert.LessOrEqual(t, ringDist, outer+inner+1e-5)
		assert.GreaterOrEqual(t, ringDist, outer-inner-1e-5)
	}
}

func TestTorusClampsSubdivisions(t *testing.T) {
	g := geometry.Torus(1, 0.25, 1, 0)
	assert.Equal(t, 4*4, g.VertexCount())
	assert.Equal(t, 3*3*6, g.ElementCount())
}
