// Package geometry generates interleaved vertex data for the demo's primitives.
//
// Every vertex is 8 floats: position (3), normal (3), texture coordinate (2).
package geometry

import (
	"github.com/chewxy/math32"
)

// Stride is the number of floats per vertex.
const Stride = 8

// Geometry is interleaved vertex data with optional triangle indices. A nil
// Indices slice means the vertices are drawn as a plain triangle list.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / Stride
}

// ElementCount returns how many vertices a draw call consumes.
func (g Geometry) ElementCount() int {
	if g.Indices != nil {
		return len(g.Indices)
	}
	return g.VertexCount()
}

// Vertex returns position, normal and uv of vertex i.
func (g Geometry) Vertex(i int) (pos, normal [3]float32, uv [2]float32) {
	v := g.Vertices[i*Stride : (i+1)*Stride]
	copy(pos[:], v[0:3])
	copy(normal[:], v[3:6])
	copy(uv[:], v[6:8])
	return
}

// Plane returns the 15x15 floor at y=-1 with its texture repeated 5.5 times.
func Plane() Geometry {
	return Geometry{Vertices: []float32{
		7.5, -1.0, 7.5, 0.0, 1.0, 0.0, 5.5, 0.0,
		-7.5, -1.0, 7.5, 0.0, 1.0, 0.0, 0.0, 0.0,
		-7.5, -1.0, -7.5, 0.0, 1.0, 0.0, 0.0, 5.5,

		7.5, -1.0, 7.5, 0.0, 1.0, 0.0, 5.5, 0.0,
		-7.5, -1.0, -7.5, 0.0, 1.0, 0.0, 0.0, 5.5,
		7.5, -1.0, -7.5, 0.0, 1.0, 0.0, 5.5, 5.5,
	}}
}

// Cube returns an axis-aligned cube of the given side centered on the origin,
// four vertices per face so each face has a flat normal.
func Cube(side float32) Geometry {
	h := side / 2
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	g := Geometry{
		Vertices: make([]float32, 0, 24*Stride),
		Indices:  make([]uint32, 0, 36),
	}
	for f, face := range faces {
		for c, p := range face.corners {
			g.Vertices = append(g.Vertices, p[0], p[1], p[2])
			g.Vertices = append(g.Vertices, face.normal[:]...)
			g.Vertices = append(g.Vertices, uvs[c][:]...)
		}
		base := uint32(f * 4)
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// Torus returns a ring in the XY plane around the Z axis. outer is the ring
// radius, inner the tube radius; sides and rings are the tube and ring
// subdivisions. The seam vertices are duplicated so texture coordinates wrap.
func Torus(outer, inner float32, sides, rings int) Geometry {
	if sides < 3 {
		sides = 3
	}
	if rings < 3 {
		rings = 3
	}

	g := Geometry{
		Vertices: make([]float32, 0, (rings+1)*(sides+1)*Stride),
		Indices:  make([]uint32, 0, rings*sides*6),
	}

	ringFactor := 2 * math32.Pi / float32(rings)
	sideFactor := 2 * math32.Pi / float32(sides)
	for ring := 0; ring <= rings; ring++ {
		u := float32(ring) * ringFactor
		cu, su := math32.Cos(u), math32.Sin(u)
		for side := 0; side <= sides; side++ {
			v := float32(side) * sideFactor
			cv, sv := math32.Cos(v), math32.Sin(v)
			r := outer + inner*cv

			g.Vertices = append(g.Vertices,
				r*cu, r*su, inner*sv,
				cv*cu, cv*su, sv,
				float32(ring)/float32(rings), float32(side)/float32(sides),
			)
		}
	}

	row := uint32(sides + 1)
	for ring := 0; ring < rings; ring++ {
		for side := 0; side < sides; side++ {
			a := uint32(ring)*row + uint32(side)
			b := a + row
			g.Indices = append(g.Indices, a, b, b+1, a, b+1, a+1)
		}
	}
	return g
}
