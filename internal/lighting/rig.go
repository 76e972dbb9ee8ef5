package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GridSize is the number of light positions the ADS shaders iterate over.
const GridSize = 9

// PrimaryLight is the grid corner marked by the lamp cube.
var PrimaryLight = mgl32.Vec3{-3.5, 2.5, -4.0}

// Grid returns the 3x3 ceiling layout, primary light first.
func Grid() [GridSize]mgl32.Vec3 {
	return [GridSize]mgl32.Vec3{
		{-3.5, 2.5, -4.0},
		{0.0, 2.5, -4.0},
		{3.5, 2.5, -4.0},
		{-3.5, 2.5, 0.0},
		{0.0, 2.5, 0.0},
		{3.5, 2.5, 0.0},
		{-3.5, 2.5, 4.0},
		{0.0, 2.5, 4.0},
		{3.5, 2.5, 4.0},
	}
}

// Rig is what one frame hands to the shading backend: positions plus the one
// parameter block every position shares.
type Rig struct {
	Spot      SpotLight
	Positions [GridSize]mgl32.Vec3
}

// DefaultRig returns the halogen spot over the standard grid.
func DefaultRig() Rig {
	return Rig{Spot: DefaultSpotLight(), Positions: Grid()}
}

// Shade sums the contribution of every grid position at one fragment.
func (r Rig) Shade(fragPos, normal, viewPos mgl32.Vec3, m Material) mgl32.Vec3 {
	var out mgl32.Vec3
	for _, p := range r.Positions {
		out = out.Add(r.Spot.Contribution(p, fragPos, normal, viewPos, m))
	}
	return out
}

// UniformSetter is the subset of a shader program the rig uploads through.
type UniformSetter interface {
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetVec3Array(name string, vs []mgl32.Vec3)
}

// Apply uploads lightPositions, viewPos and the light.* block.
func (r Rig) Apply(u UniformSetter, viewPos mgl32.Vec3) {
	u.SetVec3Array("lightPositions", r.Positions[:])
	u.SetVec3("viewPos", viewPos)

	s := r.Spot
	u.SetVec3("light.direction", s.Direction)
	u.SetFloat("light.constant", s.Constant)
	u.SetFloat("light.linear", s.Linear)
	u.SetFloat("light.quadratic", s.Quadratic)
	u.SetFloat("light.cutOff", s.CutOff)
	u.SetFloat("light.outerCutOff", s.OuterCutOff)
	u.SetVec3("light.ambient", s.Ambient)
	u.SetVec3("light.diffuse", s.Diffuse)
	u.SetVec3("light.specular", s.Specular)
}

// String is used in startup logs.
func (r Rig) String() string {
	return fmt.Sprintf("%d spots, cutoff %.3f/%.3f, attenuation %.2f/%.3f/%.3f",
		len(r.Positions), r.Spot.CutOff, r.Spot.OuterCutOff,
		r.Spot.Constant, r.Spot.Linear, r.Spot.Quadratic)
}
