// Package lighting holds the spotlight parameter block shared by every lit
// surface, the fixed light grid, and a CPU reference of the per-fragment
// shading the ADS shaders perform.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Halogen is the warm tint applied to all light colors.
var Halogen = mgl32.Vec3{1.0, 0.945098039, 0.878431373}

// SpotLight is one parameter block shared by every position in the grid.
type SpotLight struct {
	Direction mgl32.Vec3

	// Attenuation: 1 / (Constant + Linear*d + Quadratic*d*d)
	Constant  float32
	Linear    float32
	Quadratic float32

	// Cosines of the inner and outer cone half-angles.
	CutOff      float32
	OuterCutOff float32

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// DefaultSpotLight returns the downward halogen spot with a ~20-30 unit reach.
func DefaultSpotLight() SpotLight {
	return SpotLight{
		Direction:   mgl32.Vec3{0, -1, 0},
		Constant:    1.0,
		Linear:      0.09,
		Quadratic:   0.032,
		CutOff:      math32.Cos(mgl32.DegToRad(40)),
		OuterCutOff: math32.Cos(mgl32.DegToRad(50)),
		Ambient:     Halogen.Mul(0.08),
		Diffuse:     Halogen.Mul(0.7),
		Specular:    Halogen.Mul(2.0),
	}
}

// Attenuation returns the distance falloff factor at distance d.
func (s SpotLight) Attenuation(d float32) float32 {
	return 1.0 / (s.Constant + s.Linear*d + s.Quadratic*d*d)
}

// Falloff returns the smooth cone edge factor for a fragment whose direction
// to the light is lightDir (normalized, pointing at the light).
func (s SpotLight) Falloff(lightDir mgl32.Vec3) float32 {
	theta := lightDir.Dot(s.Direction.Mul(-1).Normalize())
	epsilon := s.CutOff - s.OuterCutOff
	return clamp((theta-s.OuterCutOff)/epsilon, 0, 1)
}

// Contribution evaluates ambient + diffuse + specular from a single light at
// lightPos for a fragment at fragPos with the given normal seen from viewPos.
func (s SpotLight) Contribution(lightPos, fragPos, normal, viewPos mgl32.Vec3, m Material) mgl32.Vec3 {
	n := normal.Normalize()
	toLight := lightPos.Sub(fragPos)
	distance := toLight.Len()
	lightDir := toLight.Normalize()

	ambient := mulElem(s.Ambient, m.Ambient)

	diff := max(n.Dot(lightDir), 0)
	diffuse := mulElem(s.Diffuse, m.Diffuse).Mul(diff)

	viewDir := viewPos.Sub(fragPos).Normalize()
	reflectDir := reflect(lightDir.Mul(-1), n)
	spec := math32.Pow(max(viewDir.Dot(reflectDir), 0), m.Shininess)
	specular := mulElem(s.Specular, m.Specular).Mul(spec)

	intensity := s.Falloff(lightDir)
	diffuse = diffuse.Mul(intensity)
	specular = specular.Mul(intensity)

	attenuation := s.Attenuation(distance)
	return ambient.Add(diffuse).Add(specular).Mul(attenuation)
}

// reflect mirrors GLSL reflect: i - 2*dot(n,i)*n
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
