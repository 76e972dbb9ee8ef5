package lighting

import "github.com/go-gl/mathgl/mgl32"

// Material holds Phong reflectance coefficients. For textured surfaces the
// diffuse and specular terms are the sampled map values at the fragment.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Emerald is the test object's material.
var Emerald = Material{
	Ambient:   mgl32.Vec3{0.0215, 0.1745, 0.0215},
	Diffuse:   mgl32.Vec3{0.07568, 0.61424, 0.07568},
	Specular:  mgl32.Vec3{0.633, 0.727811, 0.633},
	Shininess: 128,
}

// FloorShininess is the specular exponent of the textured floor.
const FloorShininess = 128

// Textured builds the material a textured fragment sees: ambient and diffuse
// come from the diffuse map, specular from the specular map.
func Textured(diffuseSample, specularSample mgl32.Vec3, shininess float32) Material {
	return Material{
		Ambient:   diffuseSample,
		Diffuse:   diffuseSample,
		Specular:  specularSample,
		Shininess: shininess,
	}
}

// ApplyMaterial uploads the material.* block for untextured shaders.
func ApplyMaterial(u UniformSetter, m Material) {
	u.SetVec3("material.ambient", m.Ambient)
	u.SetVec3("material.diffuse", m.Diffuse)
	u.SetVec3("material.specular", m.Specular)
	u.SetFloat("material.shininess", m.Shininess)
}
