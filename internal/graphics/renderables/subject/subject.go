package subject

import (
	"spotlit/assets"
	"spotlit/internal/graphics"
	"spotlit/internal/graphics/geometry"
	renderer "spotlit/internal/graphics/renderer"
	"spotlit/internal/lighting"
	"spotlit/internal/profiling"
	"spotlit/internal/scene"
)

const (
	VertShader = "shaders/ads_multi_spot.vert"
	FragShader = "shaders/ads_multi_spot.frag"
)

// Torus dimensions and tessellation
const (
	OuterRadius = 0.7
	InnerRadius = 0.3
	Sides       = 60
	Rings       = 60
)

// Subject is the spinning emerald torus lit by the rig
type Subject struct {
	material lighting.Material

	shader *graphics.Shader
	mesh   *graphics.Mesh
}

func NewSubject() *Subject {
	return &Subject{material: lighting.Emerald}
}

// Init compiles the lit program and tessellates the torus
func (s *Subject) Init() error {
	var err error
	s.shader, err = graphics.NewShader(assets.Shaders, VertShader, FragShader)
	if err != nil {
		return err
	}
	s.mesh = graphics.NewMesh(geometry.Torus(OuterRadius, InnerRadius, Sides, Rings))
	return nil
}

// Render draws the torus at its current spin
func (s *Subject) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderable.subject")()

	s.shader.Use()
	s.shader.SetMat4("projection", ctx.Proj)
	s.shader.SetMat4("view", ctx.View)
	s.shader.SetMat4("model", scene.SubjectModel(ctx.Elapsed))
	ctx.Rig.Apply(s.shader, ctx.ViewPos)
	lighting.ApplyMaterial(s.shader, s.material)
	s.mesh.Render()
}

// Dispose releases GL resources
func (s *Subject) Dispose() {
	if s.mesh != nil {
		s.mesh.Dispose()
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

func (s *Subject) SetViewport(width, height int) {}
