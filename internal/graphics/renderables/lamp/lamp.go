package lamp

import (
	"spotlit/assets"
	"spotlit/internal/graphics"
	"spotlit/internal/graphics/geometry"
	renderer "spotlit/internal/graphics/renderer"
	"spotlit/internal/lighting"
	"spotlit/internal/profiling"
	"spotlit/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertShader = "shaders/lamp.vert"
	FragShader = "shaders/lamp.frag"
)

// Lamp draws the small unlit cube marking the primary light
type Lamp struct {
	position mgl32.Vec3
	color    mgl32.Vec3

	shader *graphics.Shader
	mesh   *graphics.Mesh
}

// NewLamp creates a lamp at the primary light position
func NewLamp() *Lamp {
	return &Lamp{position: lighting.PrimaryLight, color: lighting.Halogen}
}

// Init compiles the lamp program and uploads a unit cube
func (l *Lamp) Init() error {
	var err error
	l.shader, err = graphics.NewShader(assets.Shaders, VertShader, FragShader)
	if err != nil {
		return err
	}
	l.mesh = graphics.NewMesh(geometry.Cube(1))
	return nil
}

// Render draws the lamp cube
func (l *Lamp) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderable.lamp")()

	l.shader.Use()
	l.shader.SetMat4("projection", ctx.Proj)
	l.shader.SetMat4("view", ctx.View)
	l.shader.SetMat4("model", scene.LampModel(l.position))
	l.shader.SetVec3("lampColor", l.color)
	l.mesh.Render()
}

// Dispose releases GL resources
func (l *Lamp) Dispose() {
	if l.mesh != nil {
		l.mesh.Dispose()
	}
	if l.shader != nil {
		l.shader.Delete()
	}
}

func (l *Lamp) SetViewport(width, height int) {}
