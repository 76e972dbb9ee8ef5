package renderer

import (
	"spotlit/internal/lighting"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame data for all renderables
type RenderContext struct {
	View    mgl32.Mat4
	Proj    mgl32.Mat4
	ViewPos mgl32.Vec3
	Rig     lighting.Rig

	// Elapsed is seconds since startup, DT the last frame's duration.
	Elapsed float64
	DT      float64

	FrameRate string
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
