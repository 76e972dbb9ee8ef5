package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection holds the perspective parameters that do not depend on the camera
type Projection struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewProjection(width, height int) *Projection {
	return &Projection{
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    100.0,
	}
}

// Matrix returns the perspective transform for a vertical field of view in degrees
func (p *Projection) Matrix(fovDegrees float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), p.AspectRatio, p.NearPlane, p.FarPlane)
}
