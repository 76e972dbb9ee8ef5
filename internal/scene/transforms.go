// Package scene composes the per-frame model matrices of the demo objects.
package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	// SubjectSpinRate is the idle rotation of the test object in degrees per second.
	SubjectSpinRate = 50.0
	// LampScale shrinks the unit cube marking the primary light.
	LampScale = 0.2
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

// SubjectModel returns the test object's model matrix at elapsed seconds:
// spin about Y, then a fixed -35° tilt about X and 35° twist about Y,
// multiplied left to right.
func SubjectModel(elapsed float64) mgl32.Mat4 {
	spin := mgl32.DegToRad(float32(elapsed * SubjectSpinRate))
	return mgl32.HomogRotate3D(spin, axisY).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(-35), axisX)).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(35), axisY))
}

// LampModel places the light marker cube at pos.
func LampModel(pos mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Scale3D(LampScale, LampScale, LampScale))
}

// FloorModel is identity; the floor vertices are already in world space.
func FloorModel() mgl32.Mat4 {
	return mgl32.Ident4()
}
