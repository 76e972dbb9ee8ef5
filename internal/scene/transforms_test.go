package scene_test

import (
	"testing"

	"spotlit/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestSubjectModelAtZero(t *testing.T) {
	want := mgl32.HomogRotate3D(0, mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(-35), mgl32.Vec3{1, 0, 0})).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(35), mgl32.Vec3{0, 1, 0}))

	got := scene.SubjectModel(0)
	assert.True(t, got.ApproxEqualThreshold(want, eps), "got\n%v\nwant\n%v", got, want)
}

func TestSubjectModelOrderMatters(t *testing.T) {
	reversed := mgl32.HomogRotate3D(mgl32.DegToRad(35), mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(-35), mgl32.Vec3{1, 0, 0}))

	assert.False(t, scene.SubjectModel(0).ApproxEqualThreshold(reversed, 1e-3))
}

func TestSubjectModelSpin(t *testing.T) {
	// One full turn every 360/50 seconds.
	period := 360.0 / scene.SubjectSpinRate
	assert.True(t, scene.SubjectModel(period).ApproxEqualThreshold(scene.SubjectModel(0), 1e-4))

	// A quarter turn later the whole tilted frame is rotated 90° about Y.
	quarter := scene.SubjectModel(period / 4)
	want := mgl32.HomogRotate3D(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}).Mul4(scene.SubjectModel(0))
	assert.True(t, quarter.ApproxEqualThreshold(want, 1e-4), "got\n%v\nwant\n%v", quarter, want)

	// Pure rotation: the origin stays put and lengths are preserved.
	p := quarter.Mul4x1(mgl32.Vec4{1, 2, 3, 1}).Vec3()
	assert.InDelta(t, mgl32.Vec3{1, 2, 3}.Len(), p.Len(), 1e-4)
	assert.True(t, quarter.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3().ApproxEqualThreshold(mgl32.Vec3{}, eps))
}

func TestLampModel(t *testing.T) {
	pos := mgl32.Vec3{-3.5, 2.5, -4}
	m := scene.LampModel(pos)

	center := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, center.ApproxEqualThreshold(pos, eps), "center %v", center)

	corner := m.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	assert.True(t, corner.ApproxEqualThreshold(pos.Add(mgl32.Vec3{0.1, 0.1, 0.1}), eps), "corner %v", corner)
}

func TestFloorModel(t *testing.T) {
	assert.Equal(t, mgl32.Ident4(), scene.FloorModel())
}
