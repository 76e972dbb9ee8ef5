package camera_test

import (
	"math/rand/v2"
	"testing"

	"spotlit/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

// lookAt is a hand-written right-handed look-at used as a reference.
func lookAt(eye, front, up mgl32.Vec3) mgl32.Mat4 {
	f := front.Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return mgl32.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

func TestNewDefaults(t *testing.T) {
	c := camera.New(mgl32.Vec3{0, 0, 4})

	assert.Equal(t, float32(camera.DefaultYaw), c.Yaw())
	assert.Equal(t, float32(camera.DefaultPitch), c.Pitch())
	assert.Equal(t, float32(camera.DefaultZoom), c.Zoom())
	assert.True(t, c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps), "front %v", c.Front())
	assert.True(t, c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps), "right %v", c.Right())
	assert.True(t, c.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, eps), "up %v", c.Up())
}

func TestPitchStaysClamped(t *testing.T) {
	c := camera.New(mgl32.Vec3{})
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 2000; i++ {
		x := float32(rng.NormFloat64() * 400)
		y := float32(rng.NormFloat64() * 400)
		c.ProcessMouseMovement(x, y)
		assert.GreaterOrEqual(t, c.Pitch(), float32(-camera.PitchMax))
		assert.LessOrEqual(t, c.Pitch(), float32(camera.PitchMax))
	}

	c.ProcessMouseMovement(0, 1e6)
	assert.Equal(t, float32(camera.PitchMax), c.Pitch())
	c.ProcessMouseMovement(0, -1e6)
	assert.Equal(t, float32(-camera.PitchMax), c.Pitch())
}

func TestBasisStaysOrthonormal(t *testing.T) {
	c := camera.New(mgl32.Vec3{1, 2, 3})
	c.ProcessMouseMovement(123, -321)
	c.ProcessMouseMovement(-40, 700)

	f, r, u := c.Front(), c.Right(), c.Up()
	assert.InDelta(t, 1, f.Len(), eps)
	assert.InDelta(t, 1, r.Len(), eps)
	assert.InDelta(t, 1, u.Len(), eps)
	assert.InDelta(t, 0, f.Dot(r), eps)
	assert.InDelta(t, 0, f.Dot(u), eps)
	assert.InDelta(t, 0, r.Dot(u), eps)
}

func TestSensitivityScalesOffsets(t *testing.T) {
	c := camera.New(mgl32.Vec3{}, camera.WithSensitivity(0.5))
	c.ProcessMouseMovement(10, 4)

	assert.InDelta(t, camera.DefaultYaw+5, c.Yaw(), eps)
	assert.InDelta(t, 2, c.Pitch(), eps)
}

func TestZoomStaysClamped(t *testing.T) {
	c := camera.New(mgl32.Vec3{})
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 1000; i++ {
		c.ProcessMouseScroll(float32(rng.NormFloat64() * 20))
		assert.GreaterOrEqual(t, c.Zoom(), float32(camera.ZoomMin))
		assert.LessOrEqual(t, c.Zoom(), float32(camera.ZoomMax))
	}

	c.ProcessMouseScroll(1000)
	assert.Equal(t, float32(camera.ZoomMin), c.Zoom())
	c.ProcessMouseScroll(-1000)
	assert.Equal(t, float32(camera.ZoomMax), c.Zoom())
}

func TestZoomRangeOption(t *testing.T) {
	c := camera.New(mgl32.Vec3{}, camera.WithZoomRange(60, 10))

	lo, hi := c.ZoomRange()
	assert.Equal(t, float32(10), lo)
	assert.Equal(t, float32(60), hi)
	assert.Equal(t, float32(camera.DefaultZoom), c.Zoom())

	c.ProcessMouseScroll(-100)
	assert.Equal(t, float32(60), c.Zoom())
}

func TestViewMatrixMatchesReference(t *testing.T) {
	c := camera.New(mgl32.Vec3{0, 0, 4})
	c.ProcessMouseMovement(250, -120)
	c.ProcessKeyboard(camera.Forward, 0.5)

	want := lookAt(c.Position(), c.Front(), c.Up())
	got := c.ViewMatrix()
	assert.True(t, got.ApproxEqualThreshold(want, eps), "got\n%v\nwant\n%v", got, want)

	// The camera position maps to the eye-space origin.
	eye := got.Mul4x1(c.Position().Vec4(1))
	assert.True(t, eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-4), "eye %v", eye)
}

func TestViewMatrixIsPure(t *testing.T) {
	c := camera.New(mgl32.Vec3{1, 1, 1})
	first := c.ViewMatrix()
	second := c.ViewMatrix()
	assert.Equal(t, first, second)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, c.Position())
}

func TestProcessKeyboardZeroDelta(t *testing.T) {
	c := camera.New(mgl32.Vec3{0, 0, 4})
	c.ProcessMouseMovement(33, 17)
	start := c.Position()

	for _, dir := range []camera.Direction{camera.Forward, camera.Backward, camera.Left, camera.Right} {
		c.ProcessKeyboard(dir, 0)
	}
	assert.Equal(t, start, c.Position())
}

func TestProcessKeyboardDirections(t *testing.T) {
	c := camera.New(mgl32.Vec3{0, 0, 4})

	c.ProcessKeyboard(camera.Forward, 1)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, eps), "forward %v", c.Position())

	c.ProcessKeyboard(camera.Backward, 1)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, 4}, eps), "backward %v", c.Position())

	c.ProcessKeyboard(camera.Right, 2)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{6, 0, 4}, eps), "right %v", c.Position())

	c.ProcessKeyboard(camera.Left, 2)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, 4}, eps), "left %v", c.Position())
}
