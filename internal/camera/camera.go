// Package camera implements a free-flying Euler-angle camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction relative to the view.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Defaults
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 3.0
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	ZoomMin  = 1.0
	ZoomMax  = 45.0
	PitchMax = 89.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera tracks position and orientation. front, up and right are always
// re-derived from yaw and pitch.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	yaw   float32
	pitch float32

	speed       float32
	sensitivity float32
	zoom        float32
	zoomMin     float32
	zoomMax     float32
}

// Option customizes a Camera at construction.
type Option func(*Camera)

// WithSpeed sets the movement speed in units per second.
func WithSpeed(speed float32) Option {
	return func(c *Camera) { c.speed = speed }
}

// WithSensitivity sets degrees of rotation per unit of mouse offset.
func WithSensitivity(sensitivity float32) Option {
	return func(c *Camera) { c.sensitivity = sensitivity }
}

// WithZoomRange sets the field-of-view bounds in degrees. The current zoom is
// clamped into the new range.
func WithZoomRange(lo, hi float32) Option {
	return func(c *Camera) {
		if lo > hi {
			lo, hi = hi, lo
		}
		c.zoomMin, c.zoomMax = lo, hi
	}
}

// WithOrientation sets the initial yaw and pitch in degrees.
func WithOrientation(yaw, pitch float32) Option {
	return func(c *Camera) { c.yaw, c.pitch = yaw, pitch }
}

// New creates a camera at position looking down -Z.
func New(position mgl32.Vec3, opts ...Option) *Camera {
	c := &Camera{
		position:    position,
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		speed:       DefaultSpeed,
		sensitivity: DefaultSensitivity,
		zoom:        DefaultZoom,
		zoomMin:     ZoomMin,
		zoomMax:     ZoomMax,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pitch = clamp(c.pitch, -PitchMax, PitchMax)
	c.zoom = clamp(c.zoom, c.zoomMin, c.zoomMax)
	c.updateVectors()
	return c
}

// ProcessKeyboard moves the camera along its front or right axis.
func (c *Camera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.speed * dt
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by cursor offsets. Positive yOffset looks up.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.yaw += xOffset * c.sensitivity
	c.pitch += yOffset * c.sensitivity

	// Past vertical the look-at basis flips.
	c.pitch = clamp(c.pitch, -PitchMax, PitchMax)

	c.updateVectors()
}

// ProcessMouseScroll narrows the field of view on positive yOffset.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.zoom = clamp(c.zoom-yOffset, c.zoomMin, c.zoomMax)
}

// ViewMatrix returns the world-to-eye transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Zoom() float32        { return c.zoom }

// ZoomRange returns the field-of-view bounds in degrees.
func (c *Camera) ZoomRange() (lo, hi float32) { return c.zoomMin, c.zoomMax }

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
