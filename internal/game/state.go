package game

import (
	"spotlit/internal/camera"
	"spotlit/internal/config"
	"spotlit/internal/input"
	"spotlit/internal/lighting"

	"github.com/go-gl/mathgl/mgl32"
)

// StartPosition is where the camera spawns.
var StartPosition = mgl32.Vec3{0, 0, 4}

var movement = []struct {
	action input.Action
	dir    camera.Direction
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
}

// State is everything the frame update mutates. One instance is owned by the
// App and touched only from the main loop.
type State struct {
	Camera    *camera.Camera
	Input     *input.InputManager
	Clock     FrameClock
	FrameRate *FrameRateDisplay
	Rig       lighting.Rig
}

// NewState builds the initial state using the current config.
func NewState(im *input.InputManager) *State {
	zoomMin, zoomMax := config.GetZoomRange()
	yaw, pitch := config.GetInitialOrientation()
	return &State{
		Camera: camera.New(StartPosition,
			camera.WithSpeed(config.GetMoveSpeed()),
			camera.WithSensitivity(config.GetMouseSensitivity()),
			camera.WithZoomRange(zoomMin, zoomMax),
			camera.WithOrientation(yaw, pitch),
		),
		Input:     im,
		FrameRate: NewFrameRateDisplay(DefaultFrameRateInterval),
		Rig:       lighting.DefaultRig(),
	}
}

// Advance runs one simulation step at timestamp now (seconds): frame timing,
// then queued mouse look and zoom, then held movement keys.
func (s *State) Advance(now float64) float64 {
	dt := s.Clock.Tick(now)
	s.FrameRate.Tick(dt)

	if dx, dy := s.Input.DrainCursor(); dx != 0 || dy != 0 {
		s.Camera.ProcessMouseMovement(float32(dx), float32(dy))
	}
	if scroll := s.Input.DrainScroll(); scroll != 0 {
		s.Camera.ProcessMouseScroll(float32(scroll))
	}

	for _, m := range movement {
		if s.Input.IsActive(m.action) {
			s.Camera.ProcessKeyboard(m.dir, float32(dt))
		}
	}
	return dt
}

// Elapsed returns seconds since startup as of the last Advance.
func (s *State) Elapsed() float64 {
	return s.Clock.Now()
}
