package config

import (
	"log/slog"
	"strings"
	"sync"
)

// Window geometry is fixed at compile time; the window is not resizable.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "spotlit"
)

// Settings holds runtime configuration
type Settings struct {
	mu sync.RWMutex

	moveSpeed        float32 // world units per second
	mouseSensitivity float32 // degrees per pixel
	zoomMin          float32 // field-of-view bounds in degrees
	zoomMax          float32
	yaw              float32 // initial orientation in degrees
	pitch            float32
	vsync            bool
	fpsLimit         int // 0 disables the limiter
	debugOutput      bool
	wireframe        bool
	logLevel         slog.Level

	floorDiffuse  string
	floorSpecular string
	fontPath      string // empty selects the built-in face
}

func defaults() *Settings {
	return &Settings{
		moveSpeed:        3.0,
		mouseSensitivity: 0.1,
		zoomMin:          1.0,
		zoomMax:          45.0,
		yaw:              -90.0,
		pitch:            0.0,
		vsync:            true,
		fpsLimit:         0,
		debugOutput:      true,
		logLevel:         slog.LevelInfo,
		floorDiffuse:     "assets/textures/wood.png",
		floorSpecular:    "assets/textures/wood_spec.png",
	}
}

var global = defaults()

// Reset restores every setting to its default value
func Reset() {
	d := defaults()
	global.mu.Lock()
	defer global.mu.Unlock()
	global.moveSpeed = d.moveSpeed
	global.mouseSensitivity = d.mouseSensitivity
	global.zoomMin = d.zoomMin
	global.zoomMax = d.zoomMax
	global.yaw = d.yaw
	global.pitch = d.pitch
	global.vsync = d.vsync
	global.fpsLimit = d.fpsLimit
	global.debugOutput = d.debugOutput
	global.wireframe = d.wireframe
	global.logLevel = d.logLevel
	global.floorDiffuse = d.floorDiffuse
	global.floorSpecular = d.floorSpecular
	global.fontPath = d.fontPath
}

// GetMoveSpeed returns the camera movement speed in units per second
func GetMoveSpeed() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.moveSpeed
}

// SetMoveSpeed sets the camera movement speed
func SetMoveSpeed(speed float32) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 50 {
		speed = 50
	}
	global.moveSpeed = speed
}

// GetMouseSensitivity returns degrees of rotation per pixel of cursor travel
func GetMouseSensitivity() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.mouseSensitivity
}

// SetMouseSensitivity sets the mouse look sensitivity
func SetMouseSensitivity(sensitivity float32) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if sensitivity < 0.01 {
		sensitivity = 0.01
	}
	if sensitivity > 1 {
		sensitivity = 1
	}
	global.mouseSensitivity = sensitivity
}

// GetZoomRange returns the field-of-view bounds in degrees
func GetZoomRange() (lo, hi float32) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.zoomMin, global.zoomMax
}

// SetZoomRange sets the field-of-view bounds. Reversed bounds are swapped and
// both are clamped to [1, 120].
func SetZoomRange(lo, hi float32) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if lo > hi {
		lo, hi = hi, lo
	}
	global.zoomMin = min(max(lo, 1), 120)
	global.zoomMax = min(max(hi, 1), 120)
}

// GetInitialOrientation returns the yaw and pitch the camera starts with
func GetInitialOrientation() (yaw, pitch float32) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.yaw, global.pitch
}

// SetInitialOrientation sets the starting yaw and pitch. Pitch is clamped to [-89, 89].
func SetInitialOrientation(yaw, pitch float32) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.yaw = yaw
	global.pitch = min(max(pitch, -89), 89)
}

// GetVSync reports whether buffer swaps wait for vertical blank
func GetVSync() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.vsync
}

// SetVSync enables or disables vertical sync
func SetVSync(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.vsync = enabled
}

// GetFPSLimit returns the frame cap, 0 meaning uncapped
func GetFPSLimit() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	global.fpsLimit = limit
}

// GetDebugOutput reports whether the GL debug message callback is installed
func GetDebugOutput() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.debugOutput
}

// SetDebugOutput enables or disables GL debug output
func SetDebugOutput(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.debugOutput = enabled
}

// GetWireframeMode reports whether polygons are drawn as lines
func GetWireframeMode() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.wireframe
}

// SetWireframeMode sets the polygon mode
func SetWireframeMode(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.wireframe = enabled
}

// ToggleWireframeMode flips the polygon mode and returns the new value
func ToggleWireframeMode() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.wireframe = !global.wireframe
	return global.wireframe
}

// GetLogLevel returns the minimum level emitted by the default logger
func GetLogLevel() slog.Level {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.logLevel
}

// SetLogLevel parses one of debug, info, warn or error. Unknown names keep the current level.
func SetLogLevel(name string) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logLevel = level
}

// GetFloorTextures returns the diffuse and specular map paths for the floor
func GetFloorTextures() (diffuse, specular string) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.floorDiffuse, global.floorSpecular
}

// SetFloorTextures sets the floor texture paths. Empty values are ignored.
func SetFloorTextures(diffuse, specular string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if diffuse != "" {
		global.floorDiffuse = diffuse
	}
	if specular != "" {
		global.floorSpecular = specular
	}
}

// GetFontPath returns the TrueType/OpenType file used for text, or "" for the built-in face
func GetFontPath() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fontPath
}

// SetFontPath sets the font file path
func SetFontPath(path string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fontPath = path
}
