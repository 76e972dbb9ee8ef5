package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionToggleWireframe
	ActionToggleProfiling
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and queues pointer input
// until the frame consumes it. All handlers run on the main thread inside
// glfw.PollEvents, so no locking is needed.
type InputManager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Currently depressed keys, indexed by key code
	keys [glfw.KeyLast + 1]bool

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	cursor Cursor
	scroll float64
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}
	im.cursor.Reset()

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyF3, ActionToggleProfiling)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	if key < 0 || key > glfw.KeyLast {
		return
	}

	switch action {
	case glfw.Press:
		im.keys[key] = true
	case glfw.Release:
		im.keys[key] = false
	default:
		// Repeat does not change held state
		return
	}

	for _, act := range im.keyToActions[key] {
		held := im.anyBoundKeyHeld(act)
		if held && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !held && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = held
	}
}

// anyBoundKeyHeld keeps an action active while any of its keys is still down,
// so releasing W does not cancel a held Up arrow.
func (im *InputManager) anyBoundKeyHeld(act Action) bool {
	for key, actions := range im.keyToActions {
		if !im.keys[key] {
			continue
		}
		for _, a := range actions {
			if a == act {
				return true
			}
		}
	}
	return false
}

// KeyHeld reports whether a physical key is currently depressed
func (im *InputManager) KeyHeld(key glfw.Key) bool {
	if key < 0 || key > glfw.KeyLast {
		return false
	}
	return im.keys[key]
}

// HandleCursor records a cursor position sample
func (im *InputManager) HandleCursor(x, y float64) {
	im.cursor.Move(x, y)
}

// HandleScroll accumulates vertical scroll
func (im *InputManager) HandleScroll(yOffset float64) {
	im.scroll += yOffset
}

// DrainCursor returns the cursor offset accumulated since the last drain.
// Positive y means the cursor moved up.
func (im *InputManager) DrainCursor() (dx, dy float64) {
	return im.cursor.Drain()
}

// DrainScroll returns the scroll accumulated since the last drain
func (im *InputManager) DrainScroll() float64 {
	s := im.scroll
	im.scroll = 0
	return s
}

// ResetCursor forgets the last cursor sample so the next one produces no offset
func (im *InputManager) ResetCursor() {
	im.cursor.Reset()
}

// PostUpdate must be called at the end of each frame to clear edge flags
func (im *InputManager) PostUpdate() {
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justReleased[action]
}
