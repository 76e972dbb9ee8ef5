package main

import (
	renderer "spotlit/internal/graphics/renderer"
	"spotlit/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// setupInputHandlers only queues events; the frame update consumes them
func setupInputHandlers(window *glfw.Window, im *input.InputManager, r *renderer.Renderer) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursor(xpos, ypos)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})

	// Regaining focus re-captures the cursor somewhere else
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			im.ResetCursor()
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		r.UpdateViewport(fbWidth, fbHeight)
	})
}
