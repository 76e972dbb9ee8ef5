package game

import (
	"log/slog"
	"time"

	"spotlit/internal/config"
	"spotlit/internal/graphics/renderables/hud"
	"spotlit/internal/graphics/renderer"
	"spotlit/internal/input"
	"spotlit/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame's breakdown is logged
const slowFrame = 50 * time.Millisecond

// App owns the window, the simulation state and the renderer
type App struct {
	window   *glfw.Window
	state    *State
	renderer *renderer.Renderer
	hud      *hud.HUD

	fpsLimiter *FPSLimiter
	lastFPSLog time.Time
	frames     int
}

func NewApp(window *glfw.Window, im *input.InputManager, r *renderer.Renderer, h *hud.HUD) *App {
	return &App{
		window:     window,
		state:      NewState(im),
		renderer:   r,
		hud:        h,
		fpsLimiter: NewFPSLimiter(),
		lastFPSLog: time.Now(),
	}
}

// State exposes the simulation state, mainly for callbacks
func (a *App) State() *State {
	return a.state
}

// Run loops until the window is asked to close
func (a *App) Run() {
	a.state.Clock.Tick(glfw.GetTime())
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()

	func() {
		defer profiling.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()

	dt := a.state.Advance(glfw.GetTime())
	a.handleToggles()

	func() {
		defer profiling.Track("renderer.Render")()
		a.renderer.Render(renderer.Frame{
			Camera:    a.state.Camera,
			Rig:       a.state.Rig,
			Elapsed:   a.state.Elapsed(),
			DT:        dt,
			FrameRate: a.state.FrameRate.Text(),
		})
	}()

	func() {
		defer profiling.Track("glfw.SwapBuffers")()
		a.window.SwapBuffers()
	}()

	a.state.Input.PostUpdate()

	if a.hud != nil && a.hud.ShowProfiling() {
		a.hud.SetBreakdown(hud.CollectBreakdown())
	}

	if d := time.Since(startTick); d > slowFrame {
		slog.Warn("slow frame", "duration", d, "top", profiling.TopN(5))
	}
	a.logFPS()

	a.fpsLimiter.Wait()
}

func (a *App) handleToggles() {
	im := a.state.Input
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		slog.Debug("wireframe", "enabled", config.ToggleWireframeMode())
	}
	if im.JustPressed(input.ActionToggleProfiling) && a.hud != nil {
		a.hud.ToggleProfiling()
	}
}

func (a *App) logFPS() {
	a.frames++
	if since := time.Since(a.lastFPSLog); since >= time.Second {
		slog.Debug("fps", "frames", a.frames, "frame_ms", a.state.FrameRate.Milliseconds())
		a.frames = 0
		a.lastFPSLog = time.Now()
	}
}

// Dispose releases GPU resources. The window is destroyed by the caller.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
