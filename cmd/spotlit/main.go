package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"spotlit/internal/config"
	"spotlit/internal/game"
	"spotlit/internal/graphics/renderables/floor"
	"spotlit/internal/graphics/renderables/hud"
	"spotlit/internal/graphics/renderables/lamp"
	"spotlit/internal/graphics/renderables/subject"
	renderer "spotlit/internal/graphics/renderer"
	"spotlit/internal/input"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and GL calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("spotlit", "err", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load(config.DefaultFile); err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.GetLogLevel()})))

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	slog.Info("opengl", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	setupGL(window)

	// Draw order: the overlay goes last so scene depth never hides it
	hudRenderer := hud.NewHUD()
	fbWidth, fbHeight := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbWidth, fbHeight,
		lamp.NewLamp(),
		floor.NewFloor(),
		subject.NewSubject(),
		hudRenderer,
	)
	if err != nil {
		return err
	}

	im := input.NewInputManager()
	app := game.NewApp(window, im, r, hudRenderer)
	defer app.Dispose()
	slog.Info("scene ready", "lights", app.State().Rig)

	setupInputHandlers(window, im, r)

	app.Run()
	return nil
}
