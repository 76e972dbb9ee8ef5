package renderer

import (
	"fmt"

	"spotlit/internal/camera"
	"spotlit/internal/config"
	"spotlit/internal/graphics"
	"spotlit/internal/lighting"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// ClearColor is the background gray
const ClearColor = 0.05

// Frame is the simulation state a single Render call draws
type Frame struct {
	Camera    *camera.Camera
	Rig       lighting.Rig
	Elapsed   float64
	DT        float64
	FrameRate string
}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
}

// NewRenderer configures global GL state and initializes every renderable in order.
// Renderables are drawn in the order given.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		renderables: rs,
		projection:  graphics.NewProjection(width, height),
	}

	if err := initAll(rs, width, height); err != nil {
		return nil, err
	}
	return r, nil
}

// initAll initializes renderables in order. On failure the failing renderable
// and everything before it are disposed, newest first.
func initAll(rs []Renderable, width, height int) error {
	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			for j := i; j >= 0; j-- {
				rs[j].Dispose()
			}
			return fmt.Errorf("init renderable %d (%T): %w", i, rb, err)
		}
		rb.SetViewport(width, height)
	}
	return nil
}

// Render clears the frame and draws all features
func (r *Renderer) Render(f Frame) {
	gl.ClearColor(ClearColor, ClearColor, ClearColor, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if config.GetWireframeMode() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	ctx := r.context(f)
	for _, rb := range r.renderables {
		rb.Render(ctx)
	}
}

func (r *Renderer) context(f Frame) RenderContext {
	return RenderContext{
		View:      f.Camera.ViewMatrix(),
		Proj:      r.projection.Matrix(f.Camera.Zoom()),
		ViewPos:   f.Camera.Position(),
		Rig:       f.Rig,
		Elapsed:   f.Elapsed,
		DT:        f.DT,
		FrameRate: f.FrameRate,
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the projection and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection = graphics.NewProjection(width, height)
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
