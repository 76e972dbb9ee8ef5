package hud

import (
	"fmt"
	"strings"
	"time"

	"spotlit/assets"
	"spotlit/internal/config"
	"spotlit/internal/graphics"
	renderer "spotlit/internal/graphics/renderer"
	"spotlit/internal/profiling"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FontPixels is the rasterized glyph height; text is drawn at TextScale of it.
	FontPixels = 48
	TextScale  = 0.5

	// frameRateInset is the frame-rate label's distance from the right edge.
	frameRateInset = 130
	frameRateY     = 30

	profilingEntries = 5
	lineHeight       = FontPixels * TextScale
)

var (
	TextColor      = mgl32.Vec3{0.2, 0.6, 0.2}
	ProfilingColor = mgl32.Vec3{0.8, 0.8, 0.8}
)

// Breakdown is one frame's profiling summary, shown on the following frame
type Breakdown struct {
	Render      time.Duration // whole Renderer.Render call
	Renderables time.Duration // sum of the individual draws
	GLFW        time.Duration // event polling and buffer swap
	Top         string        // profiling.TopN output
}

// HUD draws the frame-rate label and an optional profiling breakdown
type HUD struct {
	fontRenderer  *graphics.FontRenderer
	width         int
	height        int
	showProfiling bool
	breakdown     Breakdown
}

// NewHUD creates a new HUD renderable
func NewHUD() *HUD {
	return &HUD{width: config.WindowWidth, height: config.WindowHeight}
}

// Init bakes the font atlas and compiles the text program
func (h *HUD) Init() error {
	atlas, err := graphics.LoadFontAtlas(config.GetFontPath(), FontPixels)
	if err != nil {
		return err
	}

	h.fontRenderer, err = graphics.NewFontRenderer(atlas, assets.Shaders, h.width, h.height)
	return err
}

// Render draws the overlay on top of the scene
func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderable.hud")()

	// Overlay text is always filled, even in wireframe mode
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	x, y := FrameRatePosition(h.width)
	h.fontRenderer.Render(ctx.FrameRate, x, y, TextScale, TextColor)

	if h.showProfiling {
		for i, line := range BreakdownLines(h.breakdown) {
			h.fontRenderer.Render(line, 10, frameRateY+float32(i)*lineHeight, TextScale, ProfilingColor)
		}
	}
}

// Dispose cleans up resources
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}

func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}

// ToggleProfiling toggles profiling HUD visibility
func (h *HUD) ToggleProfiling() {
	h.showProfiling = !h.showProfiling
}

// SetBreakdown stores the last completed frame's profiling totals
func (h *HUD) SetBreakdown(b Breakdown) {
	h.breakdown = b
}

// CollectBreakdown summarizes the profiling totals of the current frame
func CollectBreakdown() Breakdown {
	return Breakdown{
		Render:      profiling.SumWithPrefix("renderer."),
		Renderables: profiling.SumWithPrefix("renderable."),
		GLFW:        profiling.SumWithPrefix("glfw."),
		Top:         profiling.TopN(profilingEntries),
	}
}

// ShowProfiling returns whether profiling is enabled
func (h *HUD) ShowProfiling() bool {
	return h.showProfiling
}

// FrameRatePosition is the baseline origin of the frame-rate label for a
// framebuffer width, in top-left pixel coordinates.
func FrameRatePosition(width int) (x, y float32) {
	return float32(width - frameRateInset), frameRateY
}

// BreakdownLines formats the subtotals followed by the top entries, one per line.
func BreakdownLines(b Breakdown) []string {
	lines := []string{
		fmt.Sprintf("render %s (draws %s)", formatDuration(b.Render), formatDuration(b.Renderables)),
		"glfw " + formatDuration(b.GLFW),
	}
	return append(lines, ProfilingLines(b.Top)...)
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}

// ProfilingLines splits a profiling.TopN summary into one entry per line.
func ProfilingLines(summary string) []string {
	if summary == "" {
		return nil
	}
	return strings.Split(summary, ", ")
}
