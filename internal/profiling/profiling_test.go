package profiling_test

import (
	"strings"
	"testing"
	"time"

	"spotlit/internal/profiling"

	"github.com/stretchr/testify/assert"
)

func TestTrackAccumulates(t *testing.T) {
	profiling.ResetFrame()
	t.Cleanup(profiling.ResetFrame)

	stop := profiling.Track("glfw.PollEvents")
	time.Sleep(2 * time.Millisecond)
	stop()
	profiling.Track("glfw.SwapBuffers")()
	profiling.Track("renderer.Render")()

	assert.Len(t, strings.Split(profiling.TopN(10), ", "), 3)
	assert.GreaterOrEqual(t, profiling.SumWithPrefix("glfw.PollEvents"), 2*time.Millisecond)
	assert.GreaterOrEqual(t, profiling.SumWithPrefix("glfw."), profiling.SumWithPrefix("glfw.PollEvents"))
	assert.Less(t, profiling.SumWithPrefix("renderer."), profiling.SumWithPrefix("glfw."))
	assert.Zero(t, profiling.SumWithPrefix("physics."))

	profiling.ResetFrame()
	assert.Empty(t, profiling.TopN(10))
	assert.Zero(t, profiling.SumWithPrefix(""))
}

func TestTopN(t *testing.T) {
	profiling.ResetFrame()
	t.Cleanup(profiling.ResetFrame)

	assert.Empty(t, profiling.TopN(3))

	stop := profiling.Track("slow")
	time.Sleep(3 * time.Millisecond)
	stop()
	profiling.Track("fast")()

	top := profiling.TopN(1)
	assert.True(t, strings.HasPrefix(top, "slow:"), top)
	assert.True(t, strings.HasSuffix(top, "ms"), top)
	assert.NotContains(t, top, "fast")

	assert.Len(t, strings.Split(profiling.TopN(10), ", "), 2)
}
