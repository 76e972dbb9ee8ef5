// Package profiling accumulates per-frame CPU time by name.
//
// Usage: defer profiling.Track("renderer.Render")()
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// The render loop is single-threaded; totals are only touched from it.
var frameTotals = make(map[string]time.Duration)

// Track returns a stop function that adds the elapsed time to name.
func Track(name string) func() {
	start := time.Now()
	return func() {
		frameTotals[name] += time.Since(start)
	}
}

// ResetFrame clears the totals. Call at the start of each frame.
func ResetFrame() {
	clear(frameTotals)
}

// SumWithPrefix totals every entry whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n largest totals, e.g. "renderer.Render:4.2ms, glfw.PollEvents:0.3ms".
func TopN(n int) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	list := make([]entry, 0, len(frameTotals))
	for k, v := range frameTotals {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, e.name+":"+formatMs(e.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
