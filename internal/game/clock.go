package game

import "fmt"

// FrameClock turns absolute timestamps (seconds since startup) into per-frame
// deltas. The first delta is measured from zero.
type FrameClock struct {
	last float64
	dt   float64
}

// Tick records now and returns the time since the previous tick.
func (c *FrameClock) Tick(now float64) float64 {
	c.dt = now - c.last
	c.last = now
	return c.dt
}

// Delta returns the most recent frame delta in seconds.
func (c *FrameClock) Delta() float64 { return c.dt }

// Now returns the timestamp of the most recent tick.
func (c *FrameClock) Now() float64 { return c.last }

// DefaultFrameRateInterval updates the on-screen frame time every 4th frame;
// updating every frame flickers too fast to read.
const DefaultFrameRateInterval = 4

// FrameRateDisplay samples the frame time on every interval-th tick.
type FrameRateDisplay struct {
	interval int
	counter  int
	ms       float64
	text     string
}

// NewFrameRateDisplay creates a display that samples on the first tick and
// every interval ticks after it.
func NewFrameRateDisplay(interval int) *FrameRateDisplay {
	if interval < 1 {
		interval = 1
	}
	return &FrameRateDisplay{interval: interval, counter: interval}
}

// Tick advances the frame counter and reports whether this frame was sampled.
func (d *FrameRateDisplay) Tick(dt float64) bool {
	sampled := false
	if d.counter == d.interval {
		d.ms = dt * 1000
		d.text = fmt.Sprintf("%.3f ms", d.ms)
		d.counter = 0
		sampled = true
	}
	d.counter++
	return sampled
}

// Text returns the last formatted frame time.
func (d *FrameRateDisplay) Text() string { return d.text }

// Milliseconds returns the last sampled frame time.
func (d *FrameRateDisplay) Milliseconds() float64 { return d.ms }
