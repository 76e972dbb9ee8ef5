package input

// Cursor turns absolute cursor samples into accumulated look offsets.
// The first sample after a reset only establishes the reference point, which
// avoids a jump when the cursor is captured.
type Cursor struct {
	lastX, lastY float64
	first        bool
	dx, dy       float64
}

// Reset discards the reference point and any pending offset
func (c *Cursor) Reset() {
	c.first = true
	c.dx, c.dy = 0, 0
}

// Move records a sample. Screen y grows downward, so dy is inverted.
func (c *Cursor) Move(x, y float64) {
	if c.first {
		c.lastX, c.lastY = x, y
		c.first = false
		return
	}
	c.dx += x - c.lastX
	c.dy += c.lastY - y
	c.lastX, c.lastY = x, y
}

// Drain returns and clears the pending offset
func (c *Cursor) Drain() (dx, dy float64) {
	dx, dy = c.dx, c.dy
	c.dx, c.dy = 0, 0
	return dx, dy
}
