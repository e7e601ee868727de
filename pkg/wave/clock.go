package wave

import "time"

// Clock is the animation time source fed to the evaluator. It is owned and
// advanced by the render loop; the evaluator itself never keeps time.
// The zero value starts at 0 and is running.
type Clock struct {
	seconds float64
	paused  bool
}

// Advance moves the clock forward by dt and returns the new time.
// Negative deltas and advances while paused are ignored.
func (c *Clock) Advance(dt time.Duration) float32 {
	if dt > 0 && !c.paused {
		c.seconds += dt.Seconds()
	}
	return c.Elapsed()
}

// Elapsed returns the current time in seconds, the value passed as t.
func (c *Clock) Elapsed() float32 {
	return float32(c.seconds)
}

// Seconds returns the current time at full precision.
func (c *Clock) Seconds() float64 {
	return c.seconds
}

// Set jumps to an absolute time. Negative values are treated as 0.
func (c *Clock) Set(seconds float64) {
	c.seconds = max(seconds, 0)
}

// Reset returns the clock to 0.
func (c *Clock) Reset() {
	c.seconds = 0
}

// Pause stops Advance from moving the clock.
func (c *Clock) Pause() { c.paused = true }

// Resume undoes Pause.
func (c *Clock) Resume() { c.paused = false }

// Toggle flips between paused and running and reports whether it is now paused.
func (c *Clock) Toggle() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }
