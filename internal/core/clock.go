package core

import "time"

const (
	initialPeriod = time.Second
	// Bounds and factors for the speed controls. The period never leaves
	// [minPeriod, maxPeriod] through SpeedUp/SlowDown.
	minPeriod      = 100 * time.Millisecond
	maxPeriod      = 3 * time.Second
	speedUpFactor  = 0.7
	slowDownFactor = 1.4
)

// Clock decides when the simulation should advance a generation. It
// accumulates wall-clock time between ticks and fires once the configured
// period has elapsed. Missed periods are dropped, not queued: the
// accumulator resets to zero after every advance.
type Clock struct {
	period      time.Duration
	paused      bool
	accumulator time.Duration
	last        time.Time
}

// NewClock returns a clock at one generation per second, paused so the
// user can seed a pattern before the simulation runs.
func NewClock() *Clock {
	return &Clock{period: initialPeriod, paused: true}
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Pause stops generation advancement.
func (c *Clock) Pause() { c.paused = true }

// Resume restarts generation advancement with a fresh accumulator.
func (c *Clock) Resume() {
	c.paused = false
	c.accumulator = 0
	c.last = time.Time{}
}

// TogglePause flips between running and paused.
func (c *Clock) TogglePause() {
	if c.paused {
		c.Resume()
		return
	}
	c.Pause()
}

// Period returns the current time per generation.
func (c *Clock) Period() time.Duration { return c.period }

// GenerationsPerSecond returns the current speed for display.
func (c *Clock) GenerationsPerSecond() float64 {
	return float64(time.Second) / float64(c.period)
}

// SpeedUp shortens the generation period. Speed changes only apply while
// the clock is running; while paused they are no-ops.
func (c *Clock) SpeedUp() {
	if c.paused {
		return
	}
	c.period = time.Duration(float64(c.period) * speedUpFactor)
	if c.period < minPeriod {
		c.period = minPeriod
	}
}

// SlowDown lengthens the generation period. No-op while paused.
func (c *Clock) SlowDown() {
	if c.paused {
		return
	}
	c.period = time.Duration(float64(c.period) * slowDownFactor)
	if c.period > maxPeriod {
		c.period = maxPeriod
	}
}

// Tick feeds the clock the current time and reports whether a generation
// should advance now. While paused the elapsed time is discarded so that
// resuming does not replay the pause as simulation time.
func (c *Clock) Tick(now time.Time) bool {
	if c.paused {
		c.last = now
		return false
	}
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator >= c.period {
		c.accumulator = 0
		return true
	}
	return false
}
