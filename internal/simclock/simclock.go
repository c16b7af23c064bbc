// Package simclock converts wall-clock time into simulation time for the
// frame-driven animation loop. One real second equals one simulated day at
// speed 1x, scaled linearly by the speed multiplier. Pausing simply stops
// time from advancing; reset zeroes it.
package simclock

import (
	"sync"
	"time"
)

// Speed limits and the base conversion rate.
const (
	MinSpeed = 0.5
	MaxSpeed = 10.0

	// DaysPerSecond is the simulated days elapsed per real second at 1x.
	DaysPerSecond = 1.0
)

// Clock accumulates simulation days from wall-clock ticks. The animation
// loop is the only driver: it calls Advance once per frame and reads the
// result. Methods are safe for concurrent readers (the audio layer polls
// Now from its own goroutine).
type Clock struct {
	mu       sync.Mutex
	speed    float64
	simDays  float64
	paused   bool
	lastTick time.Time
}

// New returns a clock at time zero and speed 1x.
func New() *Clock {
	return &Clock{speed: 1.0}
}

// Advance moves simulation time forward by the wall-clock interval since
// the previous call, scaled by the current speed, and returns the new
// simulation time in days. The first call only arms the clock. While
// paused the tick reference still follows now, so resuming does not
// replay the paused interval.
func (c *Clock) Advance(now time.Time) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastTick.IsZero() {
		c.lastTick = now
		return c.simDays
	}

	dt := now.Sub(c.lastTick).Seconds()
	c.lastTick = now
	if c.paused || dt <= 0 {
		return c.simDays
	}

	c.simDays += dt * c.speed * DaysPerSecond
	return c.simDays
}

// Now returns the current simulation time in days.
func (c *Clock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.simDays
}

// SetSpeed sets the speed multiplier, clamped to [MinSpeed, MaxSpeed].
func (c *Clock) SetSpeed(multiplier float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = clampSpeed(multiplier)
}

// AdjustSpeed multiplies the current speed by factor, clamped.
func (c *Clock) AdjustSpeed(factor float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = clampSpeed(c.speed * factor)
	return c.speed
}

// Speed returns the current multiplier.
func (c *Clock) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// TogglePause flips the paused state and reports the new state.
func (c *Clock) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Reset returns simulation time to zero, keeping speed and pause state.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.simDays = 0
	c.lastTick = time.Time{}
}

func clampSpeed(s float64) float64 {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}
