package simclock

import (
	"math"
	"testing"
	"time"
)

func TestAdvanceOneSecondIsOneDay(t *testing.T) {
	c := New()
	t0 := time.Unix(1000, 0)

	c.Advance(t0)
	got := c.Advance(t0.Add(time.Second))
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("1 s at 1x = %v days, want 1", got)
	}
}

func TestAdvanceScalesWithSpeed(t *testing.T) {
	c := New()
	c.SetSpeed(4.0)
	t0 := time.Unix(1000, 0)

	c.Advance(t0)
	got := c.Advance(t0.Add(2 * time.Second))
	if math.Abs(got-8.0) > 1e-9 {
		t.Errorf("2 s at 4x = %v days, want 8", got)
	}
}

func TestSpeedClamped(t *testing.T) {
	c := New()
	c.SetSpeed(100)
	if c.Speed() != MaxSpeed {
		t.Errorf("speed %v not clamped to %v", c.Speed(), MaxSpeed)
	}
	c.SetSpeed(0.01)
	if c.Speed() != MinSpeed {
		t.Errorf("speed %v not clamped to %v", c.Speed(), MinSpeed)
	}

	c.SetSpeed(1)
	c.AdjustSpeed(0.25)
	if c.Speed() != MinSpeed {
		t.Errorf("adjusted speed %v not clamped", c.Speed())
	}
}

func TestPauseStopsTime(t *testing.T) {
	c := New()
	t0 := time.Unix(1000, 0)

	c.Advance(t0)
	c.Advance(t0.Add(time.Second))

	if !c.TogglePause() {
		t.Fatal("expected paused state")
	}
	got := c.Advance(t0.Add(10 * time.Second))
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("paused clock advanced to %v days", got)
	}

	// Resuming must not replay the paused interval.
	c.TogglePause()
	got = c.Advance(t0.Add(11 * time.Second))
	if math.Abs(got-2.0) > 1e-9 {
		t.Errorf("resumed clock = %v days, want 2", got)
	}
}

func TestReset(t *testing.T) {
	c := New()
	t0 := time.Unix(1000, 0)
	c.Advance(t0)
	c.Advance(t0.Add(5 * time.Second))

	c.Reset()
	if c.Now() != 0 {
		t.Errorf("reset clock at %v days", c.Now())
	}

	// First advance after reset re-arms without a jump.
	got := c.Advance(t0.Add(100 * time.Second))
	if got != 0 {
		t.Errorf("re-armed clock jumped to %v days", got)
	}
	got = c.Advance(t0.Add(101 * time.Second))
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("post-reset second = %v days, want 1", got)
	}
}

func TestBackwardsTimeIgnored(t *testing.T) {
	c := New()
	t0 := time.Unix(1000, 0)
	c.Advance(t0)
	c.Advance(t0.Add(time.Second))
	got := c.Advance(t0) // wall clock stepped back
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("backwards tick changed time to %v", got)
	}
}
