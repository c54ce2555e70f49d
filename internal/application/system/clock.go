package system

import "time"

// Clock is a monotonic timestamp source
type Clock interface {
	Now() time.Duration
}

// SystemClock measures wall time since its creation
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time since creation (monotonic)
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to (tests, replays)
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a clock at start
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current timestamp
func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set jumps to t; going backwards is ignored
func (c *ManualClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}

// FrameClock turns a Clock into per-frame (now, dt) pairs
type FrameClock struct {
	clock   Clock
	last    time.Duration
	started bool
}

// NewFrameClock creates a frame clock over c
func NewFrameClock(c Clock) *FrameClock {
	return &FrameClock{clock: c}
}

// Tick returns the current timestamp and the seconds since the previous
// Tick. The first Tick reports dt = 0.
func (f *FrameClock) Tick() (time.Duration, float64) {
	now := f.clock.Now()
	if !f.started {
		f.started = true
		f.last = now
		return now, 0
	}
	dt := (now - f.last).Seconds()
	f.last = now
	return now, dt
}

// Clock returns the underlying clock
func (f *FrameClock) Clock() Clock { return f.clock }
