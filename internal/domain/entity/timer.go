package entity

import "time"

// Timer reports when a fixed duration has elapsed since Start.
// Timestamps are monotonic offsets from the session clock.
type Timer struct {
	Duration time.Duration
	start    time.Duration
}

// NewTimer creates a timer started at now
func NewTimer(d time.Duration, now time.Duration) Timer {
	return Timer{Duration: d, start: now}
}

// Start records now as the reference timestamp
func (t *Timer) Start(now time.Duration) { t.start = now }

// Started returns the reference timestamp
func (t *Timer) Started() time.Duration { return t.start }

// Elapsed returns the time since Start
func (t *Timer) Elapsed(now time.Duration) time.Duration { return now - t.start }

// Expired reports whether Duration has passed
func (t *Timer) Expired(now time.Duration) bool { return t.Elapsed(now) >= t.Duration }

// Cooldown gates an action to at most once per Duration
type Cooldown struct {
	timer Timer
	ready bool
}

// NewCooldown creates a cooldown that is ready immediately
func NewCooldown(d time.Duration) Cooldown {
	return Cooldown{timer: Timer{Duration: d}, ready: true}
}

// Ready reports whether the action may run
func (c *Cooldown) Ready() bool { return c.ready }

// Trigger consumes the cooldown at now
func (c *Cooldown) Trigger(now time.Duration) {
	c.ready = false
	c.timer.Start(now)
}

// Refresh re-enables the action once the duration has passed
func (c *Cooldown) Refresh(now time.Duration) {
	if !c.ready && c.timer.Expired(now) {
		c.ready = true
	}
}

// LastTrigger returns the timestamp of the last Trigger
func (c *Cooldown) LastTrigger() time.Duration { return c.timer.Started() }

// Duration returns the cooldown length
func (c *Cooldown) Duration() time.Duration { return c.timer.Duration }

// Ticker fires every Interval on wall-clock boundaries.
// It re-arms on expiry, not on consumption, so a slow frame yields
// several pending fires instead of drifting the cadence.
type Ticker struct {
	Interval time.Duration
	next     time.Duration
}

// NewTicker creates a ticker whose first fire is one interval after now
func NewTicker(interval time.Duration, now time.Duration) Ticker {
	return Ticker{Interval: interval, next: now + interval}
}

// Reset re-arms the ticker relative to now
func (t *Ticker) Reset(now time.Duration) { t.next = now + t.Interval }

// Poll returns how many fires happened up to now
func (t *Ticker) Poll(now time.Duration) int {
	if t.Interval <= 0 {
		return 0
	}
	n := 0
	for now >= t.next {
		t.next += t.Interval
		n++
	}
	return n
}

// Next returns the timestamp of the next fire
func (t *Ticker) Next() time.Duration { return t.next }
