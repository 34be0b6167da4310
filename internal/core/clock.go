package core

import "time"

// FrameClock resolves the timestamp of each simulation tick.
//
// The platform stamps every InputFrame with the tick message time, so
// interval checks (spawners, cooldowns) follow the wall clock at frame
// granularity. Frames without a timestamp advance the clock by one tick
// interval, which keeps tests and replays deterministic.
type FrameClock struct {
	interval time.Duration
	now      time.Time
}

// NewFrameClock creates a clock for the given tick rate starting at origin.
func NewFrameClock(tickRate int, origin time.Time) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{
		interval: time.Second / time.Duration(tickRate),
		now:      origin,
	}
}

// Advance moves the clock to the frame's timestamp and returns it.
// Timestamps never move backwards.
func (c *FrameClock) Advance(at time.Time) time.Time {
	if at.IsZero() {
		c.now = c.now.Add(c.interval)
	} else if at.After(c.now) {
		c.now = at
	}
	return c.now
}

// Now returns the timestamp of the latest frame.
func (c *FrameClock) Now() time.Time {
	return c.now
}

// Cooldown blocks an action for a fixed duration after it fires.
// Expiry is checked against frame timestamps, not a timer.
type Cooldown struct {
	Duration time.Duration
	until    time.Time
}

// Ready reports whether the cooldown has expired at now.
func (c *Cooldown) Ready(now time.Time) bool {
	return !now.Before(c.until)
}

// Trigger starts the cooldown at now.
func (c *Cooldown) Trigger(now time.Time) {
	c.until = now.Add(c.Duration)
}

// Reset clears the cooldown.
func (c *Cooldown) Reset() {
	c.until = time.Time{}
}

// Interval fires at most once per period, measured from the last firing.
type Interval struct {
	Period time.Duration
	last   time.Time
}

// Arm restarts the interval at now.
func (i *Interval) Arm(now time.Time) {
	i.last = now
}

// Due reports whether more than Period has elapsed since the last firing and,
// if so, records now as the new firing time.
func (i *Interval) Due(now time.Time) bool {
	if now.Sub(i.last) > i.Period {
		i.last = now
		return true
	}
	return false
}
