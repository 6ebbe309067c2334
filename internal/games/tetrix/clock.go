package tetrix

import "time"

// Ticker is the engine's handle on the external tick scheduler.
// Start (re)schedules periodic ticks at the given interval, Stop cancels
// future ticks, and Active reports whether ticks are scheduled.
type Ticker interface {
	Start(interval time.Duration)
	Stop()
	Active() bool
}

// FrameClock is a Ticker driven by a fixed-rate frame loop. The platform
// advances it once per frame and fires engine ticks as they come due.
type FrameClock struct {
	interval time.Duration
	elapsed  time.Duration
	active   bool
}

// Start schedules ticks every interval, discarding any partial progress.
func (c *FrameClock) Start(interval time.Duration) {
	c.interval = interval
	c.elapsed = 0
	c.active = interval > 0
}

// Stop cancels future ticks.
func (c *FrameClock) Stop() {
	c.active = false
	c.elapsed = 0
}

// Active reports whether ticks are scheduled.
func (c *FrameClock) Active() bool { return c.active }

// Interval returns the most recently scheduled interval.
func (c *FrameClock) Interval() time.Duration { return c.interval }

// Advance adds frame time to the clock. Stopped clocks do not accumulate.
func (c *FrameClock) Advance(dt time.Duration) {
	if !c.active {
		return
	}
	c.elapsed += dt
}

// Fire consumes one due tick, if any.
func (c *FrameClock) Fire() bool {
	if !c.active || c.elapsed < c.interval {
		return false
	}
	c.elapsed -= c.interval
	return true
}
