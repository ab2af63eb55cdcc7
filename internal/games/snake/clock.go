package snake

import "time"

// DefaultInterval is the time between snake steps.
const DefaultInterval = 150 * time.Millisecond

// Clock is a repeating timer that gates how often the snake advances,
// decoupling movement speed from the host frame rate.
type Clock struct {
	period  time.Duration
	elapsed time.Duration
}

// NewClock returns a clock that fires every period.
func NewClock(period time.Duration) *Clock {
	return &Clock{period: period}
}

// Tick adds delta to the accumulator and reports whether a period elapsed.
// It fires at most once per call: a long frame spanning several periods
// still yields a single step, and only the remainder is carried over.
func (c *Clock) Tick(delta time.Duration) bool {
	if delta < 0 {
		delta = 0
	}
	if c.period <= 0 {
		return true
	}
	c.elapsed += delta
	if c.elapsed < c.period {
		return false
	}
	c.elapsed %= c.period
	return true
}

// Reset zeroes the accumulator.
func (c *Clock) Reset() {
	c.elapsed = 0
}

// Period returns the firing interval.
func (c *Clock) Period() time.Duration {
	return c.period
}

// Elapsed returns the time accumulated toward the next firing.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}
