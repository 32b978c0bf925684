package timing

import (
	"sync"
	"time"
)

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	Now() VTimeInMs
}

// SystemClock tells the wall-clock time elapsed since it was created. It reads
// the monotonic clock, so adjustments of the system time do not affect it.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a SystemClock that starts at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the milliseconds elapsed since the clock was created.
func (c *SystemClock) Now() VTimeInMs {
	return Ms(time.Since(c.start))
}

// ManualClock only moves when told to. Simulations and tests use it to step
// the controller through exact instants.
type ManualClock struct {
	lock sync.RWMutex
	now  VTimeInMs
}

// NewManualClock creates a ManualClock that reads start.
func NewManualClock(start VTimeInMs) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current time of the clock.
func (c *ManualClock) Now() VTimeInMs {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.now
}

// Set moves the clock to t. Moving the clock backwards panics.
func (c *ManualClock) Set(t VTimeInMs) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if t < c.now {
		panic("manual clock cannot move backwards")
	}

	c.now = t
}

// Advance moves the clock forward by span and returns the new time.
func (c *ManualClock) Advance(span VTimeInMs) VTimeInMs {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.now += span

	return c.now
}
