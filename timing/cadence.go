package timing

// A Cadence decides when a periodic piece of work is due. It never waits; the
// owner asks it on every loop iteration and it answers by comparing the
// elapsed time against the interval.
type Cadence struct {
	Interval VTimeInMs

	lastRun VTimeInMs
}

// NewCadence creates a cadence whose last run is at time zero, so the first
// run is due one interval after start.
func NewCadence(interval VTimeInMs) *Cadence {
	if interval == 0 {
		panic("cadence interval cannot be 0")
	}

	return &Cadence{Interval: interval}
}

// Due tells if at least one interval has elapsed since the last run.
func (c *Cadence) Due(now VTimeInMs) bool {
	return now.Since(c.lastRun) >= c.Interval
}

// MarkRun records that the work ran at now.
func (c *Cadence) MarkRun(now VTimeInMs) {
	c.lastRun = now
}

// TryRun marks the cadence as run and returns true if it is due at now.
func (c *Cadence) TryRun(now VTimeInMs) bool {
	if !c.Due(now) {
		return false
	}

	c.MarkRun(now)

	return true
}

// LastRun returns the time of the last run.
func (c *Cadence) LastRun() VTimeInMs {
	return c.lastRun
}
