package lot

import (
	"github.com/sarchlab/parkinglot/hooking"
	"github.com/sarchlab/parkinglot/timing"
)

// Controller owns the lot state and runs the components in a fixed order on
// every tick:
//
//  1. the occupancy tracker, when its sampling cadence is due,
//  2. the entry/exit arbiter,
//  3. the gate timer,
//  4. the status reporter, when its reporting cadence is due.
//
// Occupancy therefore always reflects the latest distance sample before a
// presence edge is arbitrated, and the display shows the result of all three.
// Nothing in a tick waits except the ranging sample, which is bounded by the
// sampler timeout.
type Controller struct {
	name  string
	clock timing.TimeTeller
	state *State

	tracker   *Tracker
	arbiter   *Arbiter
	gateTimer *GateTimer
	reporter  *StatusReporter

	sampleCadence *timing.Cadence
	reportCadence *timing.Cadence
}

// Name returns the name of the controller.
func (c *Controller) Name() string {
	return c.name
}

// Tick runs one iteration of the control loop.
func (c *Controller) Tick() bool {
	now := c.clock.Now()
	madeProgress := false

	if c.sampleCadence.TryRun(now) {
		madeProgress = c.tracker.Update(now) || madeProgress
	}

	madeProgress = c.arbiter.Update(now) || madeProgress
	madeProgress = c.gateTimer.Update(now) || madeProgress

	if c.reportCadence.TryRun(now) {
		c.reporter.Update(now)
	}

	return madeProgress
}

// Snapshot returns the current status of the lot.
func (c *Controller) Snapshot() Snapshot {
	return c.state.Snapshot()
}

// State exposes the shared state record. It must only be read or changed from
// the goroutine that ticks the controller.
func (c *Controller) State() *State {
	return c.state
}

// Components returns the components in evaluation order.
func (c *Controller) Components() []Component {
	return []Component{c.tracker, c.arbiter, c.gateTimer, c.reporter}
}

// AcceptHookOnComponents registers a hook on every component.
func (c *Controller) AcceptHookOnComponents(hook hooking.Hook) {
	for _, comp := range c.Components() {
		comp.AcceptHook(hook)
	}
}
