package lot

import (
	"github.com/sarchlab/parkinglot/device"
	"github.com/sarchlab/parkinglot/timing"
)

// GateTimer closes the gate once it has been open for the dwell time. It is
// the only component that closes the gate.
type GateTimer struct {
	componentBase

	gate  device.GateActuator
	dwell timing.VTimeInMs
}

// NewGateTimer creates a GateTimer.
func NewGateTimer(
	name string,
	state *State,
	gate device.GateActuator,
	dwell timing.VTimeInMs,
) *GateTimer {
	if gate == nil {
		panic("gate actuator is not set")
	}

	if dwell == 0 {
		panic("dwell time cannot be 0")
	}

	return &GateTimer{
		componentBase: newComponentBase(name, state),
		gate:          gate,
		dwell:         dwell,
	}
}

// Update closes the gate if its dwell time has expired.
func (g *GateTimer) Update(now timing.VTimeInMs) bool {
	if !g.state.GateOpen {
		return false
	}

	if now.Since(g.state.GateOpenedAt) < g.dwell {
		return false
	}

	g.gate.SetPosition(device.GateClosed)
	g.state.GateOpen = false
	g.endGateCycle()
	g.emit(HookPosGateClosed, now, NoSpot, "Closing gate (timeout)")

	return true
}
