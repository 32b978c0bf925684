package lot

import (
	"fmt"

	"github.com/sarchlab/parkinglot/device"
	"github.com/sarchlab/parkinglot/timing"
)

// Arbiter turns presence edges at the gate into arrivals and departures. It
// opens the gate but never closes it; closing belongs to the GateTimer.
type Arbiter struct {
	componentBase

	presence device.PresenceSensor
	gate     device.GateActuator
	debounce timing.VTimeInMs

	strictArrivalAccounting bool
	recognizeSpot1Departure bool
}

// NewArbiter creates an Arbiter that applies the debounce window and the
// departure and accounting policies of cfg.
func NewArbiter(
	name string,
	state *State,
	presence device.PresenceSensor,
	gate device.GateActuator,
	cfg Config,
) *Arbiter {
	if presence == nil {
		panic("presence sensor is not set")
	}

	if gate == nil {
		panic("gate actuator is not set")
	}

	return &Arbiter{
		componentBase:           newComponentBase(name, state),
		presence:                presence,
		gate:                    gate,
		debounce:                timing.Ms(cfg.DebounceWindow),
		strictArrivalAccounting: cfg.StrictArrivalAccounting,
		recognizeSpot1Departure: cfg.RecognizeSpot1Departure,
	}
}

// Update reads the presence sensor and handles an accepted edge.
func (a *Arbiter) Update(now timing.VTimeInMs) bool {
	if !a.acceptEdge(now) {
		return false
	}

	if a.state.GateOpen {
		return false
	}

	if a.state.AvailableCount > 0 {
		a.admit(now)
		return true
	}

	return a.release(now)
}

// acceptEdge tells if the sensor is active outside of the debounce window,
// and if so records the edge.
func (a *Arbiter) acceptEdge(now timing.VTimeInMs) bool {
	if a.presence.Read() != device.Active {
		return false
	}

	if now.Since(a.state.LastPresenceEdgeAt) < a.debounce {
		return false
	}

	a.state.LastPresenceEdgeAt = now

	return true
}

func (a *Arbiter) admit(now timing.VTimeInMs) {
	a.openGate(now, "arrival")
	a.emit(HookPosGateOpened, now, NoSpot, "Vehicle detected - Opening gate")

	spot := a.state.firstFreeSpot()
	if spot == NoSpot {
		if a.strictArrivalAccounting {
			return
		}

		a.state.takeSpace()
		a.emit(HookPosCountDesynced, now, NoSpot, fmt.Sprintf(
			"No free spot for arriving vehicle, available count is now %d",
			a.state.AvailableCount))

		return
	}

	a.state.setOccupied(spot, true)
	a.state.takeSpace()
	a.startStay(spot, "arrival")
	a.emit(HookPosSpotOccupied, now, spot,
		fmt.Sprintf("%s assigned to arriving vehicle", spot))
}

func (a *Arbiter) release(now timing.VTimeInMs) bool {
	spot := a.departingSpot()
	if spot == NoSpot {
		return false
	}

	a.state.setOccupied(spot, false)
	a.state.releaseSpace()
	a.endStay(spot)

	a.openGate(now, "departure")
	a.emit(HookPosGateOpened, now, spot,
		fmt.Sprintf("Vehicle leaving %s - Opening gate", spot))
	a.emit(HookPosSpotVacated, now, spot,
		fmt.Sprintf("%s is now vacant", spot))

	return true
}

// departingSpot picks the spot a vehicle at a full lot is leaving from.
func (a *Arbiter) departingSpot() Spot {
	if a.state.Spot2Occupied {
		return Spot2
	}

	if a.recognizeSpot1Departure && a.state.Spot1Occupied {
		return Spot1
	}

	return NoSpot
}

func (a *Arbiter) openGate(now timing.VTimeInMs, what string) {
	a.gate.SetPosition(device.GateOpen)
	a.state.GateOpen = true
	a.state.GateOpenedAt = now
	a.startGateCycle(what)
}
