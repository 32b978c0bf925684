// Package device defines the contracts of the hardware around the lot
// controller. The controller only talks to these interfaces; real drivers and
// the virtual devices in device/virtual implement them.
package device

import "time"

// Level is the logical level reported by the presence sensor.
type Level int

// Presence levels.
const (
	Inactive Level = iota
	Active
)

func (l Level) String() string {
	if l == Active {
		return "active"
	}

	return "inactive"
}

// ActiveLow interprets a raw pin reading of a sensor that pulls its output low
// when triggered, like the IR obstacle sensor at the lot entrance.
func ActiveLow(raw bool) Level {
	if raw {
		return Inactive
	}

	return Active
}

// GatePosition is a position the gate actuator can be commanded to.
type GatePosition int

// Gate positions.
const (
	GateClosed GatePosition = iota
	GateOpen
)

func (p GatePosition) String() string {
	if p == GateOpen {
		return "OPEN"
	}

	return "CLOSED"
}

// SpotState is how a parking spot is shown on the display.
type SpotState int

// Spot states.
const (
	Free SpotState = iota
	Full
)

// SpotStateOf converts an occupancy flag to a SpotState.
func SpotStateOf(occupied bool) SpotState {
	if occupied {
		return Full
	}

	return Free
}

func (s SpotState) String() string {
	if s == Full {
		return "Full"
	}

	return "Free"
}

// Transducer is an ultrasonic ranging transducer. Trigger sends a pulse;
// WaitForEcho waits at most timeout for the echo and returns how long the
// echo pulse lasted. It returns false if no echo came back in time.
type Transducer interface {
	Trigger()
	WaitForEcho(timeout time.Duration) (time.Duration, bool)
}

// PresenceSensor detects a vehicle at the gate.
type PresenceSensor interface {
	Read() Level
}

// GateActuator moves the gate. Commands are fire-and-forget.
type GateActuator interface {
	SetPosition(pos GatePosition)
}

// Display shows the lot status. Each call replaces what was shown before.
type Display interface {
	Render(available, total int, spot1, spot2 SpotState)
}
