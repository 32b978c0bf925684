// Package lot is the control logic of a gated two-space parking lot. It fuses
// three differently timed inputs, a periodic distance sample, a debounced
// presence edge and a self-expiring gate-open window, into one occupancy and
// gate state without ever blocking the loop that drives it.
package lot

import (
	"fmt"

	"github.com/sarchlab/parkinglot/device"
	"github.com/sarchlab/parkinglot/timing"
)

// TotalSpots is the capacity of the lot.
const TotalSpots = 2

// Spot identifies a parking spot.
type Spot int

// Spots of the lot. NoSpot is used when a transition does not concern a spot.
const (
	NoSpot Spot = iota
	Spot1
	Spot2
)

func (s Spot) String() string {
	if s == NoSpot {
		return "no spot"
	}

	return fmt.Sprintf("Spot %d", int(s))
}

// State is the single record shared by all the components of the lot. It is
// owned by the Controller and only mutated from its loop.
//
// Spot 1 occupancy follows the ranging sensor, while spot 2 occupancy only
// follows arrivals and departures through the gate.
type State struct {
	TotalSpots     int
	AvailableCount int

	Spot1Occupied bool
	Spot2Occupied bool

	GateOpen     bool
	GateOpenedAt timing.VTimeInMs

	LastPresenceEdgeAt timing.VTimeInMs

	gateCycleID string
	stayIDs     [TotalSpots + 1]string
}

// NewState creates the state of an empty lot with the gate closed.
func NewState() *State {
	return &State{
		TotalSpots:     TotalSpots,
		AvailableCount: TotalSpots,
	}
}

// takeSpace decrements the available count, never below zero.
func (s *State) takeSpace() {
	if s.AvailableCount > 0 {
		s.AvailableCount--
	}
}

// releaseSpace increments the available count, never above the capacity.
func (s *State) releaseSpace() {
	if s.AvailableCount < s.TotalSpots {
		s.AvailableCount++
	}
}

// Occupied tells if a spot is occupied.
func (s *State) Occupied(spot Spot) bool {
	switch spot {
	case Spot1:
		return s.Spot1Occupied
	case Spot2:
		return s.Spot2Occupied
	default:
		return false
	}
}

func (s *State) setOccupied(spot Spot, occupied bool) {
	switch spot {
	case Spot1:
		s.Spot1Occupied = occupied
	case Spot2:
		s.Spot2Occupied = occupied
	default:
		panic(fmt.Sprintf("cannot set occupancy of %s", spot))
	}
}

// firstFreeSpot returns the first free spot in priority order, or NoSpot.
func (s *State) firstFreeSpot() Spot {
	switch {
	case !s.Spot1Occupied:
		return Spot1
	case !s.Spot2Occupied:
		return Spot2
	default:
		return NoSpot
	}
}

// Snapshot copies the parts of the state that are shown and logged.
func (s *State) Snapshot() Snapshot {
	gate := device.GateClosed
	if s.GateOpen {
		gate = device.GateOpen
	}

	return Snapshot{
		Available: s.AvailableCount,
		Total:     s.TotalSpots,
		Spot1:     device.SpotStateOf(s.Spot1Occupied),
		Spot2:     device.SpotStateOf(s.Spot2Occupied),
		Gate:      gate,
	}
}

// Snapshot is an immutable copy of the lot status.
type Snapshot struct {
	Available int
	Total     int
	Spot1     device.SpotState
	Spot2     device.SpotState
	Gate      device.GatePosition
}

func (s Snapshot) String() string {
	return fmt.Sprintf("available %d/%d, S1 %s, S2 %s, gate %s",
		s.Available, s.Total, s.Spot1, s.Spot2, s.Gate)
}
