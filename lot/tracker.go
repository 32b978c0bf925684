package lot

import (
	"github.com/sarchlab/parkinglot/timing"
)

// A Ranger returns one distance sample in centimeters per call.
type Ranger interface {
	Sample() float64
}

// Tracker follows the occupancy of spot 1 through the ranging sensor. It is
// edge triggered: only a sample that disagrees with the current occupancy
// changes anything.
type Tracker struct {
	componentBase

	ranger      Ranger
	thresholdCM float64
}

// NewTracker creates a Tracker.
func NewTracker(
	name string,
	state *State,
	ranger Ranger,
	thresholdCM float64,
) *Tracker {
	if ranger == nil {
		panic("ranger is not set")
	}

	if thresholdCM <= 0 {
		panic("threshold must be positive")
	}

	return &Tracker{
		componentBase: newComponentBase(name, state),
		ranger:        ranger,
		thresholdCM:   thresholdCM,
	}
}

// Update takes one sample and applies it to spot 1.
func (t *Tracker) Update(now timing.VTimeInMs) bool {
	distance := t.ranger.Sample()
	objectPresent := distance < t.thresholdCM

	switch {
	case objectPresent && !t.state.Spot1Occupied:
		t.state.Spot1Occupied = true
		t.state.takeSpace()
		t.startStay(Spot1, "ranging")
		t.emit(HookPosSpotOccupied, now, Spot1, "Car detected in Spot 1")

		return true
	case !objectPresent && t.state.Spot1Occupied:
		t.state.Spot1Occupied = false
		t.state.releaseSpace()
		t.endStay(Spot1)
		t.emit(HookPosSpotVacated, now, Spot1, "Spot 1 is now vacant")

		return true
	default:
		return false
	}
}
