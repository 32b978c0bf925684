package lot

import (
	"github.com/sarchlab/parkinglot/device"
	"github.com/sarchlab/parkinglot/timing"
)

// StatusReporter pushes the lot status to the display. It only reads the
// state.
type StatusReporter struct {
	componentBase

	display device.Display
}

// NewStatusReporter creates a StatusReporter.
func NewStatusReporter(
	name string,
	state *State,
	display device.Display,
) *StatusReporter {
	if display == nil {
		panic("display is not set")
	}

	return &StatusReporter{
		componentBase: newComponentBase(name, state),
		display:       display,
	}
}

// Update renders the current status. It never changes the state, so it
// always returns false.
func (r *StatusReporter) Update(_ timing.VTimeInMs) bool {
	s := r.state.Snapshot()
	r.display.Render(s.Available, s.Total, s.Spot1, s.Spot2)

	return false
}
