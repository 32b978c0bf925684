// Package station assembles a running parking lot: the devices, the
// controller, the loop that drives it and everything that watches it.
package station

import (
	"context"
	"fmt"

	"github.com/sarchlab/parkinglot/datarecording"
	"github.com/sarchlab/parkinglot/lot"
	"github.com/sarchlab/parkinglot/ranging"
	"github.com/sarchlab/parkinglot/timing"
	"github.com/sarchlab/parkinglot/tracing"
)

// A Station is a lot controller with its loop and observers.
type Station struct {
	id    string
	name  string
	clock timing.TimeTeller

	sampler    *ranging.Sampler
	controller *lot.Controller
	loop       *timing.Loop

	gateCycles *tracing.DwellTracer
	stays      *tracing.DwellTracer

	dataRecorder datarecording.DataRecorder
	dbTracer     *tracing.DBTracer
	execRecorder *datarecording.ExecRecorder

	components    []lot.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the run.
func (s *Station) ID() string {
	return s.id
}

// Name returns the name of the station.
func (s *Station) Name() string {
	return s.name
}

// Controller returns the lot controller.
func (s *Station) Controller() *lot.Controller {
	return s.controller
}

// Loop returns the loop that ticks the controller.
func (s *Station) Loop() *timing.Loop {
	return s.loop
}

// Snapshot returns the current status of the lot.
func (s *Station) Snapshot() lot.Snapshot {
	return s.controller.Snapshot()
}

// Components returns the components of the controller.
func (s *Station) Components() []lot.Component {
	return s.components
}

func (s *Station) registerComponent(c lot.Component) {
	name := c.Name()
	if _, found := s.compNameIndex[name]; found {
		panic("component " + name + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[name] = len(s.components) - 1
}

// GetComponentByName returns the component with the given name, or nil.
func (s *Station) GetComponentByName(name string) lot.Component {
	i, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[i]
}

// GetDataRecorder returns the data recorder, or nil when the run is not
// recorded.
func (s *Station) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

func (s *Station) attachDwellTracers() {
	s.gateCycles = tracing.NewDwellTracer(
		s.clock, tracing.KindIs(lot.TaskKindGateCycle))
	s.stays = tracing.NewDwellTracer(s.clock, tracing.KindIs(lot.TaskKindStay))

	for _, c := range s.components {
		tracing.CollectTrace(c, s.gateCycles)
		tracing.CollectTrace(c, s.stays)
	}
}

// Run ticks the controller until ctx is cancelled.
func (s *Station) Run(ctx context.Context) error {
	return s.loop.Run(ctx)
}

// Stats summarizes the gate cycles and the stays that ended so far.
type Stats struct {
	GateCycles      uint64
	AverageGateOpen timing.VTimeInMs
	Stays           uint64
	AverageStay     timing.VTimeInMs
	LongestStay     timing.VTimeInMs
}

func (st Stats) String() string {
	return fmt.Sprintf(
		"%d gate cycles (average %s), %d stays (average %s, longest %s)",
		st.GateCycles, st.AverageGateOpen,
		st.Stays, st.AverageStay, st.LongestStay)
}

// Stats returns the summary of the run.
func (s *Station) Stats() Stats {
	return Stats{
		GateCycles:      s.gateCycles.TotalCount(),
		AverageGateOpen: s.gateCycles.AverageTime(),
		Stays:           s.stays.TotalCount(),
		AverageStay:     s.stays.AverageTime(),
		LongestStay:     s.stays.LongestTime(),
	}
}

// Terminate writes what is left of the recording and closes it.
func (s *Station) Terminate() error {
	if s.dataRecorder == nil {
		return nil
	}

	s.dbTracer.Terminate()
	s.execRecorder.Note("Summary", s.Stats().String())
	s.execRecorder.End()

	if err := s.dataRecorder.Close(); err != nil {
		return fmt.Errorf("closing recording: %w", err)
	}

	s.dataRecorder = nil

	return nil
}
