package lot

import (
	"github.com/sarchlab/parkinglot/device"
	"github.com/sarchlab/parkinglot/timing"
)

// Builder can build lot Controllers.
type Builder struct {
	clock    timing.TimeTeller
	ranger   Ranger
	presence device.PresenceSensor
	gate     device.GateActuator
	display  device.Display
	cfg      Config
}

// MakeBuilder creates a Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{cfg: DefaultConfig()}
}

// WithClock sets the clock all the cadences and windows are measured on.
func (b Builder) WithClock(clock timing.TimeTeller) Builder {
	b.clock = clock
	return b
}

// WithRanger sets the distance sampler of spot 1.
func (b Builder) WithRanger(r Ranger) Builder {
	b.ranger = r
	return b
}

// WithPresenceSensor sets the sensor at the gate.
func (b Builder) WithPresenceSensor(p device.PresenceSensor) Builder {
	b.presence = p
	return b
}

// WithGateActuator sets the gate actuator.
func (b Builder) WithGateActuator(g device.GateActuator) Builder {
	b.gate = g
	return b
}

// WithDisplay sets the status display.
func (b Builder) WithDisplay(d device.Display) Builder {
	b.display = d
	return b
}

// WithConfig replaces the whole configuration.
func (b Builder) WithConfig(cfg Config) Builder {
	b.cfg = cfg
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.clock == nil {
		panic("clock is not set")
	}

	if timing.Ms(b.cfg.SampleInterval) == 0 {
		panic("sample interval must be at least 1ms")
	}

	if timing.Ms(b.cfg.ReportInterval) == 0 {
		panic("report interval must be at least 1ms")
	}

	if timing.Ms(b.cfg.DwellTime) == 0 {
		panic("dwell time must be at least 1ms")
	}

	if b.cfg.DebounceWindow < 0 {
		panic("debounce window cannot be negative")
	}
}

// Build creates a Controller whose components are named after name.
func (b Builder) Build(name string) *Controller {
	b.parametersMustBeValid()

	state := NewState()

	tracker := NewTracker(name+".Tracker", state, b.ranger, b.cfg.ThresholdCM)
	arbiter := NewArbiter(name+".Arbiter", state, b.presence, b.gate, b.cfg)
	gateTimer := NewGateTimer(
		name+".GateTimer", state, b.gate, timing.Ms(b.cfg.DwellTime))
	reporter := NewStatusReporter(name+".Reporter", state, b.display)

	return &Controller{
		name:          name,
		clock:         b.clock,
		state:         state,
		tracker:       tracker,
		arbiter:       arbiter,
		gateTimer:     gateTimer,
		reporter:      reporter,
		sampleCadence: timing.NewCadence(timing.Ms(b.cfg.SampleInterval)),
		reportCadence: timing.NewCadence(timing.Ms(b.cfg.ReportInterval)),
	}
}
