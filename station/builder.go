package station

import (
	"fmt"
	"log"

	"github.com/rs/xid"

	"github.com/sarchlab/parkinglot/config"
	"github.com/sarchlab/parkinglot/datarecording"
	"github.com/sarchlab/parkinglot/device"
	"github.com/sarchlab/parkinglot/lot"
	"github.com/sarchlab/parkinglot/ranging"
	"github.com/sarchlab/parkinglot/timing"
	"github.com/sarchlab/parkinglot/tracing"
)

// Builder can be used to build a station.
type Builder struct {
	cfg        config.Config
	clock      timing.TimeTeller
	transducer device.Transducer
	presence   device.PresenceSensor
	gate       device.GateActuator
	display    device.Display
	logger     *log.Logger
	verbose    bool
}

// MakeBuilder creates a new builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		cfg: config.Default(),
	}
}

// WithConfig sets the configuration.
func (b Builder) WithConfig(cfg config.Config) Builder {
	b.cfg = cfg
	return b
}

// WithClock sets the clock the controller runs on.
func (b Builder) WithClock(clock timing.TimeTeller) Builder {
	b.clock = clock
	return b
}

// WithTransducer sets the ranging transducer of spot 1.
func (b Builder) WithTransducer(t device.Transducer) Builder {
	b.transducer = t
	return b
}

// WithPresenceSensor sets the presence sensor at the gate.
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

// WithLogger makes the station log every transition into logger.
func (b Builder) WithLogger(logger *log.Logger) Builder {
	b.logger = logger
	return b
}

// WithVerbose adds the lot status to transition logs and logs the ticks that
// changed the state.
func (b Builder) WithVerbose() Builder {
	b.verbose = true
	return b
}

// WithRecording stores the run into path + ".sqlite3".
func (b Builder) WithRecording(path string) Builder {
	b.cfg.Recording.Path = path
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.clock == nil {
		panic("clock is not set")
	}

	if b.transducer == nil {
		panic("transducer is not set")
	}

	if b.presence == nil {
		panic("presence sensor is not set")
	}

	if b.gate == nil {
		panic("gate actuator is not set")
	}

	if b.display == nil {
		panic("display is not set")
	}

	if b.verbose && b.logger == nil {
		panic("verbose needs a logger")
	}
}

// Build creates the station. The gate is commanded closed so that the
// actuator matches the state of the controller.
func (b Builder) Build(name string) (*Station, error) {
	b.parametersMustBeValid()

	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Station{
		id:            xid.New().String(),
		name:          name,
		clock:         b.clock,
		compNameIndex: make(map[string]int),
	}

	s.sampler = ranging.MakeBuilder().
		WithTransducer(b.transducer).
		WithTimeout(b.cfg.Ranging.Timeout.Duration).
		WithMaxRange(b.cfg.Ranging.MaxRangeCM).
		Build()

	b.gate.SetPosition(device.GateClosed)

	s.controller = lot.MakeBuilder().
		WithClock(b.clock).
		WithRanger(s.sampler).
		WithPresenceSensor(b.presence).
		WithGateActuator(b.gate).
		WithDisplay(b.display).
		WithConfig(b.cfg.ToLot()).
		Build(name)

	for _, c := range s.controller.Components() {
		s.registerComponent(c)
	}

	s.loop = timing.NewLoop(s.controller).
		WithPacing(b.cfg.Loop.Pacing.Duration)

	b.attachLoggers(s)
	s.attachDwellTracers()

	if b.cfg.Recording.Path != "" {
		if err := b.attachRecorder(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (b Builder) attachLoggers(s *Station) {
	if b.logger == nil {
		return
	}

	transitionLogger := lot.NewTransitionLogger(b.logger)
	if b.verbose {
		transitionLogger.WithSnapshot()
		s.loop.AcceptHook(timing.NewTickLogger(b.logger, b.clock))
	}

	s.controller.AcceptHookOnComponents(transitionLogger)
}

func (b Builder) attachRecorder(s *Station) error {
	recorder, err := datarecording.New(b.cfg.Recording.Path)
	if err != nil {
		return fmt.Errorf("station %s: %w", s.name, err)
	}

	s.dataRecorder = recorder
	s.dbTracer = tracing.NewDBTracer(b.clock, recorder)

	for _, c := range s.components {
		tracing.CollectTrace(c, s.dbTracer)
	}

	s.execRecorder = datarecording.NewExecRecorder(recorder)
	s.execRecorder.Start()
	s.execRecorder.Note("Station", s.name)
	s.execRecorder.Note("Run ID", s.id)
	s.execRecorder.Note("Threshold",
		fmt.Sprintf("%gcm", b.cfg.Lot.ThresholdCM))
	s.execRecorder.Note("Dwell Time", b.cfg.Lot.DwellTime.String())
	s.execRecorder.Note("Strict Arrival Accounting",
		fmt.Sprint(b.cfg.Lot.StrictArrivalAccounting))
	s.execRecorder.Note("Recognize Spot 1 Departure",
		fmt.Sprint(b.cfg.Lot.RecognizeSpot1Departure))

	return nil
}
