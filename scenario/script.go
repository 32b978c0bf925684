// Package scenario replays timed device actions against a lot controller on a
// manual clock.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sarchlab/parkinglot/config"
)

// ErrInvalidStep is wrapped by every error caused by a malformed step.
var ErrInvalidStep = errors.New("invalid step")

// Action is what a step does.
type Action string

// Supported actions.
const (
	// ActionCar places a car DistanceCM away from the spot 1 sensor.
	ActionCar Action = "car"
	// ActionClear removes the car in front of the spot 1 sensor.
	ActionClear Action = "clear"
	// ActionPress activates the presence sensor at the gate.
	ActionPress Action = "press"
	// ActionRelease deactivates the presence sensor.
	ActionRelease Action = "release"
	// ActionPulse presses and releases the presence sensor after Hold.
	ActionPulse Action = "pulse"
	// ActionExpect checks the lot status.
	ActionExpect Action = "expect"
)

// DefaultHold is how long a pulse keeps the presence sensor active.
const DefaultHold = 100 * time.Millisecond

// A Step is one timed action.
type Step struct {
	At         config.Duration `toml:"at"`
	Action     Action          `toml:"action"`
	DistanceCM float64         `toml:"distance_cm"`
	Hold       config.Duration `toml:"hold"`

	Available *int   `toml:"available"`
	Gate      string `toml:"gate"`
	Spot1     string `toml:"spot1"`
	Spot2     string `toml:"spot2"`
}

// Validate checks that the step can be played.
func (s Step) Validate() error {
	if s.At.Duration < 0 {
		return fmt.Errorf("%w: negative time %s", ErrInvalidStep, s.At)
	}

	switch s.Action {
	case ActionCar:
		if s.DistanceCM <= 0 {
			return fmt.Errorf("%w: car needs a positive distance_cm",
				ErrInvalidStep)
		}
	case ActionClear, ActionPress, ActionRelease:
	case ActionPulse:
		if s.Hold.Duration < 0 {
			return fmt.Errorf("%w: negative hold", ErrInvalidStep)
		}
	case ActionExpect:
		if s.Available == nil && s.Gate == "" && s.Spot1 == "" && s.Spot2 == "" {
			return fmt.Errorf("%w: expect checks nothing", ErrInvalidStep)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidStep, s.Action)
	}

	return nil
}

func (s Step) String() string {
	switch s.Action {
	case ActionCar:
		return fmt.Sprintf("%s car %g", s.At, s.DistanceCM)
	default:
		return fmt.Sprintf("%s %s", s.At, s.Action)
	}
}

// A Script is a named list of steps.
type Script struct {
	Name string `toml:"name"`

	// Resolution is the interval between two ticks of the controller.
	Resolution config.Duration `toml:"resolution"`

	// Tail is how long the controller keeps running after the last step.
	Tail config.Duration `toml:"tail"`

	Steps []Step `toml:"steps"`
}

// Validate checks every step of the script.
func (s Script) Validate() error {
	if s.Resolution.Duration < time.Millisecond {
		return fmt.Errorf("%w: resolution must be at least 1ms",
			ErrInvalidStep)
	}

	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	return nil
}

// sorted returns the steps ordered by time, with pulses split into a press
// and a release.
func (s Script) sorted() []Step {
	steps := make([]Step, 0, len(s.Steps))

	for _, step := range s.Steps {
		if step.Action != ActionPulse {
			steps = append(steps, step)
			continue
		}

		hold := step.Hold.Duration
		if hold == 0 {
			hold = DefaultHold
		}

		steps = append(steps,
			Step{At: step.At, Action: ActionPress},
			Step{At: config.D(step.At.Duration + hold), Action: ActionRelease},
		)
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].At.Duration < steps[j].At.Duration
	})

	return steps
}

func (s *Script) applyDefaults() {
	if s.Resolution.Duration == 0 {
		s.Resolution = config.D(10 * time.Millisecond)
	}

	if s.Tail.Duration == 0 {
		s.Tail = config.D(time.Second)
	}
}

// Parse reads a script written in TOML.
func Parse(data string) (Script, error) {
	var s Script

	md, err := toml.Decode(data, &s)
	if err != nil {
		return s, fmt.Errorf("parsing script: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("%w: unknown key %s",
			ErrInvalidStep, undecoded[0])
	}

	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

// Load reads a script from a TOML file.
func Load(path string) (Script, error) {
	var s Script

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("reading script %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("%w: unknown key %s in %s",
			ErrInvalidStep, undecoded[0], path)
	}

	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("script %s: %w", path, err)
	}

	return s, nil
}

//go:embed demo.toml
var demoScript string

// Demo returns the built-in script that fills and empties the lot.
func Demo() Script {
	s, err := Parse(demoScript)
	if err != nil {
		panic(err)
	}

	return s
}

// ParseCommand reads one interactive command such as "car 8" or "pulse". The
// step time is left at zero.
func ParseCommand(line string) (Step, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Step{}, fmt.Errorf("%w: empty command", ErrInvalidStep)
	}

	step := Step{Action: Action(strings.ToLower(fields[0]))}

	switch step.Action {
	case ActionCar:
		if len(fields) != 2 {
			return step, fmt.Errorf("%w: usage: car <cm>", ErrInvalidStep)
		}

		cm, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return step, fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}

		step.DistanceCM = cm
	case ActionExpect:
		return step, fmt.Errorf("%w: expect is only valid in scripts",
			ErrInvalidStep)
	default:
		if len(fields) != 1 {
			return step, fmt.Errorf("%w: %s takes no argument",
				ErrInvalidStep, step.Action)
		}
	}

	if err := step.Validate(); err != nil {
		return step, err
	}

	return step, nil
}
