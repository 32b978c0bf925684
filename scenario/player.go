package scenario

import (
	"fmt"
	"strings"

	"github.com/sarchlab/parkinglot/device/virtual"
	"github.com/sarchlab/parkinglot/lot"
	"github.com/sarchlab/parkinglot/timing"
)

// A Snapshotter tells the lot status.
type Snapshotter interface {
	Snapshot() lot.Snapshot
}

// Devices are the inputs a script can act on.
type Devices struct {
	Transducer *virtual.Transducer
	Presence   *virtual.Presence
}

// Apply performs a device action. Expect steps are ignored.
func (d Devices) Apply(step Step) {
	switch step.Action {
	case ActionCar:
		d.Transducer.SetDistance(step.DistanceCM)
	case ActionClear:
		d.Transducer.Clear()
	case ActionPress:
		d.Presence.Press()
	case ActionRelease:
		d.Presence.Release()
	case ActionPulse:
		panic("pulse must be split before it is applied")
	}
}

// A Failure is an expectation that did not hold.
type Failure struct {
	Step Step
	Got  lot.Snapshot
	What string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s (got %s)", f.Step.At, f.What, f.Got)
}

// Result summarizes a played script.
type Result struct {
	Ticks    uint64
	End      timing.VTimeInMs
	Failures []Failure
}

// Passed tells if every expectation held.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Player plays a script by moving a manual clock one resolution step at a
// time and ticking the loop after each move.
type Player struct {
	script  Script
	clock   *timing.ManualClock
	loop    *timing.Loop
	devices Devices
	status  Snapshotter
}

// NewPlayer creates a Player.
func NewPlayer(
	script Script,
	clock *timing.ManualClock,
	loop *timing.Loop,
	devices Devices,
	status Snapshotter,
) *Player {
	if devices.Transducer == nil || devices.Presence == nil {
		panic("devices are not set")
	}

	script.applyDefaults()

	return &Player{
		script:  script,
		clock:   clock,
		loop:    loop,
		devices: devices,
		status:  status,
	}
}

// Play runs the script to its end. Step times are measured from the time the
// clock reads when Play is called.
func (p *Player) Play() Result {
	steps := p.script.sorted()
	start := p.clock.Now()
	resolution := timing.Ms(p.script.Resolution.Duration)

	end := start + timing.Ms(p.script.Tail.Duration)
	if len(steps) > 0 {
		end += timing.Ms(steps[len(steps)-1].At.Duration)
	}

	result := Result{}
	next := 0

	for now := start; now <= end; now = p.clock.Advance(resolution) {
		due := next
		for due < len(steps) && start+timing.Ms(steps[due].At.Duration) <= now {
			due++
		}

		for _, step := range steps[next:due] {
			p.devices.Apply(step)
		}

		p.loop.RunTicks(1)
		result.Ticks++

		for _, step := range steps[next:due] {
			if step.Action == ActionExpect {
				result.Failures = append(result.Failures, p.check(step)...)
			}
		}

		next = due
		result.End = now
	}

	return result
}

func (p *Player) check(step Step) []Failure {
	got := p.status.Snapshot()
	failures := []Failure{}

	fail := func(format string, args ...any) {
		failures = append(failures, Failure{
			Step: step,
			Got:  got,
			What: fmt.Sprintf(format, args...),
		})
	}

	if step.Available != nil && got.Available != *step.Available {
		fail("expected %d available", *step.Available)
	}

	if step.Gate != "" && !strings.EqualFold(got.Gate.String(), step.Gate) {
		fail("expected gate %s", step.Gate)
	}

	if step.Spot1 != "" && !strings.EqualFold(got.Spot1.String(), step.Spot1) {
		fail("expected spot 1 %s", step.Spot1)
	}

	if step.Spot2 != "" && !strings.EqualFold(got.Spot2.String(), step.Spot2) {
		fail("expected spot 2 %s", step.Spot2)
	}

	return failures
}
