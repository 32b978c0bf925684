package lot

import (
	"github.com/rs/xid"

	"github.com/sarchlab/parkinglot/hooking"
	"github.com/sarchlab/parkinglot/timing"
	"github.com/sarchlab/parkinglot/tracing"
)

// Hook positions of the lot components. The hook item is always a
// Transition.
var (
	HookPosSpotOccupied  = &hooking.HookPos{Name: "SpotOccupied"}
	HookPosSpotVacated   = &hooking.HookPos{Name: "SpotVacated"}
	HookPosGateOpened    = &hooking.HookPos{Name: "GateOpened"}
	HookPosGateClosed    = &hooking.HookPos{Name: "GateClosed"}
	HookPosCountDesynced = &hooking.HookPos{Name: "CountDesynced"}
)

// Task kinds traced by the lot.
const (
	TaskKindGateCycle = "gate_cycle"
	TaskKindStay      = "stay"
)

// A Transition describes one change of the lot state.
type Transition struct {
	Time     timing.VTimeInMs
	Where    string
	Spot     Spot
	Message  string
	Snapshot Snapshot
}

// Component is a named, hookable part of the lot that is updated from the
// control loop.
type Component interface {
	tracing.NamedHookable

	// Update runs the component once at now and reports whether it changed
	// the state.
	Update(now timing.VTimeInMs) bool
}

// componentBase provides the naming, hook and tracing plumbing of the
// components.
type componentBase struct {
	*hooking.HookableBase

	name  string
	state *State
}

func newComponentBase(name string, state *State) componentBase {
	if state == nil {
		panic("state is not set")
	}

	return componentBase{
		HookableBase: hooking.NewHookableBase(),
		name:         name,
		state:        state,
	}
}

// Name returns the name of the component.
func (c *componentBase) Name() string {
	return c.name
}

func (c *componentBase) emit(
	pos *hooking.HookPos,
	now timing.VTimeInMs,
	spot Spot,
	message string,
) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    pos,
		Item: Transition{
			Time:     now,
			Where:    c.name,
			Spot:     spot,
			Message:  message,
			Snapshot: c.state.Snapshot(),
		},
	})
}

func (c *componentBase) startStay(spot Spot, what string) {
	id := xid.New().String()
	c.state.stayIDs[spot] = id

	tracing.StartTask(id, "", c, TaskKindStay, spot.String(), what)
}

func (c *componentBase) endStay(spot Spot) {
	id := c.state.stayIDs[spot]
	if id == "" {
		return
	}

	c.state.stayIDs[spot] = ""
	tracing.EndTask(id, c)
}

func (c *componentBase) startGateCycle(what string) {
	id := xid.New().String()
	c.state.gateCycleID = id

	tracing.StartTask(id, "", c, TaskKindGateCycle, what, nil)
}

func (c *componentBase) endGateCycle() {
	id := c.state.gateCycleID
	if id == "" {
		return
	}

	c.state.gateCycleID = ""
	tracing.EndTask(id, c)
}
