// Package virtual provides in-memory lot hardware. The devices are safe to
// poke from another goroutine while a controller polls them.
package virtual

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/sarchlab/parkinglot/device"
	"github.com/sarchlab/parkinglot/ranging"
)

// Transducer is an ultrasonic transducer facing an object at a settable
// distance. It answers instantly.
type Transducer struct {
	distanceBits atomic.Uint64
	triggers     atomic.Uint64
}

// NewTransducer creates a Transducer that sees nothing.
func NewTransducer() *Transducer {
	t := &Transducer{}
	t.Clear()

	return t
}

// SetDistance places an object cm away from the transducer.
func (t *Transducer) SetDistance(cm float64) {
	t.distanceBits.Store(math.Float64bits(cm))
}

// Clear removes the object, so that no echo comes back.
func (t *Transducer) Clear() {
	t.SetDistance(math.Inf(1))
}

// Distance returns the distance of the object, or +Inf if there is none.
func (t *Transducer) Distance() float64 {
	return math.Float64frombits(t.distanceBits.Load())
}

// Trigger sends a pulse.
func (t *Transducer) Trigger() {
	t.triggers.Add(1)
}

// Triggers returns how many pulses were sent.
func (t *Transducer) Triggers() uint64 {
	return t.triggers.Load()
}

// WaitForEcho returns the echo duration of the object. There is no echo when
// there is no object or when it is too far to answer within timeout.
func (t *Transducer) WaitForEcho(timeout time.Duration) (time.Duration, bool) {
	cm := t.Distance()
	if math.IsInf(cm, 1) {
		return 0, false
	}

	echo := ranging.CMToEcho(cm)
	if echo > timeout {
		return 0, false
	}

	return echo, true
}

// Presence is an active-low presence input with a pull-up. The pin reads
// high until a vehicle pulls it low.
type Presence struct {
	low atomic.Bool
}

// NewPresence creates a Presence input that reads high.
func NewPresence() *Presence {
	return &Presence{}
}

// Press pulls the pin low.
func (p *Presence) Press() {
	p.low.Store(true)
}

// Release lets the pin float back high.
func (p *Presence) Release() {
	p.low.Store(false)
}

// Read returns the logical level of the pin.
func (p *Presence) Read() device.Level {
	return device.ActiveLow(!p.low.Load())
}

// Servo angles of the gate positions.
const (
	OpenAngle   = 0
	ClosedAngle = 90
)

// Gate is a servo driven gate arm.
type Gate struct {
	position atomic.Int32
	commands atomic.Uint64
}

// NewGate creates a Gate at the closed angle.
func NewGate() *Gate {
	g := &Gate{}
	g.position.Store(int32(device.GateClosed))

	return g
}

// SetPosition moves the arm.
func (g *Gate) SetPosition(pos device.GatePosition) {
	g.position.Store(int32(pos))
	g.commands.Add(1)
}

// Position returns the last commanded position.
func (g *Gate) Position() device.GatePosition {
	return device.GatePosition(g.position.Load())
}

// Angle returns the servo angle in degrees.
func (g *Gate) Angle() int {
	if g.Position() == device.GateOpen {
		return OpenAngle
	}

	return ClosedAngle
}

// Commands returns how many times the gate was commanded.
func (g *Gate) Commands() uint64 {
	return g.commands.Load()
}
