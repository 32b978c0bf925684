package timing

// A Ticker is an object that updates states with ticks. Tick reports whether
// any state changed during the tick.
type Ticker interface {
	Tick() bool
}
