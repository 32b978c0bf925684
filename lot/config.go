package lot

import "time"

// Config holds the timing and policy parameters of the lot.
type Config struct {
	// SampleInterval is the cadence of the occupancy tracker.
	SampleInterval time.Duration

	// ReportInterval is the cadence of the status reporter.
	ReportInterval time.Duration

	// DebounceWindow is the minimum time between two accepted presence edges.
	DebounceWindow time.Duration

	// DwellTime is how long the gate stays open before it closes by itself.
	DwellTime time.Duration

	// ThresholdCM is the distance under which spot 1 is occupied.
	ThresholdCM float64

	// StrictArrivalAccounting keeps the available count untouched when an
	// arriving vehicle finds no free spot flag. By default the count is
	// decremented anyway, which lets the count drift from the flags until
	// a later vacancy.
	StrictArrivalAccounting bool

	// RecognizeSpot1Departure lets a presence edge at a full lot release
	// spot 1 when spot 2 is already free. By default only spot 2 can be
	// released through the gate, and spot 1 only frees up through a
	// distance reading.
	RecognizeSpot1Departure bool
}

// DefaultConfig returns the parameters the lot hardware was tuned for.
func DefaultConfig() Config {
	return Config{
		SampleInterval: 100 * time.Millisecond,
		ReportInterval: 500 * time.Millisecond,
		DebounceWindow: 500 * time.Millisecond,
		DwellTime:      3000 * time.Millisecond,
		ThresholdCM:    15,
	}
}
