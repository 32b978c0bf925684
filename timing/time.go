// Package timing provides the time base of the lot controller: a monotonic
// millisecond timeline, clocks that tell the time on it, cadences that decide
// when periodic work is due, and the loop that keeps ticking the controller.
package timing

import (
	"fmt"
	"time"
)

// VTimeInMs is a point on (or a span of) the controller timeline, in
// milliseconds since the clock started.
type VTimeInMs uint64

// Ms converts a duration to a span in milliseconds. Sub-millisecond parts are
// truncated and negative durations become zero.
func Ms(d time.Duration) VTimeInMs {
	if d <= 0 {
		return 0
	}

	return VTimeInMs(d / time.Millisecond)
}

// Since returns the span between earlier and t. A clock never runs backwards,
// but if earlier is after t the span is zero rather than a wrapped value.
func (t VTimeInMs) Since(earlier VTimeInMs) VTimeInMs {
	if earlier > t {
		return 0
	}

	return t - earlier
}

// Duration converts the span to a time.Duration.
func (t VTimeInMs) Duration() time.Duration {
	return time.Duration(t) * time.Millisecond
}

func (t VTimeInMs) String() string {
	return fmt.Sprintf("%dms", uint64(t))
}
