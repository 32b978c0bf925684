// Package ranging turns an ultrasonic transducer into a distance sampler that
// never blocks longer than its timeout and never fails.
package ranging

import (
	"time"

	"github.com/sarchlab/parkinglot/device"
)

// SpeedOfSoundCMPerUs is the speed of sound in air, in centimeters per
// microsecond.
const SpeedOfSoundCMPerUs = 0.0343

// Sampler takes one distance sample per call.
type Sampler struct {
	transducer device.Transducer
	timeout    time.Duration
	maxRangeCM float64
}

// Sample triggers the transducer and returns the distance in centimeters. A
// missing echo, a non-positive distance or a distance beyond the maximum range
// all read as the maximum range, which means nothing is in front of the
// sensor.
func (s *Sampler) Sample() float64 {
	s.transducer.Trigger()

	echo, ok := s.transducer.WaitForEcho(s.timeout)
	if !ok {
		return s.maxRangeCM
	}

	distance := EchoToCM(echo)
	if distance <= 0 || distance > s.maxRangeCM {
		return s.maxRangeCM
	}

	return distance
}

// MaxRangeCM returns the value Sample reports when nothing is detected.
func (s *Sampler) MaxRangeCM() float64 {
	return s.maxRangeCM
}

// Timeout returns the longest time Sample waits for an echo.
func (s *Sampler) Timeout() time.Duration {
	return s.timeout
}

// EchoToCM converts the duration of an echo pulse to a distance. The pulse
// covers the way to the object and back, hence the halving.
func EchoToCM(echo time.Duration) float64 {
	us := float64(echo) / float64(time.Microsecond)

	return us * SpeedOfSoundCMPerUs / 2
}

// CMToEcho is the inverse of EchoToCM.
func CMToEcho(cm float64) time.Duration {
	us := cm * 2 / SpeedOfSoundCMPerUs

	return time.Duration(us * float64(time.Microsecond))
}
