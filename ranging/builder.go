package ranging

import (
	"time"

	"github.com/sarchlab/parkinglot/device"
)

// Default sampler parameters, matching the HC-SR04 wiring of the lot.
const (
	DefaultTimeout    = 30 * time.Millisecond
	DefaultMaxRangeCM = 200.0
)

// Builder can build Samplers.
type Builder struct {
	transducer device.Transducer
	timeout    time.Duration
	maxRangeCM float64
}

// MakeBuilder creates a Builder with the default parameters.
func MakeBuilder() Builder {
	return Builder{
		timeout:    DefaultTimeout,
		maxRangeCM: DefaultMaxRangeCM,
	}
}

// WithTransducer sets the transducer to sample.
func (b Builder) WithTransducer(t device.Transducer) Builder {
	b.transducer = t
	return b
}

// WithTimeout sets how long a sample may wait for its echo.
func (b Builder) WithTimeout(timeout time.Duration) Builder {
	b.timeout = timeout
	return b
}

// WithMaxRange sets the distance reported when nothing is detected.
func (b Builder) WithMaxRange(cm float64) Builder {
	b.maxRangeCM = cm
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.transducer == nil {
		panic("transducer is not set")
	}

	if b.timeout <= 0 {
		panic("timeout must be positive")
	}

	if b.maxRangeCM <= 0 {
		panic("max range must be positive")
	}
}

// Build creates a Sampler.
func (b Builder) Build() *Sampler {
	b.parametersMustBeValid()

	return &Sampler{
		transducer: b.transducer,
		timeout:    b.timeout,
		maxRangeCM: b.maxRangeCM,
	}
}
