// Package config loads the parameters of a parking lot station.
//
// Values come from, in increasing precedence, the compiled defaults, a TOML
// file, .env files and PARKINGLOT_* environment variables. Command line flags
// are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/sarchlab/parkinglot/lot"
	"github.com/sarchlab/parkinglot/ranging"
)

// ErrInvalid is wrapped by every error caused by a bad configuration value.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes all the environment variables read by Load.
const EnvPrefix = "PARKINGLOT_"

// Duration is a time.Duration written as a string such as "100ms".
type Duration struct {
	time.Duration
}

// D wraps a time.Duration.
func D(d time.Duration) Duration {
	return Duration{Duration: d}
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	d.Duration = v

	return nil
}

// MarshalText writes the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Lot holds the occupancy and gate parameters.
type Lot struct {
	ThresholdCM             float64  `toml:"threshold_cm"`
	DebounceWindow          Duration `toml:"debounce_window"`
	DwellTime               Duration `toml:"dwell_time"`
	StrictArrivalAccounting bool     `toml:"strict_arrival_accounting"`
	RecognizeSpot1Departure bool     `toml:"recognize_spot1_departure"`
}

// Ranging holds the parameters of the distance sensor.
type Ranging struct {
	Timeout    Duration `toml:"timeout"`
	MaxRangeCM float64  `toml:"max_range_cm"`
}

// Loop holds the cadences of the control loop.
type Loop struct {
	SampleInterval Duration `toml:"sample_interval"`
	ReportInterval Duration `toml:"report_interval"`
	Pacing         Duration `toml:"pacing"`
}

// Recording tells where to store the run. An empty path disables recording.
type Recording struct {
	Path string `toml:"path"`
}

// Config is the whole configuration of a station.
type Config struct {
	Lot       Lot       `toml:"lot"`
	Ranging   Ranging   `toml:"ranging"`
	Loop      Loop      `toml:"loop"`
	Recording Recording `toml:"recording"`
}

// Default returns the configuration the lot hardware was tuned for.
func Default() Config {
	l := lot.DefaultConfig()

	return Config{
		Lot: Lot{
			ThresholdCM:    l.ThresholdCM,
			DebounceWindow: D(l.DebounceWindow),
			DwellTime:      D(l.DwellTime),
		},
		Ranging: Ranging{
			Timeout:    D(ranging.DefaultTimeout),
			MaxRangeCM: ranging.DefaultMaxRangeCM,
		},
		Loop: Loop{
			SampleInterval: D(l.SampleInterval),
			ReportInterval: D(l.ReportInterval),
			Pacing:         D(5 * time.Millisecond),
		},
	}
}

// Load builds a configuration from the defaults, the TOML file at path and
// the environment. An empty path skips the file. The envFiles are read with
// godotenv; variables already set in the process environment win over them.
// Missing envFiles are ignored.
func Load(path string, envFiles ...string) (Config, error) {
	c := Default()

	if path != "" {
		if err := c.decodeFile(path); err != nil {
			return c, err
		}
	}

	env, err := readEnv(envFiles)
	if err != nil {
		return c, err
	}

	if err := c.applyEnv(env); err != nil {
		return c, err
	}

	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return fmt.Errorf("%w: unknown keys in %s: %s",
			ErrInvalid, path, strings.Join(keys, ", "))
	}

	return nil
}

func readEnv(envFiles []string) (map[string]string, error) {
	env := make(map[string]string)

	for _, f := range envFiles {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}

		vars, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", f, err)
		}

		for k, v := range vars {
			if _, seen := env[k]; !seen {
				env[k] = v
			}
		}
	}

	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}

	return env, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	durations := map[string]*Duration{
		"DEBOUNCE_WINDOW": &c.Lot.DebounceWindow,
		"DWELL_TIME":      &c.Lot.DwellTime,
		"RANGING_TIMEOUT": &c.Ranging.Timeout,
		"SAMPLE_INTERVAL": &c.Loop.SampleInterval,
		"REPORT_INTERVAL": &c.Loop.ReportInterval,
		"PACING":          &c.Loop.Pacing,
	}
	floats := map[string]*float64{
		"THRESHOLD_CM": &c.Lot.ThresholdCM,
		"MAX_RANGE_CM": &c.Ranging.MaxRangeCM,
	}
	bools := map[string]*bool{
		"STRICT_ARRIVAL":  &c.Lot.StrictArrivalAccounting,
		"SPOT1_DEPARTURE": &c.Lot.RecognizeSpot1Departure,
	}

	for name, dst := range durations {
		v, ok := lookup(env, name)
		if !ok {
			continue
		}

		if err := dst.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
	}

	for name, dst := range floats {
		v, ok := lookup(env, name)
		if !ok {
			continue
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w: %w", EnvPrefix, name, ErrInvalid, err)
		}

		*dst = f
	}

	for name, dst := range bools {
		v, ok := lookup(env, name)
		if !ok {
			continue
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w: %w", EnvPrefix, name, ErrInvalid, err)
		}

		*dst = b
	}

	if v, ok := lookup(env, "RECORD"); ok {
		c.Recording.Path = v
	}

	return nil
}

func lookup(env map[string]string, name string) (string, bool) {
	v, ok := env[EnvPrefix+name]
	if !ok || v == "" {
		return "", false
	}

	return v, true
}

// Validate checks that the configuration can drive a controller.
func (c Config) Validate() error {
	var errs []error

	atLeastMs := func(name string, d Duration) {
		if d.Duration < time.Millisecond {
			errs = append(errs, fmt.Errorf("%s must be at least 1ms, got %s",
				name, d))
		}
	}

	atLeastMs("loop.sample_interval", c.Loop.SampleInterval)
	atLeastMs("loop.report_interval", c.Loop.ReportInterval)
	atLeastMs("lot.dwell_time", c.Lot.DwellTime)

	if c.Lot.DebounceWindow.Duration < 0 {
		errs = append(errs, fmt.Errorf("lot.debounce_window cannot be negative"))
	}

	if c.Loop.Pacing.Duration < 0 {
		errs = append(errs, fmt.Errorf("loop.pacing cannot be negative"))
	}

	if c.Ranging.Timeout.Duration <= 0 {
		errs = append(errs, fmt.Errorf("ranging.timeout must be positive"))
	}

	if c.Lot.ThresholdCM <= 0 {
		errs = append(errs, fmt.Errorf("lot.threshold_cm must be positive"))
	}

	if c.Lot.ThresholdCM >= c.Ranging.MaxRangeCM {
		errs = append(errs, fmt.Errorf(
			"lot.threshold_cm (%g) must be below ranging.max_range_cm (%g)",
			c.Lot.ThresholdCM, c.Ranging.MaxRangeCM))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// ToLot converts the configuration into the parameters of a lot controller.
func (c Config) ToLot() lot.Config {
	return lot.Config{
		SampleInterval:          c.Loop.SampleInterval.Duration,
		ReportInterval:          c.Loop.ReportInterval.Duration,
		DebounceWindow:          c.Lot.DebounceWindow.Duration,
		DwellTime:               c.Lot.DwellTime.Duration,
		ThresholdCM:             c.Lot.ThresholdCM,
		StrictArrivalAccounting: c.Lot.StrictArrivalAccounting,
		RecognizeSpot1Departure: c.Lot.RecognizeSpot1Departure,
	}
}

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
