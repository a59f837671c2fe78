package modem

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid modulation config")

// ConfigError reports the field of a Config that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %v: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Config is the parameter set shared by the modulator and the demodulator.
// A round trip only works when both sides use the same Config.
type Config struct {
	SampleRate  int     // samples per second
	BitDuration float64 // seconds per bit

	FreqZero float64 // tone for bit 0 (Hz)
	FreqOne  float64 // tone for bit 1 (Hz)

	Amplitude float64 // peak amplitude of the tone, in (0, 1]

	NoiseMin float64 // lower bound of the additive uniform noise
	NoiseMax float64 // upper bound of the additive uniform noise
}

const (
	DefaultSampleRate  = 22050
	DefaultBitDuration = 0.02
	DefaultFreqZero    = 1000.0
	DefaultFreqOne     = 1500.0
	DefaultAmplitude   = 0.1
	DefaultNoiseMin    = -0.05
	DefaultNoiseMax    = 0.05
)

// DefaultConfig returns the parameters of the stock tuning sound.
func DefaultConfig() Config {
	return Config{
		SampleRate:  DefaultSampleRate,
		BitDuration: DefaultBitDuration,
		FreqZero:    DefaultFreqZero,
		FreqOne:     DefaultFreqOne,
		Amplitude:   DefaultAmplitude,
		NoiseMin:    DefaultNoiseMin,
		NoiseMax:    DefaultNoiseMax,
	}
}

// NewConfig builds a Config and validates it.
func NewConfig(sampleRate int, bitDuration, freqZero, freqOne, amplitude, noiseMin, noiseMax float64) (Config, error) {
	c := Config{
		SampleRate:  sampleRate,
		BitDuration: bitDuration,
		FreqZero:    freqZero,
		FreqOne:     freqOne,
		Amplitude:   amplitude,
		NoiseMin:    noiseMin,
		NoiseMax:    noiseMax,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	finite := []struct {
		field string
		value float64
	}{
		{"BitDuration", c.BitDuration},
		{"FreqZero", c.FreqZero},
		{"FreqOne", c.FreqOne},
		{"Amplitude", c.Amplitude},
		{"NoiseMin", c.NoiseMin},
		{"NoiseMax", c.NoiseMax},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigError{f.field, f.value, "must be finite"}
		}
	}

	switch {
	case c.SampleRate <= 0:
		return &ConfigError{"SampleRate", c.SampleRate, "must be positive"}
	case c.BitDuration <= 0:
		return &ConfigError{"BitDuration", c.BitDuration, "must be positive"}
	case c.SamplesPerBit() < 1:
		return &ConfigError{"BitDuration", c.BitDuration, fmt.Sprintf("yields %d samples per bit at %d Hz", c.SamplesPerBit(), c.SampleRate)}
	case c.FreqZero <= 0:
		return &ConfigError{"FreqZero", c.FreqZero, "must be positive"}
	case c.FreqOne <= 0:
		return &ConfigError{"FreqOne", c.FreqOne, "must be positive"}
	case c.FreqZero == c.FreqOne:
		return &ConfigError{"FreqOne", c.FreqOne, "must differ from FreqZero"}
	case c.Amplitude <= 0 || c.Amplitude > 1:
		return &ConfigError{"Amplitude", c.Amplitude, "must be in (0, 1]"}
	case c.NoiseMin > c.NoiseMax:
		return &ConfigError{"NoiseMin", c.NoiseMin, fmt.Sprintf("greater than NoiseMax %v", c.NoiseMax)}
	}
	return nil
}

// SamplesPerBit is the window length in samples.
func (c Config) SamplesPerBit() int {
	return int(math.Round(c.BitDuration * float64(c.SampleRate)))
}

// Resolution is the width of one DFT bin of a window, in Hz.
func (c Config) Resolution() float64 {
	return float64(c.SampleRate) / float64(c.SamplesPerBit())
}

// Separable reports whether the two tones fall further apart than one DFT bin.
// The demodulator is only reliable when this holds.
func (c Config) Separable() bool {
	return math.Abs(c.FreqOne-c.FreqZero) > c.Resolution()
}

// Classify maps a frequency to a bit. Equal distances decode as 0.
func (c Config) Classify(freq float64) bool {
	return math.Abs(freq-c.FreqOne) < math.Abs(freq-c.FreqZero)
}

func (c Config) carrier(bit bool) Tone {
	freq := c.FreqZero
	if bit {
		freq = c.FreqOne
	}
	return Tone{
		Amplitude:  c.Amplitude,
		Freq:       freq,
		SampleRate: float64(c.SampleRate),
	}
}
