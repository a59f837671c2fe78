package config

import (
	"fmt"
	"os"
	"time"

	"fsktone/pkg/modem"
	"fsktone/pkg/tuning"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Modem struct {
		SampleRate  int     `yaml:"sample_rate"`
		BitDuration float64 `yaml:"bit_duration"`
		FreqZero    float64 `yaml:"freq_zero"`
		FreqOne     float64 `yaml:"freq_one"`
		Amplitude   float64 `yaml:"amplitude"`
	} `yaml:"modem"`

	Noise struct {
		Min  float64 `yaml:"min"`
		Max  float64 `yaml:"max"`
		Seed uint64  `yaml:"seed"` // 0 seeds from the clock
	} `yaml:"noise"`

	Demodulator struct {
		Workers int `yaml:"workers"`
	} `yaml:"demodulator"`

	Output struct {
		BitsPerSample int `yaml:"bits_per_sample"`
	} `yaml:"output"`

	Tuning struct {
		Duration        float64 `yaml:"duration"`
		SegmentDuration float64 `yaml:"segment_duration"`
		MinFreq         float64 `yaml:"min_freq"`
		MaxFreq         float64 `yaml:"max_freq"`
		Count           int     `yaml:"count"`
		Prefix          string  `yaml:"prefix"`
	} `yaml:"tuning"`
}

// Default mirrors modem.DefaultConfig and tuning.DefaultGenerator.
func Default() *Config {
	var c Config

	m := modem.DefaultConfig()
	c.Modem.SampleRate = m.SampleRate
	c.Modem.BitDuration = m.BitDuration
	c.Modem.FreqZero = m.FreqZero
	c.Modem.FreqOne = m.FreqOne
	c.Modem.Amplitude = m.Amplitude
	c.Noise.Min = m.NoiseMin
	c.Noise.Max = m.NoiseMax

	c.Demodulator.Workers = 1
	c.Output.BitsPerSample = 16

	g := tuning.DefaultGenerator(0)
	c.Tuning.Duration = g.Duration
	c.Tuning.SegmentDuration = g.SegmentDuration
	c.Tuning.MinFreq = g.MinFreq
	c.Tuning.MaxFreq = g.MaxFreq
	c.Tuning.Count = 3
	c.Tuning.Prefix = "tuning_sound"

	return &c
}

// LoadConfig reads a YAML file on top of Default. Keys missing from the
// file keep their default value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return config, nil
}

// ModemConfig validates and returns the modulation parameters.
func (c *Config) ModemConfig() (modem.Config, error) {
	return modem.NewConfig(
		c.Modem.SampleRate,
		c.Modem.BitDuration,
		c.Modem.FreqZero,
		c.Modem.FreqOne,
		c.Modem.Amplitude,
		c.Noise.Min,
		c.Noise.Max,
	)
}

// ByteModem builds the modem pair with the configured noise seed and
// demodulator workers.
func (c *Config) ByteModem() (*modem.ByteModem, error) {
	mc, err := c.ModemConfig()
	if err != nil {
		return nil, err
	}
	m, err := modem.NewByteModem(mc, c.Noise.Seed)
	if err != nil {
		return nil, err
	}
	m.Workers = c.Demodulator.Workers
	return m, nil
}

// TuningGenerator builds the n-th tuning generator. Generators built from
// the same seed and index are identical; different indices differ.
func (c *Config) TuningGenerator(index int) *tuning.Generator {
	seed := c.Noise.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	seed += uint64(index)

	g := tuning.DefaultGenerator(seed)
	g.SampleRate = c.Modem.SampleRate
	g.Amplitude = c.Modem.Amplitude
	g.Duration = c.Tuning.Duration
	g.SegmentDuration = c.Tuning.SegmentDuration
	g.MinFreq = c.Tuning.MinFreq
	g.MaxFreq = c.Tuning.MaxFreq
	g.Noise = modem.NewUniformNoise(c.Noise.Min, c.Noise.Max, seed)
	return g
}
