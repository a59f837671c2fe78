// Package tuning synthesises the short burst of random tones played as a
// radio tuning effect. It carries no data.
package tuning

import (
	"fmt"
	"math"

	"fsktone/pkg/modem"

	"golang.org/x/exp/rand"
)

type Generator struct {
	SampleRate      int
	Duration        float64 // seconds
	SegmentDuration float64 // seconds per random tone
	MinFreq         float64
	MaxFreq         float64
	Amplitude       float64

	Noise modem.Noise // nil means silent channel
	Rand  *rand.Rand  // picks the segment frequencies
}

// DefaultGenerator returns the stock half second burst of 12 ms tones
// between 500 Hz and 1500 Hz.
func DefaultGenerator(seed uint64) *Generator {
	return &Generator{
		SampleRate:      modem.DefaultSampleRate,
		Duration:        0.5,
		SegmentDuration: 0.012,
		MinFreq:         500,
		MaxFreq:         1500,
		Amplitude:       modem.DefaultAmplitude,
		Noise:           modem.NewUniformNoise(modem.DefaultNoiseMin, modem.DefaultNoiseMax, seed),
		Rand:            rand.New(rand.NewSource(seed)),
	}
}

// Validate checks the burst parameters. Errors wrap modem.ErrInvalidConfig.
func (g *Generator) Validate() error {
	switch {
	case g.SampleRate <= 0:
		return &modem.ConfigError{Field: "SampleRate", Value: g.SampleRate, Reason: "must be positive"}
	case !(g.Duration > 0) || math.IsInf(g.Duration, 0):
		return &modem.ConfigError{Field: "Duration", Value: g.Duration, Reason: "must be positive"}
	case !(g.SegmentDuration > 0) || math.IsInf(g.SegmentDuration, 0):
		return &modem.ConfigError{Field: "SegmentDuration", Value: g.SegmentDuration, Reason: "must be positive"}
	case !(g.MinFreq > 0) || math.IsInf(g.MinFreq, 0):
		return &modem.ConfigError{Field: "MinFreq", Value: g.MinFreq, Reason: "must be positive"}
	case !(g.MaxFreq >= g.MinFreq) || math.IsInf(g.MaxFreq, 0):
		return &modem.ConfigError{Field: "MaxFreq", Value: g.MaxFreq, Reason: fmt.Sprintf("must not be below MinFreq %v", g.MinFreq)}
	case !(g.Amplitude > 0) || g.Amplitude > 1:
		return &modem.ConfigError{Field: "Amplitude", Value: g.Amplitude, Reason: "must be in (0, 1]"}
	}
	return nil
}

func (g *Generator) TotalSamples() int {
	return int(g.Duration * float64(g.SampleRate))
}

func (g *Generator) SegmentSamples() int {
	return int(g.SegmentDuration * float64(g.SampleRate))
}

// Generate fills TotalSamples samples with consecutive segments, each a tone
// of fresh random frequency. A trailing partial segment gets its own tone.
// The sample index is never reset, so segments join without a time jump.
func (g *Generator) Generate() []float64 {
	total := g.TotalSamples()
	segment := g.SegmentSamples()
	if segment <= 0 {
		segment = total
	}

	noise := g.Noise
	if noise == nil {
		noise = modem.NoNoise{}
	}
	rng := g.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	samples := make([]float64, total)
	for start := 0; start < total; start += segment {
		end := min(start+segment, total)
		tone := modem.Tone{
			Amplitude:  g.Amplitude,
			Freq:       g.MinFreq + (g.MaxFreq-g.MinFreq)*rng.Float64(),
			SampleRate: float64(g.SampleRate),
		}
		tone.Fill(samples[start:end], start)
		for i := start; i < end; i++ {
			samples[i] += noise.Sample()
		}
	}
	return samples
}
