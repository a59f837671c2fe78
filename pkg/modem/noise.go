package modem

import (
	"time"

	"golang.org/x/exp/rand"
)

// Noise supplies the additive channel noise, one value per sample.
type Noise interface {
	Sample() float64
}

// NoiseFunc adapts a plain function to Noise.
type NoiseFunc func() float64

func (f NoiseFunc) Sample() float64 { return f() }

// NoNoise is a silent channel.
type NoNoise struct{}

func (NoNoise) Sample() float64 { return 0 }

// UniformNoise draws uniformly from [Min, Max]. It is not safe for
// concurrent use.
type UniformNoise struct {
	Min, Max float64
	rng      *rand.Rand
}

func NewUniformNoise(lo, hi float64, seed uint64) *UniformNoise {
	return &UniformNoise{
		Min: lo,
		Max: hi,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewConfigNoise returns the noise described by the config bounds.
// A zero seed picks one from the clock.
func NewConfigNoise(c Config, seed uint64) Noise {
	if c.NoiseMin == 0 && c.NoiseMax == 0 {
		return NoNoise{}
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewUniformNoise(c.NoiseMin, c.NoiseMax, seed)
}

func (u *UniformNoise) Sample() float64 {
	if u.Min == u.Max {
		return u.Min
	}
	return u.Min + (u.Max-u.Min)*u.rng.Float64()
}

// SequenceNoise replays Values cyclically.
type SequenceNoise struct {
	Values []float64
	pos    int
}

func (s *SequenceNoise) Sample() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
