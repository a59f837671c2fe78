package modem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiny config so every sample can be checked by hand: 4 samples per bit
var tinyConfig = Config{
	SampleRate:  8,
	BitDuration: 0.5,
	FreqZero:    1,
	FreqOne:     2,
	Amplitude:   1,
}

func TestModulateLength(t *testing.T) {
	c := DefaultConfig()
	m := &Modulator{Config: c, Noise: NewUniformNoise(c.NoiseMin, c.NoiseMax, 1)}

	for _, n := range []int{0, 1, 8, 13} {
		bits := make([]bool, n)
		assert.Len(t, m.Modulate(bits), n*c.SamplesPerBit())
	}
}

func TestModulateEmpty(t *testing.T) {
	m := &Modulator{Config: DefaultConfig()}
	assert.Empty(t, m.Modulate(nil))
	assert.Empty(t, m.ModulateBytes([]byte{}))
}

func TestModulateExactSamples(t *testing.T) {
	require.NoError(t, tinyConfig.Validate())
	require.Equal(t, 4, tinyConfig.SamplesPerBit())

	noise := []float64{0.5, -0.25}
	m := &Modulator{Config: tinyConfig, Noise: &SequenceNoise{Values: noise}}

	bits := []bool{false, true}
	samples := m.Modulate(bits)
	require.Len(t, samples, 8)

	for n, got := range samples {
		freq := tinyConfig.FreqZero
		if n >= 4 {
			freq = tinyConfig.FreqOne
		}
		want := math.Sin(2*math.Pi*freq*float64(n)/8) + noise[n%2]
		assert.InDelta(t, want, got, 1e-12, "sample %d", n)
	}
}

func TestModulatePhaseContinuous(t *testing.T) {
	c := DefaultConfig()
	m := &Modulator{Config: c, Noise: NoNoise{}}

	// three identical bits are one unbroken tone, the index is never reset
	samples := m.Modulate([]bool{true, true, true})
	tone := Tone{Amplitude: c.Amplitude, Freq: c.FreqOne, SampleRate: float64(c.SampleRate)}.New(3 * c.SamplesPerBit())
	assert.InDeltaSlice(t, tone, samples, 1e-12)
}

func TestModulateNoiseBounds(t *testing.T) {
	c := DefaultConfig()
	m := NewModulator(c, 99)

	samples := m.Modulate(BytesToBits([]byte("noise")))
	limit := c.Amplitude + math.Max(math.Abs(c.NoiseMin), math.Abs(c.NoiseMax))
	for i, s := range samples {
		if math.Abs(s) > limit {
			t.Fatalf("sample %d = %v exceeds %v", i, s, limit)
		}
	}
}

func TestModulateSeededIsReproducible(t *testing.T) {
	c := DefaultConfig()
	a := NewModulator(c, 5).ModulateBytes([]byte("A"))
	b := NewModulator(c, 5).ModulateBytes([]byte("A"))
	assert.Equal(t, a, b)
}
