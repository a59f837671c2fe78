package modem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFFTFreq(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		sampleRate float64
		expected   []float64
	}{
		{"Even", 4, 4, []float64{0, 1, -2, -1}},
		{"Odd", 5, 5, []float64{0, 1, 2, -2, -1}},
		{"Scaled", 4, 8, []float64{0, 2, -4, -2}},
		{"Single", 1, 100, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDeltaSlice(t, tt.expected, FFTFreq(tt.n, tt.sampleRate), 1e-12)
		})
	}
}

func TestSpectrumPeak(t *testing.T) {
	// 2 cycles in 8 samples land in bins 2 and 6
	segment := Tone{Amplitude: 1, Freq: 2, SampleRate: 8}.New(8)
	magnitude := Spectrum(segment)

	assert.Len(t, magnitude, 8)
	assert.InDelta(t, 4.0, magnitude[2], 1e-9)
	assert.InDelta(t, 4.0, magnitude[6], 1e-9)
	assert.InDelta(t, 0.0, magnitude[1], 1e-9)
}

func TestDominantFrequency(t *testing.T) {
	tests := []struct {
		name       string
		freq       float64
		sampleRate int
		size       int
	}{
		{"Zero tone", 1000, 22050, 441},
		{"One tone", 1500, 22050, 441},
		{"Power of two window", 1024, 8192, 512},
		{"Midpoint", 1250, 22050, 441},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segment := Tone{Amplitude: 0.1, Freq: tt.freq, SampleRate: float64(tt.sampleRate)}.New(tt.size)
			assert.InDelta(t, tt.freq, DominantFrequency(segment, tt.sampleRate), 1e-6)
		})
	}
}

func TestDominantFrequencySilence(t *testing.T) {
	// flat spectrum, the first bin wins
	assert.Equal(t, 0.0, DominantFrequency(make([]float64, 8), 8000))
	assert.Equal(t, 0.0, DominantFrequency(nil, 8000))
}
