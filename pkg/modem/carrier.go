package modem

import "math"

// Tone is a sine carrier sampled at SampleRate. Sample indices are absolute,
// so consecutive calls with a running index keep the phase continuous.
type Tone struct {
	Amplitude  float64
	Freq       float64
	SampleRate float64
}

func (p Tone) At(n int) float64 {
	t := float64(n) / p.SampleRate
	return p.Amplitude * math.Sin(2*math.Pi*p.Freq*t)
}

// Fill writes len(dst) samples starting at absolute index offset.
func (p Tone) Fill(dst []float64, offset int) {
	for i := range dst {
		dst[i] = p.At(offset + i)
	}
}

func (p Tone) New(size int) []float64 {
	signal := make([]float64, size)
	p.Fill(signal, 0)
	return signal
}
