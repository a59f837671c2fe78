package modem

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Spectrum returns the DFT magnitude of a real segment. Any length is
// accepted; non powers of two go through Bluestein's algorithm.
func Spectrum(segment []float64) []float64 {
	coeffs := fft.FFTReal(segment)
	magnitude := make([]float64, len(coeffs))
	for i, c := range coeffs {
		magnitude[i] = cmplx.Abs(c)
	}
	return magnitude
}

// FFTFreq returns the centre frequency of each of the n bins. Bins past the
// Nyquist index wrap around to negative frequencies.
func FFTFreq(n int, sampleRate float64) []float64 {
	freqs := make([]float64, n)
	positive := (n + 1) / 2
	for k := 0; k < n; k++ {
		if k < positive {
			freqs[k] = float64(k) * sampleRate / float64(n)
		} else {
			freqs[k] = float64(k-n) * sampleRate / float64(n)
		}
	}
	return freqs
}

// DominantFrequency is the absolute frequency of the strongest bin. Ties go
// to the lowest bin index.
func DominantFrequency(segment []float64, sampleRate int) float64 {
	if len(segment) == 0 {
		return 0
	}
	magnitude := Spectrum(segment)
	freqs := FFTFreq(len(segment), float64(sampleRate))
	return math.Abs(freqs[floats.MaxIdx(magnitude)])
}
