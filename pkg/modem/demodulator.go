package modem

import (
	"fsktone/pkg/async"

	"github.com/rs/zerolog/log"
)

type Demodulator struct {
	Config  Config
	Workers int // goroutines analysing windows; 0 or 1 runs inline
}

func NewDemodulator(c Config) *Demodulator {
	return &Demodulator{Config: c}
}

// Demodulate classifies each full window of SamplesPerBit samples by its
// dominant frequency. Bit i always comes from window i; trailing samples
// shorter than a window are ignored.
func (d *Demodulator) Demodulate(inputSignal []float64) []bool {
	samplePerBit := d.Config.SamplesPerBit()
	windowCount := len(inputSignal) / samplePerBit

	workers := min(d.Workers, windowCount)
	if workers <= 1 {
		demodulatedBits := d.demodulateWindows(inputSignal, 0, windowCount)
		log.Debug().
			Int("samples", len(inputSignal)).
			Int("bits", len(demodulatedBits)).
			Msg("[Demodulation] done")
		return demodulatedBits
	}

	// contiguous chunks, reassembled by position so completion order is irrelevant
	chunk := (windowCount + workers - 1) / workers
	ranges := make([][2]int, 0, workers)
	for lo := 0; lo < windowCount; lo += chunk {
		ranges = append(ranges, [2]int{lo, min(lo+chunk, windowCount)})
	}
	parts := async.Map(ranges, func(r [2]int) []bool {
		return d.demodulateWindows(inputSignal, r[0], r[1])
	})

	demodulatedBits := make([]bool, 0, windowCount)
	for _, part := range parts {
		demodulatedBits = append(demodulatedBits, part...)
	}

	log.Debug().
		Int("samples", len(inputSignal)).
		Int("bits", len(demodulatedBits)).
		Int("workers", len(parts)).
		Msg("[Demodulation] done")

	return demodulatedBits
}

func (d *Demodulator) DemodulateBytes(inputSignal []float64) []byte {
	return BitsToBytes(d.Demodulate(inputSignal))
}

// demodulateWindows decodes windows [lo, hi).
func (d *Demodulator) demodulateWindows(inputSignal []float64, lo, hi int) []bool {
	samplePerBit := d.Config.SamplesPerBit()
	bits := make([]bool, 0, hi-lo)
	for i := lo; i < hi; i++ {
		segment := inputSignal[i*samplePerBit : (i+1)*samplePerBit]
		bits = append(bits, d.Config.Classify(DominantFrequency(segment, d.Config.SampleRate)))
	}
	return bits
}
