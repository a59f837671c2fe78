package modem

import (
	"github.com/rs/zerolog/log"
)

type Modulator struct {
	Config Config
	Noise  Noise // additive channel noise, nil means none
}

// NewModulator returns a Modulator whose noise is drawn from the config
// bounds with the given seed (zero seeds from the clock).
func NewModulator(c Config, seed uint64) *Modulator {
	return &Modulator{
		Config: c,
		Noise:  NewConfigNoise(c, seed),
	}
}

// Modulate synthesises one window of tone per bit. The sample index runs
// across the whole buffer so the phase is continuous at bit boundaries.
func (m *Modulator) Modulate(inputBits []bool) []float64 {
	samplePerBit := m.Config.SamplesPerBit()
	carriers := [2]Tone{m.Config.carrier(false), m.Config.carrier(true)}

	noise := m.Noise
	if noise == nil {
		noise = NoNoise{}
	}

	modulatedData := make([]float64, 0, len(inputBits)*samplePerBit)

	n := 0
	for _, bit := range inputBits {
		carrier := carriers[0]
		if bit {
			carrier = carriers[1]
		}
		for j := 0; j < samplePerBit; j++ {
			modulatedData = append(modulatedData, carrier.At(n)+noise.Sample())
			n++
		}
	}

	log.Debug().
		Int("bits", len(inputBits)).
		Int("samples", len(modulatedData)).
		Msg("[Modulation] done")

	return modulatedData
}

func (m *Modulator) ModulateBytes(inputBytes []byte) []float64 {
	return m.Modulate(BytesToBits(inputBytes))
}
