package modem

// ByteModem pairs a Modulator and a Demodulator built from one Config.
type ByteModem struct {
	Modulator
	Demodulator
}

var (
	_ BitModem = (*ByteModem)(nil)
	_ Modem    = (*ByteModem)(nil)
)

// NewByteModem validates c and wires both halves to it. The noise seed is
// passed to NewModulator.
func NewByteModem(c Config, seed uint64) (*ByteModem, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &ByteModem{
		Modulator:   *NewModulator(c, seed),
		Demodulator: *NewDemodulator(c),
	}, nil
}

func (m *ByteModem) Encode(inputBytes []byte) []float64 {
	return m.Modulator.ModulateBytes(inputBytes)
}

func (m *ByteModem) Decode(inputSignal []float64) []byte {
	return m.Demodulator.DemodulateBytes(inputSignal)
}
