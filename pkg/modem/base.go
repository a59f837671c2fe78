package modem

type BitModem interface {
	Modulate(inputBits []bool) []float64
	Demodulate(inputSignal []float64) []bool
}

type Modem interface {
	Encode(inputBytes []byte) []float64
	Decode(inputSignal []float64) []byte
}
