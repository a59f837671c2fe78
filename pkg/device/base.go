package device

import "errors"

// Source yields a mono sample buffer and the rate it was captured at.
type Source interface {
	Read() (sampleRate int, samples []float64, err error)
}

// Sink persists a mono sample buffer.
type Sink interface {
	Write(sampleRate int, samples []float64) error
}

const DefaultBitsPerSample = 16

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoData            = errors.New("no data written")
)
