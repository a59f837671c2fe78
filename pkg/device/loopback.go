package device

import "sync"

// Loopback is an in-memory Sink and Source. Read returns a copy of the
// last buffer written, so the reader never aliases the writer's slice.
type Loopback struct {
	mu         sync.Mutex
	sampleRate int
	buf        []float64
	written    bool
}

var (
	_ Source = (*Loopback)(nil)
	_ Sink   = (*Loopback)(nil)
)

func (d *Loopback) Write(sampleRate int, samples []float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sampleRate = sampleRate
	d.buf = append(d.buf[:0], samples...)
	d.written = true
	return nil
}

func (d *Loopback) Read() (int, []float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.written {
		return 0, nil, ErrNoData
	}
	out := make([]float64, len(d.buf))
	copy(out, d.buf)
	return d.sampleRate, out, nil
}
