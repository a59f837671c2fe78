package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64ToPCM(t *testing.T) {
	tests := []struct {
		name     string
		bits     int
		input    []float64
		expected []int
	}{
		{"16 bit", 16, []float64{0, 1, -1, 0.5}, []int{0, 32767, -32767, 16384}},
		{"16 bit clamps", 16, []float64{2, -3}, []int{32767, -32767}},
		{"8 bit unsigned", 8, []float64{0, 1, -1}, []int{128, 255, 1}},
		{"32 bit", 32, []float64{1, -1}, []int{2147483647, -2147483647}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Float64ToPCM(tt.input, tt.bits))
		})
	}
}

func TestPCMRoundTrip(t *testing.T) {
	for _, bits := range []int{8, 16, 32} {
		for _, v := range []float64{0, 0.1, -0.1, 0.75, -0.75} {
			pcm := Float64ToPCM([]float64{v}, bits)[0]
			assert.InDelta(t, v, PCMToFloat64(pcm, bits), 2.0/float64(int64(1)<<(bits-1)), "bits=%d v=%v", bits, v)
		}
	}
}
