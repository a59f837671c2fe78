package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopback(t *testing.T) {
	var dev Loopback

	_, _, err := dev.Read()
	assert.ErrorIs(t, err, ErrNoData)

	in := []float64{0.1, -0.2, 0.3}
	require.NoError(t, dev.Write(48000, in))

	rate, out, err := dev.Read()
	require.NoError(t, err)
	assert.Equal(t, 48000, rate)
	assert.Equal(t, in, out)

	// neither side aliases the other
	out[0] = 9
	in[1] = 9
	_, again, err := dev.Read()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, -0.2, 0.3}, again)
}

func TestLoopbackEmptyBuffer(t *testing.T) {
	var dev Loopback
	require.NoError(t, dev.Write(8000, nil))

	rate, out, err := dev.Read()
	require.NoError(t, err)
	assert.Equal(t, 8000, rate)
	assert.Empty(t, out)
}
