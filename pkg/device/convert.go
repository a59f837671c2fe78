package device

import "math"

// Float64ToPCM quantises samples in [-1, 1] to signed PCM of the given
// width. 8-bit PCM is unsigned with 128 as silence, as WAV requires.
// Out of range samples are clamped.
func Float64ToPCM(input []float64, bitsPerSample int) []int {
	scale := float64(int64(1)<<(bitsPerSample-1) - 1)
	output := make([]int, len(input))
	for i, v := range input {
		v = max(-1, min(1, v))
		output[i] = int(math.Round(v * scale))
		if bitsPerSample == 8 {
			output[i] += 128
		}
	}
	return output
}

// PCMToFloat64 is the inverse of Float64ToPCM for a single value.
func PCMToFloat64(value int, bitsPerSample int) float64 {
	if bitsPerSample == 8 {
		return float64(value-128) / 128
	}
	return float64(value) / float64(int64(1)<<(bitsPerSample-1))
}
