package device

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/youpy/go-wav"
)

const readChunk = 4096

// WavFile reads and writes mono WAV files. Multichannel input is reduced to
// its first channel.
type WavFile struct {
	Path          string
	BitsPerSample int // PCM width used by Write: 8, 16 or 32; 0 means 16
}

var (
	_ Source = (*WavFile)(nil)
	_ Sink   = (*WavFile)(nil)
)

func (f *WavFile) bitsPerSample() int {
	if f.BitsPerSample == 0 {
		return DefaultBitsPerSample
	}
	return f.BitsPerSample
}

func (f *WavFile) Write(sampleRate int, samples []float64) error {
	bits := f.bitsPerSample()
	switch bits {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, bits)
	}

	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	writer := wav.NewWriter(w, uint32(len(samples)), 1, uint32(sampleRate), uint16(bits))

	pcm := Float64ToPCM(samples, bits)
	frames := make([]wav.Sample, len(pcm))
	for i, v := range pcm {
		frames[i].Values[0] = v
	}
	if err := writer.WriteSamples(frames); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Debug().
		Str("path", f.Path).
		Int("sample_rate", sampleRate).
		Int("samples", len(samples)).
		Int("bits_per_sample", bits).
		Msg("wav written")

	return file.Close()
}

func (f *WavFile) Read() (int, []float64, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := wav.NewReader(file)
	format, err := reader.Format()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read wav format: %w", err)
	}

	switch format.AudioFormat {
	case wav.AudioFormatPCM:
	case wav.AudioFormatIEEEFloat:
		// the float decoder only understands 4 byte samples
		if format.BitsPerSample != 32 {
			return 0, nil, fmt.Errorf("%w: %d bit float", ErrUnsupportedFormat, format.BitsPerSample)
		}
	default:
		return 0, nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, format.AudioFormat)
	}
	// wav.Sample holds at most two channels
	if format.NumChannels < 1 || format.NumChannels > 2 {
		return 0, nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, format.NumChannels)
	}

	bits := int(format.BitsPerSample)
	value := func(s wav.Sample) float64 {
		if format.AudioFormat == wav.AudioFormatPCM {
			return PCMToFloat64(reader.IntValue(s, 0), bits)
		}
		return reader.FloatValue(s, 0)
	}

	samples := make([]float64, 0)

	if _, err := reader.Duration(); err != nil {
		empty, tailErr := endsWithEmptyData(file)
		if tailErr != nil || !empty {
			return 0, nil, fmt.Errorf("failed to read samples: %w", err)
		}
		log.Debug().Str("path", f.Path).Msg("wav has no samples")
		return int(format.SampleRate), samples, nil
	}

	for {
		chunk, err := reader.ReadSamples(readChunk)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, nil, fmt.Errorf("failed to read samples: %w", err)
		}
		for _, s := range chunk {
			samples = append(samples, value(s))
		}
	}

	log.Debug().
		Str("path", f.Path).
		Uint32("sample_rate", format.SampleRate).
		Uint16("channels", format.NumChannels).
		Int("samples", len(samples)).
		Msg("wav read")

	return int(format.SampleRate), samples, nil
}

// endsWithEmptyData reports whether the file closes with a zero length data
// chunk. The RIFF parser skips such a chunk, so the reader would otherwise
// fail with a missing data chunk.
func endsWithEmptyData(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() < 8 {
		return false, nil
	}

	tail := make([]byte, 8)
	if _, err := file.ReadAt(tail, info.Size()-8); err != nil {
		return false, err
	}
	return string(tail[:4]) == "data" && binary.LittleEndian.Uint32(tail[4:]) == 0, nil
}
