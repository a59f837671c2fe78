package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fsktone/pkg/modem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func runErr(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func withConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fsktone.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Cleanup(func() {
		rootCmd.PersistentFlags().Set("config", "")
	})
	return path
}

func TestEncodeDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.wav")

	run(t, "--log-level", "error", "encode", "--text", "Lutheran Radio", "--out", path, "--seed", "3")
	out := run(t, "--log-level", "error", "decode", path, "--workers", "4")

	assert.Contains(t, out, "Decoded text: Lutheran Radio\n")
	assert.Contains(t, out, "Decoded binary: 01001100")
}

func TestTuningFiles(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "tuning_sound")

	run(t, "--log-level", "error", "tuning", "--count", "2", "--prefix", prefix, "--seed", "8")

	for _, name := range []string{"tuning_sound_1.wav", "tuning_sound_2.wav"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(44))
	}
}

func TestEncodeDecodeEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")

	run(t, "--log-level", "error", "encode", "--text", "", "--out", path)
	out := run(t, "--log-level", "error", "decode", path)

	assert.Equal(t, "Decoded binary: \nDecoded text: \n", out)
}

func TestTuningRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Zero sample rate", "modem:\n  sample_rate: 0\n"},
		{"Inverted band", "tuning:\n  min_freq: 2000\n  max_freq: 1000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := withConfig(t, tt.yaml)
			prefix := filepath.Join(t.TempDir(), "tuning_sound")

			err := runErr(t, "--log-level", "error", "--config", cfg, "tuning", "--count", "1", "--prefix", prefix)
			assert.ErrorIs(t, err, modem.ErrInvalidConfig)

			_, statErr := os.Stat(prefix + "_1.wav")
			assert.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}
