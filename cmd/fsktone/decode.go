package main

import (
	"fmt"

	"fsktone/pkg/device"
	"fsktone/pkg/modem"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var decodeWorkers int

var decodeCmd = &cobra.Command{
	Use:   "decode [file.wav]",
	Short: "Decode the text hidden in an FSK WAV file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().IntVarP(&decodeWorkers, "workers", "w", 0,
		"goroutines analysing windows, overrides the config (0 keeps it)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := "special_tuning_sound.wav"
	if len(args) == 1 {
		path = args[0]
	}

	if decodeWorkers > 0 {
		appConfig.Demodulator.Workers = decodeWorkers
	}
	m, err := appConfig.ByteModem()
	if err != nil {
		return err
	}

	rate, samples, err := (&device.WavFile{Path: path}).Read()
	if err != nil {
		return err
	}
	if rate != m.Demodulator.Config.SampleRate {
		log.Warn().
			Int("file_rate", rate).
			Int("config_rate", m.Demodulator.Config.SampleRate).
			Msg("sample rate differs from the config, decoding with the config rate")
	}
	if !m.Demodulator.Config.Separable() {
		log.Warn().
			Float64("resolution_hz", m.Demodulator.Config.Resolution()).
			Msg("tones are closer than one frequency bin, decoding is unreliable")
	}

	bits := m.Demodulate(samples)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Decoded binary: %s\n", modem.BitString(bits))
	fmt.Fprintf(out, "Decoded text: %s\n", modem.BitsToBytes(bits))
	return nil
}
