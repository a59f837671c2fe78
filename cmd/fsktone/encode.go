package main

import (
	"os"

	"fsktone/pkg/device"
	"fsktone/pkg/modem"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	encodeText   string
	encodeInput  string
	encodeOutput string
	encodeSeed   uint64
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode text or a file into an FSK WAV file",
	Args:  cobra.NoArgs,
	RunE:  runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVarP(&encodeText, "text", "t", "Lutheran Radio",
		"text to embed")
	encodeCmd.Flags().StringVarP(&encodeInput, "in", "i", "",
		"read the payload from this file instead of --text")
	encodeCmd.Flags().StringVarP(&encodeOutput, "out", "o", "special_tuning_sound.wav",
		"output WAV file")
	encodeCmd.Flags().Uint64Var(&encodeSeed, "seed", 0,
		"noise seed, overrides the config (0 keeps it)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	payload := []byte(encodeText)
	if encodeInput != "" {
		data, err := os.ReadFile(encodeInput)
		if err != nil {
			return err
		}
		payload = data
	}

	if encodeSeed != 0 {
		appConfig.Noise.Seed = encodeSeed
	}
	m, err := appConfig.ByteModem()
	if err != nil {
		return err
	}

	bits := modem.BytesToBits(payload)
	log.Info().Bytes("text", payload).Msg("encoding")
	log.Info().Str("binary", modem.BitString(bits)).Msg("encoding")

	samples := m.Modulate(bits)
	sink := &device.WavFile{Path: encodeOutput, BitsPerSample: appConfig.Output.BitsPerSample}
	if err := sink.Write(appConfig.Modem.SampleRate, samples); err != nil {
		return err
	}

	log.Info().
		Str("path", encodeOutput).
		Int("samples", len(samples)).
		Msg("saved audio")
	return nil
}
