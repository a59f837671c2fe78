package main

import (
	"fmt"

	"fsktone/pkg/device"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	tuningCount  int
	tuningPrefix string
	tuningSeed   uint64
)

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Write random tuning sounds that carry no data",
	Args:  cobra.NoArgs,
	RunE:  runTuning,
}

func init() {
	rootCmd.AddCommand(tuningCmd)

	tuningCmd.Flags().IntVarP(&tuningCount, "count", "n", 0,
		"number of files, overrides the config (0 keeps it)")
	tuningCmd.Flags().StringVarP(&tuningPrefix, "prefix", "p", "",
		"file name prefix, overrides the config")
	tuningCmd.Flags().Uint64Var(&tuningSeed, "seed", 0,
		"seed, overrides the config (0 keeps it)")
}

func runTuning(cmd *cobra.Command, args []string) error {
	if tuningCount > 0 {
		appConfig.Tuning.Count = tuningCount
	}
	if tuningPrefix != "" {
		appConfig.Tuning.Prefix = tuningPrefix
	}
	if tuningSeed != 0 {
		appConfig.Noise.Seed = tuningSeed
	}

	if _, err := appConfig.ModemConfig(); err != nil {
		return err
	}

	var g errgroup.Group
	for i := 1; i <= appConfig.Tuning.Count; i++ {
		gen := appConfig.TuningGenerator(i)
		if err := gen.Validate(); err != nil {
			return err
		}
		path := fmt.Sprintf("%s_%d.wav", appConfig.Tuning.Prefix, i)
		g.Go(func() error {
			sink := &device.WavFile{Path: path, BitsPerSample: appConfig.Output.BitsPerSample}
			if err := sink.Write(gen.SampleRate, gen.Generate()); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Info().Str("path", path).Msg("saved tuning sound")
			return nil
		})
	}
	return g.Wait()
}
