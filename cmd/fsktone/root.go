package main

import (
	"fmt"
	"os"
	"strings"

	"fsktone/internal/config"
	"fsktone/internal/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFile string
	logLevel   string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fsktone",
	Short: "Hide text in an FSK tuning sound and read it back",
	Long: `fsktone encodes a byte string as a two-tone FSK waveform, one tone
window per bit, and decodes a captured WAV file by picking the dominant
tone of each window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, viper.GetViper()); err != nil {
			return err
		}
		logger.Init(viper.GetString("log_level"), nil)
		return loadConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"YAML config file (defaults apply when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetEnvPrefix("FSKTONE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "info")
}

func loadConfig() error {
	path := viper.GetString("config")
	if path == "" {
		appConfig = config.Default()
		return nil
	}

	c, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Debug().Str("path", path).Msg("config loaded")
	appConfig = c
	return nil
}

// bindFlags lets FSKTONE_<FLAG> fill any command flag left unset on the
// command line, e.g. FSKTONE_WORKERS=4 for decode --workers.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := cmd.Name() + "." + f.Name
		envVar := "FSKTONE_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if err := v.BindEnv(key, envVar); err != nil {
			lastErr = err
			return
		}

		if !f.Changed && v.IsSet(key) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(key))); err != nil {
				lastErr = err
			}
		}
	})

	return lastErr
}
