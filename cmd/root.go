package cmd

import (
	"fmt"
	"os"

	"dentalflow-backend/config"
	"dentalflow-backend/logger"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var envFile string

var rootCmd = &cobra.Command{
	Use:   "dentalflow",
	Short: "DentalFlow practice management API",
	Long: `DentalFlow serves the REST API for a dental practice: patients, dentists,
appointments, cases, invoices, inventory, messaging and reports.

Configuration is read from the environment, optionally seeded from a .env file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")
}

// loadConfig reads configuration and initializes the global logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if _, err := logger.Setup(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return nil, fmt.Errorf("logger setup: %w", err)
	}
	return cfg, nil
}
