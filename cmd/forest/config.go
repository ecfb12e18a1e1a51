package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-journey/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the custom
config file and the difficulty preset are applied.

The output is valid input for --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadConfig reads the config named by --config and applies --difficulty.
func loadConfig() (config.ForestConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg, nil
}
