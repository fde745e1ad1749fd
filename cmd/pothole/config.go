package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pothole-jumper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config as YAML",
	Long: `Print the game config that play and serve would use, after the
config search order and the difficulty preset are applied.

Config search order:
  1. --config <path>
  2. ~/.arcade/configs/pothole.yaml
  3. ./configs/pothole.yaml
  4. Built-in defaults

Examples:
  pothole config
  pothole config --difficulty hard
  pothole config > ~/.arcade/configs/pothole.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	data, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
