package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadowflap/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config as YAML",
	Long: `Print the game config that play and serve would use.

The config is searched in this order:
  1. --config <path>
  2. ~/.arcade/configs/shadowflap.yaml
  3. ./configs/shadowflap.yaml
  4. built-in defaults

Examples:
  shadowflap config > ~/.arcade/configs/shadowflap.yaml
  shadowflap config --config ./my-shadowflap.yaml
  shadowflap config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := config.DefaultShadowFlapConfig()
	if !flagDefaults {
		loaded, err := config.LoadShadowFlap(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
