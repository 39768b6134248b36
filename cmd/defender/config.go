package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/games/defender"
)

var (
	flagConfigResolved bool
	flagConfigPath     string
	flagConfigPreset   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in default configuration as YAML.

Save it to ~/.arcade/configs/defender.yaml or ./configs/defender.yaml and
edit it to change ship handling, weapons, enemies and spawning.

With --resolved, print the configuration a game would actually use after
searching the config locations and applying --difficulty.

Examples:
  defender config > ~/.arcade/configs/defender.yaml
  defender config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration")
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagConfigPreset, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigResolved {
		os.Stdout.Write(config.GetDefaultYAML(defender.ID))
		return
	}

	preset, err := config.ParsePreset(flagConfigPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadDefender(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyDefenderPreset(&cfg, preset)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
