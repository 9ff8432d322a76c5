package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invasion/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the tuning file",
	Long: `Print the default tuning YAML, a starting point for --config or
~/.invasion/configs/invasion.yaml.

With --effective, print the tuning that would actually be used after the
search path and --config are applied.

Examples:
  invasion config > ~/.invasion/configs/invasion.yaml
  invasion config --effective --config ./hard.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved tuning instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadInvasion(flagConfig)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
