package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way play does and prints it as YAML.

Search order: --config, ~/.match3/configs/match3.yaml, ./configs/match3.yaml,
then the built-in defaults.

Examples:
  match3 config > ~/.match3/configs/match3.yaml
  match3 config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML with comments")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML("match3"))
		return err
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
