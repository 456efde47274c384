package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Loads the configuration the same way "play" does and prints it as YAML.
Search order: --config, ~/.blocks/configs/blocks.yaml, ./configs/blocks.yaml,
then the built-in defaults. --difficulty is applied on top.

Use --defaults to print the built-in file instead, as a starting point for
your own config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML("blocks"))
		return err
	}

	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyBlocksPreset(&cfg, preset)
	}

	data, err := config.MarshalBlocks(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
