// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks                   - Play (same as "blocks play")
//	blocks play              - Play a game
//	blocks list              - List available games
//	blocks config            - Print the effective game configuration
//
// Global flags:
//
//	--seed <value>        - RNG seed for a reproducible piece sequence
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file (the terminal is busy)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register games
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks drops tetrominoes onto a 10x20 well. Fill a row to clear it;
the game ends when a new piece has nowhere to spawn.

Available commands:
  play     - Play a game (default)
  list     - Show available games
  config   - Print the effective configuration

Examples:
  blocks
  blocks play --seed 42
  blocks play --difficulty hard --log-file /tmp/blocks.log
  blocks config --config ./configs/blocks.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
