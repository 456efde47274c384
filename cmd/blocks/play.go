package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start a game. The game defaults to "blocks".

Controls:
  Left/Right   - Move
  Up           - Rotate clockwise
  Down         - Rotate counterclockwise
  Space        - Drop one row now
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Normal pacing, speeds up as lines are cleared
  normal - Starts 30% faster, speeds up as lines are cleared
  hard   - Starts 70% faster, speeds up as lines are cleared
  fixed  - Pacing depends only on cleared lines

Examples:
  blocks play
  blocks play --seed 7
  blocks play --difficulty hard
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "blocks"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'blocks list')", gameID)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	// Reset falls back to defaults on a bad file; fail loudly here instead.
	if flagConfig != "" {
		if _, err := config.LoadBlocks(flagConfig); err != nil {
			return err
		}
	}
	blocks.SetConfigPath(flagConfig)
	blocks.SetDifficultyPreset(flagDifficulty)

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // log file, nothing left to report to

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", termErr)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	final, err := tui.Run(game, cfg, tui.Options{Logger: logger})
	if err != nil {
		logger.Error("session failed", "error", err)
		return err
	}

	fmt.Println(tui.FinalBanner(final))
	return nil
}
