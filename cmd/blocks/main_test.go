package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag variables outlive a single Execute.
	flagConfig, flagDifficulty, flagDefaults = "", "", false
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagDefaults = "", "", false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsBlocks(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "blocks")
	assert.Contains(t, out, "Blocks")
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Equal(t, string(config.GetDefaultYAML("blocks")), out)
}

func TestConfigAppliesFileAndPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  line_unit: 25\n"), 0o600))

	out, err := execute(t, "config", "--config", path, "--difficulty", "hard")
	require.NoError(t, err)

	var cfg config.BlocksConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 25, cfg.Scoring.LineUnit)
	assert.Equal(t, 10, cfg.Board.Width)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
}

func TestConfigRejectsBadInput(t *testing.T) {
	_, err := execute(t, "config", "--difficulty", "insane")
	assert.Error(t, err)

	_, err = execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPlayRejectsBadInputBeforeStarting(t *testing.T) {
	_, err := execute(t, "play", "tetris")
	assert.ErrorContains(t, err, "unknown game")

	_, err = execute(t, "play", "--difficulty", "insane")
	assert.ErrorContains(t, err, "unknown difficulty")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board:\n  width: 2\n"), 0o600))
	_, err = execute(t, "play", "--config", bad)
	assert.ErrorContains(t, err, "board.width")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.log")
	logger, closeLog, err := newLogger(path, true)
	require.NoError(t, err)

	logger.Debug("hello", "n", 1)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "blocks")
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("", false)
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeLog())
}
