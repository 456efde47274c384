// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import "fmt"

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Board      BlocksBoard      `yaml:"board"`
	Scoring    BlocksScoring    `yaml:"scoring"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksBoard holds the board construction parameters.
type BlocksBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksScoring defines how cleared lines are scored.
type BlocksScoring struct {
	LineUnit int `yaml:"line_unit"` // Score for one line; n lines score n*n*LineUnit
}

// PacingConfig defines the input poll interval and gravity rate.
type PacingConfig struct {
	BaseMicros   int `yaml:"base_micros"`
	StepMicros   int `yaml:"step_micros"`    // Taken off per LinesPerStep lines cleared
	LinesPerStep int `yaml:"lines_per_step"`
	Divisor      int `yaml:"divisor"`
	PollsPerDrop int `yaml:"polls_per_drop"` // Polls between gravity steps
	MinMicros    int `yaml:"min_micros"`     // Floor for the poll interval
}

// Validate reports the first field that would make the game unplayable.
func (c BlocksConfig) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("config: board.width must be at least 4, got %d", c.Board.Width)
	case c.Board.Height < 4:
		return fmt.Errorf("config: board.height must be at least 4, got %d", c.Board.Height)
	case c.Scoring.LineUnit < 0:
		return fmt.Errorf("config: scoring.line_unit must not be negative, got %d", c.Scoring.LineUnit)
	case c.Pacing.Divisor <= 0:
		return fmt.Errorf("config: pacing.divisor must be positive, got %d", c.Pacing.Divisor)
	case c.Pacing.LinesPerStep <= 0:
		return fmt.Errorf("config: pacing.lines_per_step must be positive, got %d", c.Pacing.LinesPerStep)
	case c.Pacing.PollsPerDrop <= 0:
		return fmt.Errorf("config: pacing.polls_per_drop must be positive, got %d", c.Pacing.PollsPerDrop)
	case c.Pacing.MinMicros <= 0:
		return fmt.Errorf("config: pacing.min_micros must be positive, got %d", c.Pacing.MinMicros)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
