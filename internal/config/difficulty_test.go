package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "lines", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 0.3, d.Level(Progress{Lines: 1000}), 1e-9)
	assert.InDelta(t, 1.3, d.Speed(Progress{Lines: 1000}), 1e-9)
}

func TestDifficultyLinesProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "lines", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 2.0},
	})

	tests := []struct {
		lines int
		level float64
		speed float64
	}{
		{0, 0.0, 1.0},
		{50, 0.5, 2.0},
		{100, 1.0, 3.0},
		{500, 1.0, 3.0},
	}

	for _, tt := range tests {
		p := Progress{Lines: tt.lines}
		assert.InDelta(t, tt.level, d.Level(p), 1e-9, "lines=%d", tt.lines)
		assert.InDelta(t, tt.speed, d.Speed(p), 1e-9, "lines=%d", tt.lines)
	}
}

func TestDifficultyInterpolatesFromInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	})

	assert.InDelta(t, 0.5, d.Level(Progress{}), 1e-9)
	assert.InDelta(t, 0.75, d.Level(Progress{Score: 500}), 1e-9)
}

func TestDifficultyNoneAndZeroMaxAt(t *testing.T) {
	none := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "none"},
	})
	assert.False(t, none.IsEnabled())
	assert.Zero(t, none.Level(Progress{Lines: 10}))

	zero := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 0},
	})
	assert.InDelta(t, 1.0, zero.Level(Progress{Ticks: 5}), 1e-9)
}
