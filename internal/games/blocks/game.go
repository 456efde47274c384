// Package blocks implements a falling-block puzzle game.
// Pieces drop onto a fixed grid; completed rows are removed and scored, and
// the game ends when a new piece has no room to spawn.
package blocks

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// Game drives one session: it owns the board, the falling and queued pieces,
// and the score and line counters.
type Game struct {
	cfg        config.BlocksConfig
	difficulty *config.DifficultyManager
	source     Source
	board      *Board

	current Piece
	next    Piece

	score int
	lines int
	polls int // polls since the last gravity step
	tick  uint64

	screenW  int
	screenH  int
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a new game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset loads configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, cfg, NewGenerator(runtime.Seed))
}

// ResetWith starts a new session with an explicit configuration and piece
// source.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.BlocksConfig, src Source) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.source = src

	g.board = NewBoard(cfg.Board.Width, cfg.Board.Height)
	g.board.SetScoreUnit(cfg.Scoring.LineUnit)

	g.score = 0
	g.lines = 0
	g.polls = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.checkScreenSize()

	g.current = src.Next(g.board.Width())
	g.next = src.Next(g.board.Width())
	g.board.Place(g.current)
}

// Resize updates the screen size without restarting the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for board and sidebar.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step runs one input poll. At most one movement command is applied; every
// PollsPerDrop polls, or at once on HardDrop, the piece falls one row.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.current = g.board.MoveHorizontal(g.current, -1)
	case in.Has(core.ActionRight):
		g.current = g.board.MoveHorizontal(g.current, 1)
	case in.Has(core.ActionRotateCW):
		g.current = g.board.Rotate(g.current, Clockwise)
	case in.Has(core.ActionRotateCCW):
		g.current = g.board.Rotate(g.current, CounterClockwise)
	}

	g.polls++
	if g.polls < g.cfg.Pacing.PollsPerDrop && !in.Has(core.ActionHardDrop) {
		return core.StepResult{State: g.State()}
	}
	g.polls = 0

	return g.applyGravity()
}

// applyGravity advances the current piece and handles lock and game over.
func (g *Game) applyGravity() core.StepResult {
	res, err := g.board.AdvanceGravity(g.current, g.source)
	if errors.Is(err, ErrSpawnBlocked) {
		g.score += res.Score
		g.lines += res.Lines
		g.gameOver = true
		return core.StepResult{State: g.State(), Locked: true, Cleared: res.Lines}
	}

	if res.Outcome == Falling {
		g.current = res.Piece
		return core.StepResult{State: g.State()}
	}

	g.score += res.Score
	g.lines += res.Lines

	// Promote the queued piece. It spawns at the same spot as the piece the
	// board just checked, but its shape differs, so check it too.
	g.current = g.next
	g.next = res.Piece
	if !g.board.CanPlace(g.current) {
		g.gameOver = true
	} else {
		g.board.Place(g.current)
	}

	return core.StepResult{State: g.State(), Locked: true, Cleared: res.Lines}
}

// TickInterval returns the delay until the next input poll.
func (g *Game) TickInterval() time.Duration {
	interval := PollInterval(g.cfg.Pacing, g.lines)
	speed := g.difficulty.Speed(config.Progress{
		Score: g.score,
		Lines: g.lines,
		Ticks: int(g.tick),
	})
	if speed > 1 {
		interval = time.Duration(float64(interval) / speed)
	}
	return interval
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Board exposes the play field for rendering and inspection.
func (g *Game) Board() *Board {
	return g.board
}

// Current returns the falling piece.
func (g *Game) Current() Piece {
	return g.current
}

// Next returns the queued piece shown in the preview.
func (g *Game) Next() Piece {
	return g.next
}
