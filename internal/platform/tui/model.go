package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

const (
	// DefaultTickInterval is used for games that do not pace themselves.
	DefaultTickInterval = time.Second / 60

	// DefaultGameOverHold is how long the final board stays up before exit.
	DefaultGameOverHold = 2 * time.Second

	helpHeight = 1
)

// Options tune a Model. The zero value is usable.
type Options struct {
	Logger       *log.Logger
	GameOverHold time.Duration
	Keys         *KeyMap
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	hold   time.Duration

	input    core.InputFrame
	state    core.GameState
	finished bool // game over seen, waiting for the hold to expire
	quitting bool
}

// NewModel creates a model for game. cfg describes the whole terminal; one
// row is kept for the help bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = core.Max(0, cfg.ScreenH-helpHeight)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hold := opts.GameOverHold
	if hold <= 0 {
		hold = DefaultGameOverHold
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   keys,
		help:   help.New(),
		logger: logger,
		hold:   hold,
		input:  core.NewInputFrame(),
	}
}

// Init starts the session and the poll loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
	)
	return tickCmd(registry.TickInterval(m.game, DefaultTickInterval))
}

// Update handles key, resize and timer messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	case gameOverMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleKey records the action for the next poll. Quit ends the program
// at once; after game over any key does.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit || m.finished {
		m.logger.Info("quit", "score", m.State().Score, "lines", m.State().Lines)
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
		m.logger.Debug("input", "action", action)
	}
	return m, nil
}

// handleResize resizes the screen buffer and tells the game, which pauses
// itself while the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(0, msg.Height-helpHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if !registry.Resize(m.game, m.config.ScreenW, m.config.ScreenH) {
		m.logger.Debug("game ignores resize", "game", m.game.ID())
	}
	return m, nil
}

// handleTick runs one poll and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	prev := m.state
	res := m.game.Step(m.input)
	m.input.Clear()
	m.state = res.State

	if res.Cleared > 0 {
		m.logger.Info("lines cleared",
			"count", res.Cleared,
			"lines", res.State.Lines,
			"score", res.State.Score,
		)
	}
	if res.State.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", res.State.Paused)
	}

	if res.State.GameOver {
		m.finished = true
		m.logger.Info("game over", "score", res.State.Score, "lines", res.State.Lines)
		return m, gameOverCmd(m.hold)
	}
	return m, tickCmd(registry.TickInterval(m.game, DefaultTickInterval))
}

// View draws the game and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game's current score, lines and flags.
func (m Model) State() core.GameState {
	return m.game.State()
}

// Run plays game until it ends or the player quits and returns the final
// state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return game.State(), fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
