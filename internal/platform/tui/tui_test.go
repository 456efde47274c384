package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

// scriptedGame records its inputs and reports whatever state the test sets.
type scriptedGame struct {
	frames  []core.InputFrame
	state   core.GameState
	cleared int
	resets  int
	w, h    int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			cp.Set(a)
		}
	}
	g.frames = append(g.frames, cp)
	return core.StepResult{State: g.state, Cleared: g.cleared}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState   { return g.state }
func (g *scriptedGame) Resize(w, h int)         { g.w, g.h = w, h }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionRotateCCW},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"p", keyRunes("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q", keyRunes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", keyRunes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	assert.Len(t, keys.ShortHelp(), 7)

	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	assert.Equal(t, 7, n)
}

func TestNewModelReservesHelpRow(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 3}, Options{})
	m.Init()

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 80, g.w)
	assert.Equal(t, 29, g.h)
}

func TestKeysReachNextPoll(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 3}, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m, cmd = update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd, "tick should schedule the next poll")
	require.Len(t, g.frames, 1)
	assert.True(t, g.frames[0].Has(core.ActionLeft))
	assert.True(t, g.frames[0].Has(core.ActionHardDrop))

	_, _ = update(t, m, TickMsg(time.Now()))
	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[1].Empty(), "input is cleared after each poll")
}

func TestQuitKey(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 30}, Options{})

	m, cmd := update(t, m, keyRunes("q"))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestGameOverHoldsThenQuits(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Score: 90, Lines: 3, GameOver: true}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 30}, Options{GameOverHold: time.Millisecond})

	m, cmd := update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.True(t, m.finished)

	// No more polls once the game is over.
	_, cmd2 := update(t, m, TickMsg(time.Now()))
	assert.Nil(t, cmd2)
	assert.Len(t, g.frames, 1)

	m, cmd = update(t, m, cmd())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, 90, m.State().Score)
	assert.Equal(t, 3, m.State().Lines)
}

func TestAnyKeyQuitsAfterGameOver(t *testing.T) {
	g := &scriptedGame{state: core.GameState{GameOver: true}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 30}, Options{})

	m, _ = update(t, m, TickMsg(time.Now()))
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, isQuit(cmd))
}

func TestResizeForwardsToGame(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 30}, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 41})
	assert.Equal(t, 100, g.w)
	assert.Equal(t, 40, g.h)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 40, m.screen.Height())
	assert.Zero(t, g.resets, "resize must not restart the session")
}

func TestViewIncludesHelp(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 5}, Options{})

	view := m.View()
	assert.Contains(t, view, "scripted")
	assert.Contains(t, view, "drop")
	assert.Contains(t, view, "quit")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorRed)
	s.DrawTextColor(4, 0, "ef", core.ColorCyan)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out, "ef")
	assert.Contains(t, out, "plain")
	assert.Contains(t, out, "ab")
}

func TestFinalBanner(t *testing.T) {
	over := FinalBanner(core.GameState{Score: 120, Lines: 4, GameOver: true})
	assert.Contains(t, over, "GAME OVER")
	assert.Contains(t, over, "YOUR SCORE: 120")
	assert.Contains(t, over, "LINES: 4")

	quit := FinalBanner(core.GameState{Score: 0})
	assert.Contains(t, quit, "QUIT")
	assert.NotContains(t, quit, "GAME OVER")
}

func TestBlocksSessionThroughModel(t *testing.T) {
	g := blocks.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 31, Seed: 9}, Options{})
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 9}, config.DefaultBlocksConfig(), blocks.NewGenerator(9))

	start := g.Current()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd)

	assert.Equal(t, start.X-1, g.Current().X)
	assert.Contains(t, m.View(), "Score")
}
