package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

type stubGame struct {
	id       string
	interval time.Duration
	w, h     int
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }
func (s *stubGame) TickInterval() time.Duration          { return s.interval }
func (s *stubGame) Resize(w, h int)                      { s.w, s.h = w, h }

// bareGame implements Game and nothing else.
type bareGame struct{}

func (bareGame) ID() string                           { return "bare" }
func (bareGame) Title() string                        { return "Bare" }
func (bareGame) Reset(core.RuntimeConfig)             {}
func (bareGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (bareGame) Render(*core.Screen)                  {}
func (bareGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	assert.True(t, Exists("zz-stub"))
	assert.False(t, Exists("missing"))

	g, err := Create("aa-stub")
	require.NoError(t, err)
	assert.Equal(t, "aa-stub", g.ID())

	_, err = Create("missing")
	assert.Error(t, err)

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, list, GameInfo{ID: "zz-stub", Title: "Stub zz-stub"})

	assert.Panics(t, func() {
		Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })
	})
}

func TestTickInterval(t *testing.T) {
	fallback := 50 * time.Millisecond

	assert.Equal(t, 10*time.Millisecond, TickInterval(&stubGame{interval: 10 * time.Millisecond}, fallback))
	assert.Equal(t, fallback, TickInterval(&stubGame{}, fallback), "zero interval falls back")
	assert.Equal(t, fallback, TickInterval(bareGame{}, fallback))
}

func TestResize(t *testing.T) {
	g := &stubGame{}
	assert.True(t, Resize(g, 90, 40))
	assert.Equal(t, 90, g.w)
	assert.Equal(t, 40, g.h)

	assert.False(t, Resize(bareGame{}, 90, 40))
}
