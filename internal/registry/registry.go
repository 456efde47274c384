// Package registry keeps the set of playable games. Games register a factory
// from init(), and the CLI and terminal driver look them up by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Game is the contract between a game simulation and the terminal driver.
// Implementations hold pure logic; timing, key mapping and drawing to the
// terminal belong to the driver.
type Game interface {
	// ID returns the identifier used on the command line.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step runs one input poll and reports the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into a cleared screen buffer.
	Render(dst *core.Screen)

	// State returns score, lines and the game-over and pause flags.
	State() core.GameState
}

// Paced is implemented by games whose poll interval changes during play.
// The driver asks for the interval before scheduling every tick.
type Paced interface {
	TickInterval() time.Duration
}

// Resizable is implemented by games that react to terminal resizes without
// restarting.
type Resizable interface {
	Resize(width, height int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// TickInterval returns the game's current poll interval, or fallback when
// the game does not pace itself.
func TickInterval(g Game, fallback time.Duration) time.Duration {
	if p, ok := g.(Paced); ok {
		if d := p.TickInterval(); d > 0 {
			return d
		}
	}
	return fallback
}

// Resize forwards a terminal resize to games that support it and reports
// whether the game handled it.
func Resize(g Game, width, height int) bool {
	r, ok := g.(Resizable)
	if ok {
		r.Resize(width, height)
	}
	return ok
}
