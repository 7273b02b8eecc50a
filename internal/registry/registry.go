// Package registry keeps the set of playable games.
// Games register a factory from init(), so the shell can list and start them
// without importing each game by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

// Game is the contract between a game and the platform loop.
// Implementations hold pure game logic; the platform owns input mapping,
// timing, persistence and terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and in the scores table.
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset starts a new game for the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick with the actions pressed this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	// State reports score, level and the game-over/paused flags.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting. Other games are reset by the platform on resize.
type Resizer interface {
	Resize(width, height int)
}

// ControlsProvider is implemented by games that describe their own key bindings.
type ControlsProvider interface {
	Controls() string
}

// StartLevelSetter is implemented by games that can begin above level zero.
type StartLevelSetter interface {
	SetStartLevel(level int)
}

// GameInfo contains metadata about a registered game.
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

// Register adds a game factory. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
