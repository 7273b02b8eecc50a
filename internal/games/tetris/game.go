package tetris

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/registry"
)

// MaxStartLevel is the highest level offered by the level selector.
const MaxStartLevel = 9

// Package-level launch options, set by the CLI or menu before a game is created.
var (
	optsMu             sync.Mutex
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel = -1
)

// SetConfigPath sets a custom config file. Empty means use the search path.
func SetConfigPath(path string) {
	optsMu.Lock()
	defer optsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	optsMu.Lock()
	defer optsMu.Unlock()
	difficultyPreset = preset
}

// SetStartLevel overrides the starting level for the next game created.
// A negative level keeps the configured one.
func SetStartLevel(level int) {
	optsMu.Lock()
	defer optsMu.Unlock()
	selectedStartLevel = clampStartLevel(level)
}

// clampStartLevel folds every negative level into -1, meaning "use config".
func clampStartLevel(level int) int {
	return core.Clamp(level, -1, MaxStartLevel)
}

// GetStartLevel returns the pending start level override, or -1.
func GetStartLevel() int {
	optsMu.Lock()
	defer optsMu.Unlock()
	return selectedStartLevel
}

func takeLaunchOptions() (string, config.DifficultyPreset, int) {
	optsMu.Lock()
	defer optsMu.Unlock()
	level := selectedStartLevel
	selectedStartLevel = -1 // Reset after use
	return configPath, difficultyPreset, level
}

const bannerSeconds = 1

// Game adapts a Session to the arcade platform loop.
type Game struct {
	session *Session
	cfg     config.TetrisConfig
	err     error // config problem; shown instead of the board
	rng     *rand.Rand

	tick     uint64
	tickRate int
	tickDur  time.Duration

	screenW int
	screenH int

	paused     bool
	startLevel int                     // -1 until the first Reset captures it
	preset     config.DifficultyPreset // overrides the package-level preset when set

	banner      string
	bannerTicks int
}

// New creates a Tetris game.
func New() *Game {
	return &Game{startLevel: -1}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads configuration and starts a new session.
// The launch options are consumed on the first Reset; restarts keep them.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed)) //#nosec G404 -- gameplay randomness
	g.tick = 0
	g.tickRate = rc.TickRateOrDefault()
	g.tickDur = time.Second / time.Duration(g.tickRate)
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.banner = ""
	g.bannerTicks = 0

	if g.session == nil && g.err == nil {
		g.cfg, g.err = g.loadConfig()
	}
	if g.err != nil {
		g.session = nil
		return
	}

	s, err := NewSession(g.cfg, g.rng.Int63())
	if err != nil {
		g.err = err
		g.session = nil
		return
	}
	g.session = s
}

func (g *Game) loadConfig() (config.TetrisConfig, error) {
	path, preset, level := takeLaunchOptions()

	cfg, err := config.LoadTetris(path)
	if err != nil {
		return cfg, err
	}
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyTetrisPreset(&cfg, preset)
	if level >= 0 {
		g.startLevel = level
	}
	if g.startLevel >= 0 {
		cfg.Difficulty.StartLevel = g.startLevel
	}
	return cfg, cfg.Validate()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.IsGameOver() {
		g.session.Reset()
		g.paused = false
		g.banner = ""
		g.bannerTicks = 0
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.IsGameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall() || g.session.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	g.session.Advance(g.tickDur)
	g.consumeEvents()

	return core.StepResult{State: g.State()}
}

// applyInput maps platform actions to session intents. Hard drop goes last so
// a same-frame shift or rotation lands where the player aimed.
func (g *Game) applyInput(in core.InputFrame) {
	s := g.session
	if in.Has(core.ActionLeft) {
		s.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.MoveRight()
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionRotate) {
		s.Rotate()
	}
	if in.Has(core.ActionDown) {
		s.SoftDrop()
	}
	if in.Has(core.ActionDrop) {
		s.HardDrop()
	}
}

func (g *Game) consumeEvents() {
	for _, ev := range g.session.DrainEvents() {
		switch e := ev.(type) {
		case LinesClearedEvent:
			g.showBanner(clearName(e.Count))
		case LevelUpEvent:
			if g.bannerTicks == 0 {
				g.showBanner("LEVEL UP")
			}
		}
	}
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTicks = bannerSeconds * g.tickRate
}

func clearName(n int) string {
	switch n {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	case 4:
		return "TETRIS!"
	default:
		return ""
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		GameOver: g.session.IsGameOver(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying engine, or nil after a config error.
func (g *Game) Session() *Session {
	return g.session
}

// Err returns the configuration error that prevented the game from starting.
func (g *Game) Err() error {
	return g.err
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→ Move | ↑/X Rotate | ↓ Soft drop | Space Drop | P Pause | R Restart | Q Quit"
}

// SetStartLevel overrides the starting level of this game instance, for
// callers that own one game per connection. It takes effect on the next Reset
// and persists across restarts.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = clampStartLevel(level)
	g.session = nil
	g.err = nil
}

// SetDifficulty selects a difficulty preset for this game instance only.
// It takes effect on the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
	g.session = nil
	g.err = nil
}

// Resize updates the screen size without disturbing the running game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}
