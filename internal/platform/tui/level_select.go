package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/games/tetris"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/registry"
)

// LevelMode is the way a game is started from the level selector.
type LevelMode int

const (
	LevelModeMarathon LevelMode = iota // Configured start level, speed rises with lines
	LevelModeFixed                     // Speed never changes
	LevelModeSelect                    // Pick the start level
)

var levelModes = []string{
	"Marathon",
	"Fixed speed",
	"Select level...",
}

// LevelSelection holds the user's choice from the level selector.
type LevelSelection struct {
	Fixed bool
	Level int // -1 keeps the configured start level
}

// difficultySetter is implemented by games that accept a per-instance preset.
type difficultySetter interface {
	SetDifficulty(preset config.DifficultyPreset)
}

// Apply configures a single game instance with the selection.
func (s LevelSelection) Apply(game registry.Game) {
	if d, ok := game.(difficultySetter); ok && s.Fixed {
		d.SetDifficulty(config.DifficultyFixed)
	}
	if l, ok := game.(registry.StartLevelSetter); ok && s.Level >= 0 {
		l.SetStartLevel(s.Level)
	}
}

// ApplyGlobal stores the selection as the launch options of the next Tetris game.
func (s LevelSelection) ApplyGlobal() {
	if s.Fixed {
		tetris.SetDifficultyPreset(config.DifficultyFixed)
	}
	tetris.SetStartLevel(s.Level)
}

// LevelSelectModel lets users choose a mode and starting level.
type LevelSelectModel struct {
	policy        tetris.Policy
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     LevelSelection
	standalone    bool // Quit the program when a choice is made
	choosing      bool
	quitting      bool
	back          bool
}

// NewLevelSelectModel creates a level selector. cfg supplies the fall speeds shown per level.
func NewLevelSelectModel(cfg config.TetrisConfig, width, height int) LevelSelectModel {
	return LevelSelectModel{
		policy:    tetris.NewPolicy(cfg),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m LevelSelectModel) done() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

func (m LevelSelectModel) choose(sel LevelSelection) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = sel
	return m, m.done()
}

func (m LevelSelectModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(levelModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch LevelMode(m.cursor) {
		case LevelModeMarathon:
			return m.choose(LevelSelection{Level: -1})
		case LevelModeFixed:
			return m.choose(LevelSelection{Fixed: true, Level: -1})
		case LevelModeSelect:
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, m.done()
	}

	return m, nil
}

func (m LevelSelectModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < tetris.MaxStartLevel {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.choose(LevelSelection{Level: m.levelCursor})
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode/level selection.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m LevelSelectModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, mode := range levelModes {
		line := "  " + mode
		if i == m.cursor {
			line = selectedStyle.Render("> " + mode)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

func (m LevelSelectModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for level := 0; level <= tetris.MaxStartLevel; level++ {
		line := fmt.Sprintf("Level %d  (%dms per row)", level, m.policy.FallInterval(level).Milliseconds())
		if level == m.levelCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelSelectModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selection and returns the selection.
// A nil selection means the user went back or quit.
func RunLevelSelector(tcfg config.TetrisConfig, cfg core.RuntimeConfig) (*LevelSelection, core.RuntimeConfig, error) {
	model := NewLevelSelectModel(tcfg, cfg.ScreenW, cfg.ScreenH)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
