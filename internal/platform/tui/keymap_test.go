package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", typeKey(tea.KeyLeft), core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"right arrow", typeKey(tea.KeyRight), core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"down arrow", typeKey(tea.KeyDown), core.ActionDown, false},
		{"up arrow rotates", typeKey(tea.KeyUp), core.ActionRotate, false},
		{"x rotates", runeKey("x"), core.ActionRotate, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"escape", typeKey(tea.KeyEsc), core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", typeKey(tea.KeyCtrlC), core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(typeKey(tea.KeyLeft), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey("z"), &frame))
	assert.True(t, frame.Has(core.ActionLeft))
	assert.Len(t, frame.Actions, 1)

	assert.True(t, km.MapKeyToFrame(runeKey("q"), &frame))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(typeKey(tea.KeyUp)))
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runeKey("j")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(typeKey(tea.KeyEnter)))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(typeKey(tea.KeyEsc)))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(typeKey(tea.KeyTab)))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey("z")))
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultGameKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	assert.Len(t, keys.FullHelp(), 2)
}
