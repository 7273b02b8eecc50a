package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

// ansiCodes is the 256-color foreground of each core.Color. ColorDefault is
// left to the terminal.
var ansiCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var spanStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(code)
	}
	return styles
}()

// span is a run of adjacent cells on one row that share a color.
type span struct {
	color core.Color
	text  []rune
}

// render styles the span. Uncolored and unknown colors are written as is.
func (sp span) render() string {
	style, ok := spanStyles[sp.color]
	if !ok {
		return string(sp.text)
	}
	return style.Render(string(sp.text))
}

// rowSpans splits row y of s into same-colored spans, left to right.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	for x := range s.Width() {
		c := s.GetCell(x, y)
		if n := len(spans); n > 0 && spans[n-1].color == c.Color {
			spans[n-1].text = append(spans[n-1].text, c.Rune)
			continue
		}
		spans = append(spans, span{color: c.Color, text: []rune{c.Rune}})
	}
	return spans
}

// RenderScreen converts a Screen buffer to a styled string for display, one
// escape sequence per span.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		var sb strings.Builder
		for _, sp := range rowSpans(s, y) {
			sb.WriteString(sp.render())
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
