package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bloom/internal/core"
)

// palette maps screen colors to terminal colors. Neutral tones adapt to
// light backgrounds so labels and gauges stay readable.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.AdaptiveColor{Light: "136", Dark: "3"},
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.AdaptiveColor{Light: "0", Dark: "7"},
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.AdaptiveColor{Light: "166", Dark: "11"},
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.AdaptiveColor{Light: "8", Dark: "15"},
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.AdaptiveColor{Light: "250", Dark: "245"},
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, tc := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(tc)
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string, one styled
// run per stretch of same-colored cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
