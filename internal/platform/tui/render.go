package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gensyn-runner/internal/core"
	"github.com/vovakirdan/gensyn-runner/internal/runner"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorCream:       lipgloss.NewStyle().Foreground(lipgloss.Color("#F5E6C8")),
	core.ColorMocha:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8B6B4E")),
	core.ColorGold:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC857")).Bold(true),
	core.ColorTeal:        lipgloss.NewStyle().Foreground(lipgloss.Color("#2EC4B6")).Bold(true),
	core.ColorDanger:      lipgloss.NewStyle().Foreground(lipgloss.Color("#E63946")),
	core.ColorAccent:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B35")),
	core.ColorViolet:      lipgloss.NewStyle().Foreground(lipgloss.Color("#9B5DE5")),
	core.ColorPlasma:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F15BB5")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// hudBands tints the HUD rows by run status, so a shop stop or a system
// failure reads at a glance even when the overlay is off screen.
var hudBands = map[string]lipgloss.Color{
	runner.StatusMenu.String():     "#2B2118",
	runner.StatusPlaying.String():  "#2B2118",
	runner.StatusShop.String():     "#2A1846",
	runner.StatusGameOver.String(): "#4A1014",
	runner.StatusVictory.String():  "#4A3A0C",
}

// RenderFrame converts a runner frame to a styled string: the HUD rows sit on
// a band tinted by status and the track below keeps the terminal background.
func RenderFrame(s *core.Screen, status string) string {
	band, tinted := hudBands[status]

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		if tinted && y < runner.HUDRows {
			renderRow(&sb, s, y, func(st lipgloss.Style) lipgloss.Style { return st.Background(band) })
		} else {
			renderRow(&sb, s, y, nil)
		}
	}
	return sb.String()
}

// renderRow writes one screen row, grouping adjacent cells of the same color
// into a single styled run. tint, when set, decorates each run's style.
func renderRow(sb *strings.Builder, s *core.Screen, y int, tint func(lipgloss.Style) lipgloss.Style) {
	x := 0
	for x < s.Width() {
		color := s.GetCell(x, y).Color

		var run strings.Builder
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
		if tint != nil {
			style = tint(style)
		}
		sb.WriteString(style.Render(run.String()))
	}
}
