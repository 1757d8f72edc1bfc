package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// cellStyle returns the lipgloss style for a cell's colors.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		cells := s.Cells(y)
		x := 0
		for x < len(cells) {
			fg, bg := cells[x].FG, cells[x].BG

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < len(cells) && cells[x].FG == fg && cells[x].BG == bg {
				run.WriteRune(cells[x].Rune)
				x++
			}

			sb.WriteString(cellStyle(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
