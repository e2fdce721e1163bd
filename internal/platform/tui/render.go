package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orbit/internal/core"
)

// cellStyles maps core.Style to lipgloss styles.
var cellStyles = map[core.Style]lipgloss.Style{
	core.StyleNormal: lipgloss.NewStyle(),
	core.StyleDim:    lipgloss.NewStyle().Faint(true),
	core.StyleBold:   lipgloss.NewStyle().Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Rows()*s.Cols()*2 + s.Rows())

	var run strings.Builder
	for row := range s.Rows() {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < s.Cols() {
			start := s.GetCell(row, col).Style

			run.Reset()
			for col < s.Cols() {
				cell := s.GetCell(row, col)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				col++
			}

			style, ok := cellStyles[start]
			if !ok {
				style = cellStyles[core.StyleNormal]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
