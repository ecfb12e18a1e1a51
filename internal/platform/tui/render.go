package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/forest-journey/internal/core"
)

// styleCache maps core.Color to lipgloss styles, built on first use.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) get(color core.Color) lipgloss.Style {
	if s, ok := c[color]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if color != core.ColorDefault && color.IsValid() {
		s = s.Foreground(lipgloss.Color(string(color)))
	}
	c[color] = s
	return s
}

var colorStyles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
