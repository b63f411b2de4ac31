package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/fault-finder/internal/ui"
)

func RenderStatusBar(s ui.Styles, status, hints string, width int) string {
	left := s.Muted.Render("  " + status)
	help := s.Muted.Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(s.Palette.Bar).
		Width(width).
		Render(left + padding + help)
}
