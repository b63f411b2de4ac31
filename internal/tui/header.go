package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altin/fault-finder/internal/ui"
)

func RenderHeader(s ui.Styles, records int, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorPrimary).
		Render(" Boiler Fault Finder")

	right := s.Muted.Render(text.Pluralize(records, "fault code") + "  |  theme: " + s.Theme.String() + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(s.Palette.Bar).
		Width(width).
		Render(left + padding + right)
}
