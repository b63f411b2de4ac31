package searchview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/altin/fault-finder/internal/model"
	"github.com/altin/fault-finder/internal/ui"
)

// renderCard draws one fault record. Cause and details sections are left out
// when absent or blank.
func renderCard(s ui.Styles, r model.FaultRecord, width int, focused bool) string {
	sections := []string{
		section(s.TagBrand.Render("■ Brand"), s.Bold.Render(r.Brand)),
		section(s.TagCode.Render("▲ Fault Code"), s.Text.Render(r.FaultCode)),
	}
	if cause, ok := r.Cause(); ok && cause != "" {
		sections = append(sections, section(s.TagCause.Render("✱ Fault Cause"), s.Text.Render(cause)))
	}
	if check, ok := r.Check(); ok && check != "" {
		sections = append(sections, section(s.TagDetails.Render("ℹ Fault Details"), s.Text.Render(check)))
	}
	sections = append(sections, section(s.TagModel.Render("≡ Model(s)"), s.Text.Render(r.Model)))

	style := s.Card
	if focused {
		style = s.CardFocused
	}
	// Border takes two columns.
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(sections, "\n"))
}

func section(tag, value string) string {
	return lipgloss.JoinVertical(lipgloss.Left, tag, value)
}
