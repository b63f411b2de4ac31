package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorFailure = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorInfo    = lipgloss.Color("#3B82F6")
)

// Palette holds the colours that change with the theme.
type Palette struct {
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Background lipgloss.Color
	Highlight  lipgloss.Color
	Bar        lipgloss.Color
}

func PaletteFor(t Theme) Palette {
	if t == ThemeDark {
		return Palette{
			Text:       lipgloss.Color("#F9FAFB"),
			Muted:      lipgloss.Color("#9CA3AF"),
			Border:     lipgloss.Color("#374151"),
			Background: lipgloss.Color("#000000"),
			Highlight:  lipgloss.Color("#1F2937"),
			Bar:        lipgloss.Color("#111827"),
		}
	}
	return Palette{
		Text:       lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#D1D5DB"),
		Background: lipgloss.Color("#FFFFFF"),
		Highlight:  lipgloss.Color("#EDE9FE"),
		Bar:        lipgloss.Color("#F3F4F6"),
	}
}

// Styles are the lipgloss styles for one theme.
type Styles struct {
	Theme   Theme
	Palette Palette

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Bold        lipgloss.Style

	Card        lipgloss.Style
	CardFocused lipgloss.Style
	TagBrand    lipgloss.Style
	TagCode     lipgloss.Style
	TagCause    lipgloss.Style
	TagDetails  lipgloss.Style
	TagModel    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	p := PaletteFor(t)
	tag := lipgloss.NewStyle().Bold(true)

	return Styles{
		Theme:   t,
		Palette: p,

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary),

		Title: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Text:  lipgloss.NewStyle().Foreground(p.Text),
		Muted: lipgloss.NewStyle().Foreground(p.Muted),
		Bold:  lipgloss.NewStyle().Bold(true).Foreground(p.Text),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorPrimary).
			Background(p.Highlight).
			Padding(0, 1),

		TagBrand:   tag.Foreground(ColorInfo),
		TagCode:    tag.Foreground(ColorFailure),
		TagCause:   tag.Foreground(ColorWarning),
		TagDetails: tag.Foreground(ColorInfo),
		TagModel:   tag.Foreground(ColorSuccess),
	}
}
