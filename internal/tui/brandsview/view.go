package brandsview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altin/fault-finder/internal/dataset"
	"github.com/altin/fault-finder/internal/ui"
)

type brandDelegate struct {
	styles *ui.Styles
}

func (d brandDelegate) Height() int                              { return 1 }
func (d brandDelegate) Spacing() int                             { return 0 }
func (d brandDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d brandDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(brandItem)
	if !ok {
		return
	}

	s := *d.styles
	line := fmt.Sprintf(" %s  %s", s.Bold.Render(bi.count.Brand),
		s.Muted.Render(text.Pluralize(bi.count.Count, "fault code")))

	if index == m.Index() {
		line = lipgloss.NewStyle().Background(s.Palette.Highlight).Width(m.Width()).Render(line)
	}
	fmt.Fprint(w, line)
}

type brandItem struct {
	count dataset.BrandCount
}

func (b brandItem) FilterValue() string {
	return b.count.Brand
}

type Model struct {
	list   list.Model
	styles *ui.Styles
	width  int
	height int
}

func New(counts []dataset.BrandCount, styles ui.Styles) Model {
	s := &styles
	items := make([]list.Item, len(counts))
	for i, c := range counts {
		items[i] = brandItem{count: c}
	}

	l := list.New(items, brandDelegate{styles: s}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("brand", "brands")
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = ui.Keys.Filter
	l.DisableQuitKeybindings()

	return Model{list: l, styles: s}
}

// SetStyles swaps the theme in place; the delegate shares the pointer.
func (m *Model) SetStyles(styles ui.Styles) {
	*m.styles = styles
}

func (m Model) SelectedBrand() string {
	if item, ok := m.list.SelectedItem().(brandItem); ok {
		return item.count.Brand
	}
	return ""
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFiltering() && key.Matches(msg, ui.Keys.Enter) {
			brand := m.SelectedBrand()
			if brand == "" {
				return m, nil
			}
			return m, func() tea.Msg { return ui.BrandSelectedMsg{Brand: brand} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No brands loaded"
	}
	return m.list.View()
}

// FilterValue is the text typed into the filter input so far.
func (m Model) FilterValue() string {
	return m.list.FilterValue()
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}
