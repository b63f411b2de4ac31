package searchview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altin/fault-finder/internal/model"
	"github.com/altin/fault-finder/internal/search"
	"github.com/altin/fault-finder/internal/ui"
)

type Mode int

const (
	ModeInput Mode = iota
	ModeBrowse
)

// chrome is the label line, the input line and the gap below them.
const chrome = 3

type Model struct {
	input    textinput.Model
	viewport viewport.Model
	styles   ui.Styles
	results  []model.FaultRecord
	offsets  []int // first content line of each card
	mode     Mode
	cursor   int
	width    int
	height   int
	ready    bool
}

func New(styles ui.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a fault code, model or brand name"
	ti.CharLimit = 0 // queries are not length limited
	ti.Focus()

	return Model{
		input:  ti,
		styles: styles,
	}
}

func (m *Model) SetStyles(styles ui.Styles) {
	m.styles = styles
	m.refresh()
}

func (m Model) Query() string {
	return m.input.Value()
}

// SetQuery replaces the input text and returns to input mode.
func (m *Model) SetQuery(q string) {
	m.input.SetValue(q)
	m.input.CursorEnd()
	m.Focus()
}

// SetResults replaces the displayed result set. The cursor stays on the same
// record when it is still part of the new results.
func (m *Model) SetResults(results []model.FaultRecord) {
	selected := ""
	if r := m.Selected(); r != nil {
		selected = r.Key()
	}

	m.results = results
	m.cursor = 0
	for i, r := range results {
		if r.Key() == selected {
			m.cursor = i
			break
		}
	}
	m.refresh()
	m.scrollToCursor()
}

func (m Model) Results() []model.FaultRecord {
	return m.results
}

func (m Model) Selected() *model.FaultRecord {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return nil
	}
	return &m.results[m.cursor]
}

func (m Model) IsInputMode() bool {
	return m.mode == ModeInput
}

func (m *Model) Focus() tea.Cmd {
	m.mode = ModeInput
	m.refresh()
	return m.input.Focus()
}

func (m *Model) browse() {
	m.mode = ModeBrowse
	m.input.Blur()
	m.refresh()
	m.scrollToCursor()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == ModeInput {
			switch msg.String() {
			case "tab":
				m.browse()
				return m, nil
			case "esc":
				m.input.SetValue("")
				return m, nil
			case "pgup", "pgdown":
				var cmd tea.Cmd
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, ui.Keys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
				m.refresh()
				m.scrollToCursor()
			}
		case key.Matches(msg, ui.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
				m.scrollToCursor()
			}
		case key.Matches(msg, ui.Keys.PageUp), key.Matches(msg, ui.Keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case key.Matches(msg, ui.Keys.Tab), key.Matches(msg, ui.Keys.Back), msg.String() == "/":
			return m, m.Focus()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		h := msg.Height - chrome
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.refresh()
		return m, nil
	}

	// Cursor blink and other textinput messages.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	content, offsets := m.render()
	m.offsets = offsets
	m.viewport.SetContent(content)
}

func (m *Model) scrollToCursor() {
	if !m.ready || m.cursor >= len(m.offsets) {
		return
	}
	top := m.offsets[m.cursor]
	bottom := m.viewport.TotalLineCount()
	if m.cursor+1 < len(m.offsets) {
		bottom = m.offsets[m.cursor+1]
	}
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// render builds the result listing and the line offset of every card.
// A blank query renders nothing.
func (m Model) render() (string, []int) {
	if strings.TrimSpace(m.input.Value()) == "" {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(m.styles.Bold.Render(search.Summary(m.results)) + "\n\n")
	lines := 2

	offsets := make([]int, 0, len(m.results))
	for i, r := range m.results {
		offsets = append(offsets, lines)
		card := renderCard(m.styles, r, m.width-2, m.mode == ModeBrowse && i == m.cursor)
		b.WriteString(card + "\n")
		lines += strings.Count(card, "\n") + 1
	}
	return b.String(), offsets
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Fault Search") + "\n")
	b.WriteString(m.input.View() + "\n\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	}
	return b.String()
}
