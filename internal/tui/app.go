package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/fault-finder/internal/config"
	"github.com/altin/fault-finder/internal/dataset"
	"github.com/altin/fault-finder/internal/model"
	"github.com/altin/fault-finder/internal/search"
	"github.com/altin/fault-finder/internal/tui/brandsview"
	"github.com/altin/fault-finder/internal/tui/searchview"
	"github.com/altin/fault-finder/internal/ui"
)

type View int

const (
	ViewSearch View = iota
	ViewBrands
)

type App struct {
	cfg     config.Config
	records []model.FaultRecord
	search  *search.Engine
	logger  *slog.Logger
	styles  ui.Styles

	// Views
	searchView searchview.Model
	brandsView brandsview.Model

	// State
	currentView View
	lastQuery   string
	width       int
	height      int
	status      string
	showHelp    bool
}

// NewApp builds the UI over an already validated dataset. records is never
// modified.
func NewApp(cfg config.Config, records []model.FaultRecord, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.Default()
	}
	styles := ui.NewStyles(cfg.Theme)

	a := App{
		cfg:         cfg,
		records:     records,
		search:      search.New(),
		logger:      logger.With("component", "tui"),
		styles:      styles,
		searchView:  searchview.New(styles),
		brandsView:  brandsview.New(dataset.Brands(records), styles),
		currentView: ViewSearch,
		status:      "Type to search",
	}
	if cfg.Query != "" {
		a.searchView.SetQuery(cfg.Query)
		a.runSearch()
	}
	return a
}

func (a App) Init() tea.Cmd {
	return a.searchView.Init()
}

// runSearch recomputes the results for the current input and replaces the
// displayed set. It runs on every change of the input value.
func (a *App) runSearch() {
	query := a.searchView.Query()
	a.lastQuery = query

	results := a.search.Search(query, a.records)
	a.searchView.SetResults(results)

	if strings.TrimSpace(query) == "" {
		a.status = "Type to search"
		return
	}
	a.status = search.Summary(results)
	a.logger.Debug("search", "query", query, "results", len(results))
}

func (a *App) toggleTheme() {
	theme := a.styles.Theme.Toggle()
	a.styles = ui.NewStyles(theme)
	a.searchView.SetStyles(a.styles)
	a.brandsView.SetStyles(a.styles)
	a.logger.Info("theme changed", "theme", theme.String())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case ui.BrandSelectedMsg:
		a.currentView = ViewSearch
		a.searchView.SetQuery(msg.Brand)
		a.runSearch()
		return &a, nil

	case tea.KeyMsg:
		// Help overlay dismisses on any key
		if a.showHelp {
			a.showHelp = false
			return &a, nil
		}

		switch {
		case key.Matches(msg, ui.Keys.ForceQuit):
			return &a, tea.Quit
		case key.Matches(msg, ui.Keys.Theme):
			a.toggleTheme()
			return &a, nil
		}

		if !a.isTyping() {
			switch {
			case key.Matches(msg, ui.Keys.Quit):
				return &a, tea.Quit
			case key.Matches(msg, ui.Keys.Help):
				a.showHelp = true
				return &a, nil
			case key.Matches(msg, ui.Keys.SearchTab):
				a.currentView = ViewSearch
				return &a, nil
			case key.Matches(msg, ui.Keys.BrandsTab):
				a.currentView = ViewBrands
				return &a, nil
			}
		}
	}

	// Keys go to the visible view only; everything else (cursor blink,
	// filter matches) goes to both.
	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey {
		switch a.currentView {
		case ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case ViewBrands:
			a.brandsView, cmd = a.brandsView.Update(msg)
		}
		cmds = append(cmds, cmd)
	} else {
		a.searchView, cmd = a.searchView.Update(msg)
		cmds = append(cmds, cmd)
		a.brandsView, cmd = a.brandsView.Update(msg)
		cmds = append(cmds, cmd)
	}

	if a.searchView.Query() != a.lastQuery {
		a.runSearch()
	}

	return &a, tea.Batch(cmds...)
}

// isTyping reports whether keys should go to a text field rather than the
// app-level shortcuts.
func (a App) isTyping() bool {
	switch a.currentView {
	case ViewSearch:
		return a.searchView.IsInputMode()
	case ViewBrands:
		return a.brandsView.IsFiltering()
	}
	return false
}

func (a *App) propagateSize() {
	// header(1) + tabs(1) + status(1) + pane border(2)
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}

	a.searchView, _ = a.searchView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
	a.brandsView, _ = a.brandsView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
}

// --- View ---

func (a App) View() string {
	header := RenderHeader(a.styles, len(a.records), a.width)
	tabs := a.renderTabs()

	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}
	style := a.styles.PaneFocused.Width(a.width - 2).Height(contentH)

	var content string
	switch a.currentView {
	case ViewSearch:
		content = style.Render(a.searchView.View())
	case ViewBrands:
		content = style.Render(a.brandsView.View())
	}
	if a.showHelp {
		content = style.Render(a.renderHelp())
	}

	statusBar := RenderStatusBar(a.styles, a.status, a.contextHints(), a.width)

	// header(1) + tabs(1) + statusbar(1) = 3 lines of chrome.
	maxContentLines := a.height - 3
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			lines = lines[:maxContentLines]
			content = strings.Join(lines, "\n")
		}
	}

	return header + "\n" + tabs + "\n" + content + "\n" + statusBar
}

func (a App) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Padding(0, 2)
	activeTab := tabStyle.Bold(true).Foreground(ui.ColorPrimary)
	inactiveTab := tabStyle.Foreground(a.styles.Palette.Muted)

	searchTab := inactiveTab.Render("[1] Search")
	brandsTab := inactiveTab.Render("[2] Brands")

	switch a.currentView {
	case ViewSearch:
		searchTab = activeTab.Render("[1] Search")
	case ViewBrands:
		brandsTab = activeTab.Render("[2] Brands")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, searchTab, brandsTab)
}

func (a App) contextHints() string {
	switch a.currentView {
	case ViewSearch:
		if a.searchView.IsInputMode() {
			return "tab:browse  esc:clear  ctrl+t:theme  ctrl+c:quit"
		}
		return "j/k:navigate  tab:type  1/2:tabs  ctrl+t:theme  ?:help  q:quit"
	case ViewBrands:
		if a.brandsView.IsFiltering() {
			if a.brandsView.FilterValue() == "" {
				return "type to filter  esc:cancel"
			}
			return "enter:apply  esc:cancel"
		}
		return "enter:search brand  f:filter  1/2:tabs  ctrl+t:theme  ?:help  q:quit"
	}
	return "?:help  q:quit"
}

func (a App) renderHelp() string {
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := a.styles.Text

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + a.styles.Bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("1 / 2", "Switch tab: Search, Brands"))
	b.WriteString(row("ctrl+t", "Toggle light / dark theme"))
	b.WriteString(row("q / ctrl+c", "Quit"))

	b.WriteString("\n" + a.styles.Bold.Render("  Search") + "\n\n")
	b.WriteString(row("type", "Search fault codes, brands and models"))
	b.WriteString(row("tab", "Switch between typing and browsing results"))
	b.WriteString(row("j / k", "Move between result cards"))
	b.WriteString(row("PgUp/PgDn", "Scroll results"))
	b.WriteString(row("esc", "Clear the query"))

	b.WriteString("\n" + a.styles.Bold.Render("  Brands") + "\n\n")
	b.WriteString(row("enter", "Search for the selected brand"))
	b.WriteString(row("f", "Filter brands"))

	b.WriteString("\n" + a.styles.Muted.Render("  Press any key to close") + "\n")
	return b.String()
}
