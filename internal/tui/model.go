// Package tui is the interactive terminal dashboard: an estimates tab with
// live search and status filtering, and a cash-flow tab.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"leton/internal/cache"
	"leton/internal/cashflow"
	"leton/internal/core"
	"leton/internal/ledger"
	"leton/internal/render"
)

// Tab identifies the active dashboard tab.
type Tab int

const (
	TabEstimates Tab = iota
	TabCashFlow
)

func (t Tab) String() string {
	if t == TabCashFlow {
		return "Cash Flow"
	}
	return "Estimates & Actuals"
}

// View is the estimates tab layout.
type View int

const (
	ViewSummary View = iota
	ViewDetailed
)

const queryCacheSize = 32

// Model is the bubbletea model of the dashboard.
type Model struct {
	items    []core.LineItem
	report   cashflow.Report
	theme    *render.Theme
	filtered *cache.LRU[render.Query, []core.LineItem]

	keys   keyMap
	help   help.Model
	search textinput.Model

	tab       Tab
	view      View
	statusIdx int // index into core.StatusFilters

	quitting bool
}

// New builds a dashboard over a loaded dataset.
func New(items []core.LineItem, report cashflow.Report, theme *render.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "search: "
	ti.Placeholder = "filter line items"
	ti.CharLimit = 100

	if theme == nil {
		theme = render.Plain()
	}
	return Model{
		items:    items,
		report:   report,
		theme:    theme,
		filtered: cache.NewLRU[render.Query, []core.LineItem](queryCacheSize),
		keys:     defaultKeys(),
		help:     help.New(),
		search:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Query returns the active search term and status filter.
func (m Model) Query() render.Query {
	return render.Query{Search: m.search.Value(), Status: core.StatusFilters[m.statusIdx]}
}

// Visible returns the line items that pass the current query. Results are
// memoized per query since View runs on every cursor blink.
func (m Model) Visible() []core.LineItem {
	q := m.Query()
	return m.filtered.GetOrCompute(q, func() []core.LineItem {
		return ledger.Filter(m.items, q.Search, q.Status)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.search.Width = msg.Width - len(m.search.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab, m.keys.PrevTab):
		if m.tab == TabEstimates {
			m.tab = TabCashFlow
		} else {
			m.tab = TabEstimates
		}
	case m.tab != TabEstimates:
		// remaining keys only act on the estimates tab
	case key.Matches(msg, m.keys.ToggleView):
		if m.view == ViewSummary {
			m.view = ViewDetailed
		} else {
			m.view = ViewSummary
		}
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Status):
		m.statusIdx = (m.statusIdx + 1) % len(core.StatusFilters)
	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.statusIdx = 0
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString(t.Bold.Render("Project Dashboard") + "\n")
	for i, tab := range []Tab{TabEstimates, TabCashFlow} {
		if i > 0 {
			b.WriteString(t.Dim.Render("  |  "))
		}
		if tab == m.tab {
			b.WriteString(t.Header.Render("[" + tab.String() + "]"))
		} else {
			b.WriteString(t.Dim.Render(" " + tab.String() + " "))
		}
	}
	b.WriteString("\n\n")

	switch m.tab {
	case TabEstimates:
		b.WriteString(m.search.View() + "\n")
		b.WriteString(t.Dim.Render("status: "+string(core.StatusFilters[m.statusIdx])) + "\n\n")
		items := m.Visible()
		if m.view == ViewDetailed {
			b.WriteString(t.Detailed(ledger.DetailedRows(items), render.Query{}))
		} else {
			b.WriteString(t.Summary(ledger.SummaryTotals(items), render.Query{}))
		}
	case TabCashFlow:
		b.WriteString(t.CashFlow(m.report))
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}
