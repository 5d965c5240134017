package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bloom/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the owner sidebar
	sidebarWidth       = 20  // Width of owner sidebar
	maxBlooms          = 200 // Max blooms to load
	allOwners          = ""  // Filter value meaning every owner
)

// BloomSource is the read side of the bloom history.
type BloomSource interface {
	Blooms(owner string, limit int) ([]storage.BloomEntry, error)
	BloomStats(owner string) (*storage.BloomStats, error)
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextOwner key.Binding
	PrevOwner key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextOwner, k.PrevOwner, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextOwner, k.PrevOwner},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextOwner: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next gardener"),
		),
		PrevOwner: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev gardener"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing finished blooms.
type HistoryModel struct {
	source      BloomSource
	owners      []string // allOwners first, then each gardener
	ownerCursor int
	entries     []storage.BloomEntry
	stats       *storage.BloomStats
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a history browser. source may be nil.
func NewHistoryModel(source BloomSource, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		source:      source,
		owners:      []string{allOwners},
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadOwners()
	m.loadBlooms()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Seed", Width: 6},
		{Title: "Shape", Width: 9},
		{Title: "Bloom", Width: 8},
		{Title: "Grown in", Width: 12},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 60 {
		columns[4].Width = 14
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadOwners collects the distinct gardeners, in order of their latest bloom.
func (m *HistoryModel) loadOwners() {
	if m.source == nil {
		return
	}
	all, err := m.source.Blooms(allOwners, maxBlooms)
	if err != nil {
		return
	}
	seen := map[string]bool{}
	for _, e := range all {
		if !seen[e.Owner] {
			seen[e.Owner] = true
			m.owners = append(m.owners, e.Owner)
		}
	}
}

func (m *HistoryModel) currentOwner() string {
	return m.owners[m.ownerCursor]
}

// loadBlooms loads blooms and stats for the selected owner.
func (m *HistoryModel) loadBlooms() {
	m.entries, m.stats = nil, nil
	if m.source != nil {
		if entries, err := m.source.Blooms(m.currentOwner(), maxBlooms); err == nil {
			m.entries = entries
		}
		if stats, err := m.source.BloomStats(m.currentOwner()); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.Seed,
			orDash(e.Phase2),
			orDash(e.Phase3),
			formatDuration(e.AgeSeconds),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders game seconds as days, hours and minutes.
func formatDuration(seconds float64) string {
	total := int64(seconds)
	d := total / 86400
	h := (total % 86400) / 3600
	mins := (total % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %02dh %02dm", d, h, mins)
	}
	return fmt.Sprintf("%02dh %02dm", h, mins)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextOwner):
			m.ownerCursor = (m.ownerCursor + 1) % len(m.owners)
			m.loadBlooms()
			return m, nil

		case key.Matches(msg, m.keys.PrevOwner):
			m.ownerCursor = (m.ownerCursor - 1 + len(m.owners)) % len(m.owners)
			m.loadBlooms()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func ownerLabel(owner string) string {
	if owner == allOwners {
		return "Everyone"
	}
	return owner
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("BLOOM HISTORY - %s", ownerLabel(m.currentOwner()))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := panel.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", ownerLabel(m.currentOwner())), m.width))
		b.WriteString("\n\n")
		b.WriteString(content)
	}

	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Gardeners\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, owner := range m.owners {
		cursor := "  "
		line := lipgloss.NewStyle()
		if i == m.ownerCursor {
			cursor = "> "
			line = line.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := ownerLabel(owner)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sb.WriteString(line.Render(cursor + name))
		sb.WriteString("\n")
	}
	return style.Render(sb.String())
}

func (m HistoryModel) renderStats() string {
	if m.stats == nil || m.stats.Count == 0 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return style.Render(fmt.Sprintf("%d blooms  avg %s  ±%s  most common: %s",
		m.stats.Count,
		formatDuration(m.stats.MeanAge),
		formatDuration(m.stats.StdDevAge),
		orDash(m.stats.TopOutcome)))
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No flowers have bloomed yet.\nKeep caring for your garden!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the launcher.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history browser.
// Returns true if user wants to go back, false if quitting.
func RunHistory(source BloomSource, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(source, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
