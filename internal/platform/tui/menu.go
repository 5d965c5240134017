package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/menu"
)

// LauncherChoice is what the player picked on the launcher.
type LauncherChoice int

const (
	LaunchNone LauncherChoice = iota
	LaunchPlay
	LaunchHistory
	LaunchQuit
)

// LauncherModel is the Bubble Tea model for the start menu shown before
// the garden opens.
type LauncherModel struct {
	cursor   *menu.Cursor[LauncherChoice]
	width    int
	height   int
	config   core.RuntimeConfig
	subtitle string
	chosen   LauncherChoice
}

// NewLauncherModel creates the launcher. subtitle describes the saved
// garden, if any.
func NewLauncherModel(cfg core.RuntimeConfig, subtitle string, hasHistory bool) LauncherModel {
	items := []menu.Item[LauncherChoice]{
		{ID: "play", Label: "Tend the garden", Enabled: true, Action: LaunchPlay},
		{ID: "history", Label: "Bloom history", Enabled: hasHistory, Action: LaunchHistory},
		{ID: "quit", Label: "Quit", Enabled: true, Action: LaunchQuit},
	}
	return LauncherModel{
		cursor:   menu.New(items),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		config:   cfg,
		subtitle: subtitle,
	}
}

// Init initializes the launcher.
func (m LauncherModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the launcher.
func (m LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m LauncherModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.chosen = LaunchQuit
		return m, tea.Quit
	case "w", "up", "k":
		m.cursor.MovePrev()
	case "s", "down", "j":
		m.cursor.MoveNext()
	case "enter", " ":
		if choice, ok := m.cursor.Select(); ok {
			m.chosen = choice
			return m, tea.Quit
		}
	case "tab":
		for _, item := range m.cursor.Items() {
			if item.Action == LaunchHistory && item.Enabled {
				m.chosen = LaunchHistory
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the launcher.
func (m LauncherModel) View() string {
	if m.chosen != LaunchNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  B L O O M  ", m.width))
	b.WriteString("\n\n")
	if m.subtitle != "" {
		b.WriteString(centerText(m.subtitle, m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.cursor.Items() {
		cursor := "  "
		if i == m.cursor.Index() {
			cursor = "> "
		}
		label := item.Label
		if !item.Enabled {
			label += " (none yet)"
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the player's choice, LaunchNone until one is made.
func (m LauncherModel) Chosen() LauncherChoice {
	return m.chosen
}

// Config returns the current runtime config (may have been updated by resize).
func (m LauncherModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// RunLauncher shows the launcher and returns the choice and the possibly
// resized config.
func RunLauncher(cfg core.RuntimeConfig, subtitle string, hasHistory bool) (LauncherChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(
		NewLauncherModel(cfg, subtitle, hasHistory),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return LaunchQuit, cfg, err
	}

	m, ok := finalModel.(LauncherModel)
	if !ok || m.Chosen() == LaunchNone {
		return LaunchQuit, cfg, nil
	}
	return m.Chosen(), m.Config(), nil
}
