package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bloom/internal/config"
	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/engine"
	"github.com/vovakirdan/tui-bloom/internal/garden"
)

// GardenStore is the persistence the garden program needs.
// *storage.Store implements it.
type GardenStore interface {
	SaveGarden(owner string, rec garden.Record) error
	LoadGarden(owner string) (*garden.Record, error)
	DeleteGarden(owner string) error
	RecordBloom(owner string, st garden.State) (int64, error)
}

// Options configures a garden program.
type Options struct {
	Garden  config.GardenConfig
	Runtime core.RuntimeConfig
	Store   GardenStore // nil disables saving
	Owner   string      // Save slot name
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one garden session.
type Model struct {
	ctrl      *engine.Controller
	screen    *core.Screen
	store     GardenStore
	owner     string
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	intents   *core.IntentQueue
	logger    *log.Logger

	autosaveEvery float64
	sinceSave     float64
	quitting      bool
}

// NewModel creates the model and restores the owner's saved garden if one exists.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	ctrl := engine.NewController(engine.Options{
		Config:  opts.Garden,
		Runtime: cfg,
		Logger:  logger,
	})

	m := Model{
		ctrl:          ctrl,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:         opts.Store,
		owner:         opts.Owner,
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		intents:       &core.IntentQueue{},
		logger:        logger,
		autosaveEvery: opts.Garden.Session.AutosaveSeconds,
	}
	m.restore()
	return m
}

// restore loads the saved garden. An unreadable save starts a fresh session.
func (m *Model) restore() {
	if m.store == nil {
		return
	}
	rec, err := m.store.LoadGarden(m.owner)
	if err != nil {
		m.logger.Warn("could not load garden", "owner", m.owner, "error", err)
		return
	}
	if rec == nil {
		m.logger.Info("no saved garden, starting fresh", "owner", m.owner)
		return
	}
	if err := m.ctrl.Deserialize(*rec); err != nil {
		m.logger.Warn("discarding unreadable garden", "owner", m.owner, "error", err)
	}
}

// Controller exposes the session controller, mainly for tests.
func (m Model) Controller() *engine.Controller {
	return m.ctrl
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the intent for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "[", "-":
		m.intents.Push(core.SetTimeScale(StepScale(m.ctrl.Snapshot().TimeScale, -1)))
		return m, nil
	case "]", "+", "=":
		m.intents.Push(core.SetTimeScale(StepScale(m.ctrl.Snapshot().TimeScale, 1)))
		return m, nil
	}

	m.intents.Push(m.keyMapper.MapKey(msg, m.ctrl.Screen()))
	return m, nil
}

// handleTick dispatches queued intents, then advances the session by one
// fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.config.TickDuration()
	m.step(dt)

	if m.ctrl.Done() {
		m.save()
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) step(dt float64) {
	for _, in := range m.intents.Drain() {
		m.ctrl.HandleIntent(in)
	}
	m.ctrl.Tick(dt)
	m.handleEvents(m.ctrl.TakeEvents())

	if m.ctrl.HasPlant() && m.autosaveEvery > 0 {
		m.sinceSave += dt
		if m.sinceSave >= m.autosaveEvery {
			m.save()
		}
	}
}

func (m *Model) handleEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventSeedChosen:
			m.save()
		case engine.EventCompleted:
			if m.store != nil {
				if _, err := m.store.RecordBloom(m.owner, ev.State); err != nil {
					m.logger.Warn("could not record bloom", "owner", m.owner, "error", err)
				}
			}
			m.save()
		case engine.EventWithered, engine.EventReset:
			m.sinceSave = 0
			if m.store != nil {
				if err := m.store.DeleteGarden(m.owner); err != nil {
					m.logger.Warn("could not delete garden", "owner", m.owner, "error", err)
				}
			}
		}
	}
}

// save writes the current plant. Best-effort: the session continues on failure.
func (m *Model) save() {
	m.sinceSave = 0
	if m.store == nil {
		return
	}
	snap := m.ctrl.Snapshot()
	if !snap.HasPlant || !snap.Alive {
		return
	}
	rec, _ := m.ctrl.Serialize()
	if err := m.store.SaveGarden(m.owner, rec); err != nil {
		m.logger.Warn("could not save garden", "owner", m.owner, "error", err)
		return
	}
	m.logger.Debug("garden saved", "owner", m.owner, "stage", rec.Stage, "age", rec.AgeSeconds)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawGarden(m.screen, m.ctrl.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bloom", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("garden_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawGarden(m.screen, m.ctrl.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local garden.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
