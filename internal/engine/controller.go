package engine

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bloom/internal/config"
	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/garden"
	"github.com/vovakirdan/tui-bloom/internal/gate"
	"github.com/vovakirdan/tui-bloom/internal/menu"
	"github.com/vovakirdan/tui-bloom/internal/rng"
)

// Options configures a Controller.
type Options struct {
	Config  config.GardenConfig
	Runtime core.RuntimeConfig // Seed and TimeScale are used
	Source  rng.Source         // Overrides the seeded source when set
	Logger  *log.Logger        // Discards output when nil
}

// Controller is the screen state machine for one session.
// It is not safe for concurrent use.
type Controller struct {
	cfg    config.GardenConfig
	rng    rng.Source
	seed   int64
	logger *log.Logger

	plant     *garden.Plant
	gate      *gate.Gate
	lastStage garden.Stage

	screen  Screen
	cursors map[Screen]*menu.Cursor[Command]

	modeActive bool
	modeTimer  float64

	defaultScale float64
	timeScale    float64
	paused       bool

	info    message
	invalid message

	events []Event
	done   bool
}

type message struct {
	text      string
	remaining float64
}

func (m *message) set(text string, seconds float64) {
	m.text = text
	m.remaining = seconds
}

func (m *message) tick(dt float64) {
	if m.text == "" {
		return
	}
	m.remaining -= dt
	if m.remaining <= 0 {
		*m = message{}
	}
}

// NewController creates a controller on the title screen.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scale := opts.Runtime.TimeScale
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	c := &Controller{
		cfg:          opts.Config,
		logger:       logger,
		defaultScale: scale,
	}
	c.Initialize(opts.Runtime.Seed)
	if opts.Source != nil {
		c.rng = opts.Source
	}
	return c
}

// Initialize reseeds the random source and starts a fresh session on the
// title screen. A zero seed picks a time-based one.
func (c *Controller) Initialize(seed int64) {
	src := rng.New(seed)
	c.rng = src
	c.seed = src.Seed()
	c.clearSession()
}

// Seed returns the seed used by the last Initialize.
func (c *Controller) Seed() int64 {
	return c.seed
}

func (c *Controller) clearSession() {
	c.plant = nil
	c.gate = gate.New(c.cfg.Gate)
	c.lastStage = garden.StageSeed
	c.timeScale = c.defaultScale
	c.paused = false
	c.modeActive = false
	c.modeTimer = 0
	c.info = message{}
	c.invalid = message{}
	c.cursors = buildMenus(c.timeScale)
	c.screen = ScreenTitle
}

// Screen returns the active screen.
func (c *Controller) Screen() Screen {
	return c.screen
}

// Done reports whether the player has quit.
func (c *Controller) Done() bool {
	return c.done
}

// HasPlant reports whether a seed has been chosen this session.
func (c *Controller) HasPlant() bool {
	return c.plant != nil
}

// TakeEvents returns queued events and clears the queue.
func (c *Controller) TakeEvents() []Event {
	out := c.events
	c.events = nil
	return out
}

func (c *Controller) emit(kind EventKind, from, to garden.Stage) {
	var state garden.State
	if c.plant != nil {
		state = c.plant.State()
	}
	c.events = append(c.events, Event{Kind: kind, From: from, To: to, State: state})
}

// HandleIntent dispatches one player intent. Intents that do not apply to
// the active screen are ignored.
func (c *Controller) HandleIntent(in core.Intent) {
	if c.done {
		return
	}

	switch in.Kind {
	case core.IntentQuit:
		c.done = true
	case core.IntentTogglePause:
		c.togglePause()
	case core.IntentSetTimeScale:
		c.setTimeScale(in.Scale)
	case core.IntentNavLeft:
		if cur := c.cursor(); cur != nil {
			cur.MovePrev()
		}
	case core.IntentNavRight:
		if cur := c.cursor(); cur != nil {
			cur.MoveNext()
		}
	case core.IntentNavConfirm:
		c.confirm()
	case core.IntentNavCancel:
		c.cancel()
	case core.IntentSelectSeed:
		if c.screen == ScreenSeedSelection {
			c.chooseSeed(garden.SeedKind(in.Seed))
		}
	case core.IntentWater, core.IntentFertilizer, core.IntentRemoveWeeds, core.IntentRemovePests:
		c.care(in.Kind)
	case core.IntentLight:
		if c.plant != nil {
			c.setLight(!c.plant.State().LightOn)
		}
	case core.IntentMentalLike, core.IntentMentalDislike:
		c.speak(in.Kind)
	}
}

func (c *Controller) cursor() *menu.Cursor[Command] {
	return c.cursors[c.screen]
}

func (c *Controller) confirm() {
	switch c.screen {
	case ScreenTitle:
		c.enter(ScreenSeedSelection)
		return
	case ScreenDeath:
		c.reset()
		return
	}

	cur := c.cursor()
	if cur == nil {
		return
	}
	if cmd, ok := cur.Select(); ok {
		c.execute(cmd)
	}
}

func (c *Controller) execute(cmd Command) {
	switch cmd.Kind {
	case CmdGoto:
		if cmd.Screen == ScreenMain && c.plant == nil {
			return
		}
		c.enter(cmd.Screen)
	case CmdSelectSeed:
		c.chooseSeed(cmd.Seed)
	case CmdSetTimeScale:
		c.setTimeScale(cmd.Scale)
		c.enter(ScreenMain)
	case CmdCare:
		c.care(cmd.Intent)
	case CmdLight:
		c.setLight(cmd.On)
	case CmdMental:
		c.speak(cmd.Intent)
	case CmdTogglePause:
		c.togglePause()
	case CmdToggleLimit:
		c.toggleLimit()
	case CmdReset:
		c.reset()
	}
}

func (c *Controller) cancel() {
	switch c.screen {
	case ScreenSeedSelection, ScreenTimeSetting, ScreenSettings, ScreenStatus:
		if c.plant != nil {
			c.enter(ScreenMain)
		} else {
			c.enter(ScreenTitle)
		}
	case ScreenModeWater, ScreenModeLight, ScreenModeEnv:
		c.enter(ScreenMain)
	}
}

// enter switches screens, resets the destination cursor and ends any care mode.
func (c *Controller) enter(s Screen) {
	c.screen = s
	c.modeActive = false
	c.modeTimer = 0
	if cur := c.cursors[s]; cur != nil {
		cur.Reset()
	}
}

// enterMode switches to a care mode screen, or stays in it, and re-arms the
// auto-return timer.
func (c *Controller) enterMode(s Screen) {
	if c.screen != s {
		c.enter(s)
	}
	c.modeActive = true
	c.modeTimer = c.cfg.Session.ModeReturnSeconds
}

func (c *Controller) chooseSeed(seed garden.SeedKind) {
	if c.plant != nil {
		c.reject("A seed has already been planted")
		return
	}
	if !seed.Valid() {
		return
	}
	c.plant = garden.New(seed, c.cfg, c.rng)
	c.lastStage = garden.StageSeed
	c.gate.Reset()
	c.logger.Info("seed planted", "seed", seed.ID(), "rng_seed", c.seed)
	c.emit(EventSeedChosen, garden.StageSeed, garden.StageSeed)
	c.enter(ScreenTimeSetting)
}

// canCare reports whether care intents apply on the active screen.
func (c *Controller) canCare() bool {
	return c.plant != nil && (c.screen == ScreenMain || c.screen.IsMode())
}

// asleep rejects the action and reports true inside the sleep window.
func (c *Controller) asleep() bool {
	if !c.gate.IsSleepTime(c.plant.State().AgeSeconds) {
		return false
	}
	c.reject("The flower is sleeping")
	return true
}

func (c *Controller) care(kind core.IntentKind) {
	if !c.canCare() {
		return
	}

	switch kind {
	case core.IntentWater, core.IntentFertilizer:
		if !c.gate.CanPerformNutritionAction() {
			c.reject(fmt.Sprintf("Only %d nutrition actions per hour", c.cfg.Gate.NutritionLimit))
			return
		}
		if kind == core.IntentWater {
			c.plant.ApplyWater()
		} else {
			c.plant.ApplyFertilizer()
		}
		remaining := c.gate.RecordNutritionAction()
		switch {
		case c.gate.Disabled():
			c.notify("Nutrition is unlimited")
		case remaining > 0:
			c.notify(fmt.Sprintf("%d more nutrition actions this hour", remaining))
		default:
			c.notify("No more nutrition this hour")
		}
		c.enterMode(ScreenModeWater)
	case core.IntentRemoveWeeds:
		if c.asleep() {
			return
		}
		c.plant.RemoveWeeds()
		c.enterMode(ScreenModeEnv)
	case core.IntentRemovePests:
		if c.asleep() {
			return
		}
		c.plant.RemovePests()
		c.enterMode(ScreenModeEnv)
	}
}

func (c *Controller) setLight(on bool) {
	if !c.canCare() || c.asleep() {
		return
	}
	c.plant.SetLightOn(on)
	c.enterMode(ScreenModeLight)
}

func (c *Controller) speak(kind core.IntentKind) {
	if c.plant == nil {
		return
	}
	delta := c.cfg.Care.MentalStep
	if kind == core.IntentMentalDislike {
		delta = -delta
	}

	switch c.screen {
	case ScreenFlowerLanguage:
		c.plant.AdjustMental(delta)
		c.enter(ScreenMain)
	case ScreenMain:
		if c.asleep() {
			return
		}
		c.plant.AdjustMental(delta)
	}
}

// toggleLimit lifts or restores the hourly nutrition limit for this session.
func (c *Controller) toggleLimit() {
	c.gate.SetDisabled(!c.gate.Disabled())
	if c.gate.Disabled() {
		c.notify("Nutrition is unlimited")
	} else {
		c.notify(fmt.Sprintf("Nutrition limited to %d per hour", c.cfg.Gate.NutritionLimit))
	}
	c.logger.Debug("nutrition limit toggled", "disabled", c.gate.Disabled())
	c.refreshMenus()
}

func (c *Controller) togglePause() {
	if c.plant == nil {
		return
	}
	c.paused = !c.paused
	if c.paused {
		c.notify("Paused")
	} else {
		c.notify("Resumed")
	}
}

func (c *Controller) setTimeScale(scale float64) {
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		c.reject("Invalid time speed")
		return
	}
	c.timeScale = scale
	c.cursors[ScreenTimeSetting].UpdateItems(timeItems(scale))
	c.notify("Speed " + ScaleLabel(scale))
}

func (c *Controller) reset() {
	c.logger.Info("session reset")
	c.clearSession()
	c.emit(EventReset, garden.StageSeed, garden.StageSeed)
}

func (c *Controller) notify(text string) {
	c.info.set(text, c.cfg.Session.InfoMessageSeconds)
}

func (c *Controller) reject(text string) {
	c.invalid.set(text, c.cfg.Session.InvalidMessageSeconds)
}

// Tick advances the session by dt real seconds.
//
// Order: plant update (scaled, simulating screens only), reaction to plant
// events, message countdowns, gate hour check, care mode auto-return.
func (c *Controller) Tick(dt float64) {
	if c.done || dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}

	if c.plant != nil && c.screen.Simulates() && !c.paused && c.timeScale > 0 {
		c.react(c.plant.Update(dt * c.timeScale))
	}

	c.info.tick(dt)
	c.invalid.tick(dt)

	if c.plant != nil {
		c.gate.TickHour(c.plant.State().AgeSeconds)
	}

	if c.modeActive {
		c.modeTimer -= dt
		if c.modeTimer <= 0 {
			c.modeActive = false
			if c.screen.IsMode() {
				c.enter(ScreenMain)
			}
		}
	}

	c.refreshMenus()
}

func (c *Controller) react(events []garden.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case garden.EventStageChanged:
			if ev.To == c.lastStage {
				continue
			}
			c.lastStage = ev.To
			s := c.plant.State()
			c.logger.Debug("stage changed",
				"from", ev.From.ID(), "to", ev.To.ID(),
				"tendency", s.Tendency.ID(), "phase2", s.Phase2, "phase3", s.Phase3)
			c.emit(EventGrowthChanged, ev.From, ev.To)

			if c.plant.IsComplete() {
				c.logger.Info("flower bloomed", "seed", s.Seed.ID(), "phase2", s.Phase2, "phase3", s.Phase3)
				c.emit(EventCompleted, ev.From, ev.To)
				c.enter(ScreenFlowerLanguage)
			}
		case garden.EventWithered:
			c.logger.Info("flower withered", "stage", ev.To.ID(), "age", c.plant.State().AgeSeconds)
			c.emit(EventWithered, ev.From, ev.To)
			c.enter(ScreenDeath)
		}
	}
}

// refreshMenus keeps item availability in step with the plant.
func (c *Controller) refreshMenus() {
	if c.plant == nil {
		return
	}
	allowed := c.gate.CanPerformNutritionAction()
	water := c.cursors[ScreenModeWater]
	water.SetEnabled("water", allowed)
	water.SetEnabled("fertilizer", allowed)
}

// Serialize returns the plant record. ok is false before a seed is chosen.
func (c *Controller) Serialize() (rec garden.Record, ok bool) {
	if c.plant == nil {
		return garden.Record{}, false
	}
	return c.plant.Serialize(), true
}

// Deserialize restores a saved plant and continues on the main screen.
// On error the controller is left unchanged.
func (c *Controller) Deserialize(rec garden.Record) error {
	p, err := garden.Restore(rec, c.cfg, c.rng)
	if err != nil {
		return fmt.Errorf("engine: cannot restore garden: %w", err)
	}

	c.clearSession()
	c.plant = p
	s := p.State()
	c.lastStage = s.Stage
	c.gate.Sync(s.AgeSeconds)
	c.enter(ScreenMain)
	c.refreshMenus()
	c.logger.Info("garden restored", "seed", s.Seed.ID(), "stage", s.Stage.ID(), "age", s.AgeSeconds)
	return nil
}
