package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/garden"
	"github.com/vovakirdan/tui-bloom/internal/menu"
)

// CommandKind identifies what a menu item does when selected.
type CommandKind int

const (
	CmdGoto CommandKind = iota
	CmdSelectSeed
	CmdSetTimeScale
	CmdCare
	CmdLight
	CmdMental
	CmdTogglePause
	CmdToggleLimit
	CmdReset
)

// Command is the action bound to a menu item. Only the fields relevant to
// Kind are read.
type Command struct {
	Kind   CommandKind
	Screen Screen          // CmdGoto
	Seed   garden.SeedKind // CmdSelectSeed
	Scale  float64         // CmdSetTimeScale
	Intent core.IntentKind // CmdCare, CmdMental
	On     bool            // CmdLight
}

// TimeScalePresets are the speeds offered on the time setting screen.
var TimeScalePresets = []float64{1, 10, 60, 600}

func gotoItem(id, label string, s Screen) menu.Item[Command] {
	return menu.Item[Command]{ID: id, Label: label, Enabled: true, Action: Command{Kind: CmdGoto, Screen: s}}
}

func careItem(id, label string, kind core.IntentKind) menu.Item[Command] {
	return menu.Item[Command]{ID: id, Label: label, Enabled: true, Action: Command{Kind: CmdCare, Intent: kind}}
}

func seedItems() []menu.Item[Command] {
	items := make([]menu.Item[Command], 0, len(garden.Seeds))
	for _, s := range garden.Seeds {
		items = append(items, menu.Item[Command]{
			ID:      s.ID(),
			Label:   s.String(),
			Enabled: true,
			Action:  Command{Kind: CmdSelectSeed, Seed: s},
		})
	}
	return items
}

// timeItems marks the active preset so the list can be refreshed in place.
func timeItems(current float64) []menu.Item[Command] {
	items := []menu.Item[Command]{gotoItem("start", "Start", ScreenMain)}
	for _, scale := range TimeScalePresets {
		label := ScaleLabel(scale)
		if scale == current {
			label += " *"
		}
		items = append(items, menu.Item[Command]{
			ID:      fmt.Sprintf("x%g", scale),
			Label:   label,
			Enabled: true,
			Action:  Command{Kind: CmdSetTimeScale, Scale: scale},
		})
	}
	return items
}

// ScaleLabel formats a time scale for display.
func ScaleLabel(scale float64) string {
	return fmt.Sprintf("x%g", scale)
}

func buildMenus(scale float64) map[Screen]*menu.Cursor[Command] {
	back := gotoItem("back", "Back", ScreenMain)

	return map[Screen]*menu.Cursor[Command]{
		ScreenSeedSelection: menu.New(seedItems()),
		ScreenTimeSetting:   menu.New(timeItems(scale)),
		ScreenMain: menu.New([]menu.Item[Command]{
			gotoItem("status", "Status", ScreenStatus),
			gotoItem("water", "Water", ScreenModeWater),
			gotoItem("light", "Light", ScreenModeLight),
			gotoItem("env", "Environment", ScreenModeEnv),
			gotoItem("settings", "Settings", ScreenSettings),
		}),
		ScreenSettings: menu.New([]menu.Item[Command]{
			gotoItem("time", "Time Speed", ScreenTimeSetting),
			{ID: "pause", Label: "Pause / Resume", Enabled: true, Action: Command{Kind: CmdTogglePause}},
			{ID: "limit", Label: "Nutrition Limit On / Off", Enabled: true, Action: Command{Kind: CmdToggleLimit}},
			{ID: "reset", Label: "Start Over", Enabled: true, Action: Command{Kind: CmdReset}},
			back,
		}),
		ScreenStatus: menu.New([]menu.Item[Command]{back}),
		ScreenModeWater: menu.New([]menu.Item[Command]{
			careItem("water", "Give Water", core.IntentWater),
			careItem("fertilizer", "Give Fertilizer", core.IntentFertilizer),
			back,
		}),
		ScreenModeLight: menu.New([]menu.Item[Command]{
			{ID: "on", Label: "Light On", Enabled: true, Action: Command{Kind: CmdLight, On: true}},
			{ID: "off", Label: "Light Off", Enabled: true, Action: Command{Kind: CmdLight, On: false}},
			back,
		}),
		ScreenModeEnv: menu.New([]menu.Item[Command]{
			careItem("weeds", "Pull Weeds", core.IntentRemoveWeeds),
			careItem("pests", "Remove Pests", core.IntentRemovePests),
			back,
		}),
		ScreenFlowerLanguage: menu.New([]menu.Item[Command]{
			{ID: "like", Label: "I love you", Enabled: true, Action: Command{Kind: CmdMental, Intent: core.IntentMentalLike}},
			{ID: "dislike", Label: "I don't like you", Enabled: true, Action: Command{Kind: CmdMental, Intent: core.IntentMentalDislike}},
		}),
	}
}
