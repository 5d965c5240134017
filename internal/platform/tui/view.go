package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/engine"
	"github.com/vovakirdan/tui-bloom/internal/garden"
)

// Minimum terminal size for the garden layout.
const (
	minViewWidth  = 44
	minViewHeight = 18
)

var stageArt = map[garden.Stage][]string{
	garden.StageSeed: {
		"       ",
		"       ",
		"       ",
		"   .   ",
	},
	garden.StageSprout: {
		"       ",
		"       ",
		"   ,   ",
		"   |   ",
	},
	garden.StageStem: {
		"       ",
		"  \\ ,  ",
		"   |/  ",
		"   |   ",
	},
	garden.StageBud: {
		"   o   ",
		"  \\|,  ",
		"   |/  ",
		"   |   ",
	},
	garden.StageFlower: {
		"  \\@/  ",
		" --@-- ",
		"  /|\\  ",
		"   |   ",
	},
}

func seedColor(s garden.SeedKind) core.Color {
	switch s {
	case garden.SeedSun:
		return core.ColorBrightYellow
	case garden.SeedMoon:
		return core.ColorBrightWhite
	case garden.SeedWind:
		return core.ColorBrightCyan
	case garden.SeedRain:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// DrawGarden renders a snapshot into dst.
func DrawGarden(dst *core.Screen, snap engine.Snapshot) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if w < minViewWidth || h < minViewHeight {
		dst.DrawTextCentered(h/2, fmt.Sprintf("Terminal too small (%dx%d)", w, h), core.ColorRed)
		return
	}

	dst.DrawBox(core.NewRect(0, 0, w, h), core.ColorGreen)
	dst.DrawTextCentered(0, " "+snap.Screen.Title()+" ", core.ColorBrightGreen)

	switch snap.Screen {
	case engine.ScreenTitle:
		drawTitle(dst)
	case engine.ScreenDeath:
		drawDeath(dst, snap)
	default:
		drawHeader(dst, snap)
		if snap.HasPlant {
			drawPlant(dst, snap)
		}
		switch snap.Screen {
		case engine.ScreenStatus:
			drawStatus(dst, snap)
		case engine.ScreenSeedSelection:
			drawSeedHints(dst)
		case engine.ScreenFlowerLanguage:
			dst.DrawTextCentered(h-8, "Your flower has bloomed. What will you tell it?", core.ColorBrightMagenta)
		default:
			if snap.HasPlant {
				drawGauges(dst, snap)
			}
		}
		drawMenu(dst, h-5, snap)
	}

	drawMessages(dst, snap)
	drawHelp(dst, snap.Screen)
}

func drawTitle(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-3, "B L O O M", core.ColorBrightMagenta)
	dst.DrawTextCentered(h/2-1, "Raise a flower, one hour at a time", core.ColorWhite)
	dst.DrawTextCentered(h/2+2, "Press Enter to plant a seed", core.ColorBrightGreen)
}

func drawDeath(dst *core.Screen, snap engine.Snapshot) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-2, "Your flower has withered.", core.ColorRed)
	if snap.HasPlant {
		dst.DrawTextCentered(h/2, fmt.Sprintf("%s seed, %s stage, %s",
			snap.Plant.Seed, snap.Plant.Stage, snap.Clock), core.ColorGray)
	}
	dst.DrawTextCentered(h/2+2, "Press Enter to start over", core.ColorWhite)
}

func drawHeader(dst *core.Screen, snap engine.Snapshot) {
	w := dst.Width()
	left := "No seed yet"
	if snap.HasPlant {
		left = fmt.Sprintf("%s  %s", snap.Plant.Seed, snap.Clock)
		if snap.Sleeping {
			left += "  zZ"
		}
	}
	dst.DrawTextColor(2, 1, left, core.ColorWhite)

	right := "Speed " + engine.ScaleLabel(snap.TimeScale)
	if snap.Paused {
		right = "PAUSED  " + right
	}
	if snap.HasPlant {
		if snap.NutritionUnlimited {
			right += "  Nutrition: -"
		} else {
			right += fmt.Sprintf("  Nutrition: %d", snap.NutritionRemaining)
		}
	}
	dst.DrawTextColor(w-2-len([]rune(right)), 1, right, core.ColorCyan)
}

func drawPlant(dst *core.Screen, snap engine.Snapshot) {
	art := stageArt[snap.Plant.Stage]
	w := dst.Width()
	top := 3
	c := seedColor(snap.Plant.Seed)
	if !snap.Alive {
		c = core.ColorMuted
	}
	for i, line := range art {
		x := (w - len([]rune(line))) / 2
		dst.DrawTextColor(x, top+i, line, c)
	}

	ground := strings.Repeat("~", 15)
	groundY := top + len(art)
	dst.DrawTextCentered(groundY, ground, core.ColorSoil)
	if snap.Plant.Weeds > 0 {
		dst.DrawTextColor((w-15)/2-snap.Plant.Weeds-1, groundY, strings.Repeat("v", snap.Plant.Weeds), core.ColorLeaf)
	}
	if snap.Plant.Pests > 0 {
		dst.DrawTextColor((w+15)/2+1, groundY, strings.Repeat("*", snap.Plant.Pests), core.ColorPest)
	}
	if snap.Plant.LightOn {
		dst.DrawTextCentered(top-1, "( light )", core.ColorSun)
	}
}

func drawGauges(dst *core.Screen, snap engine.Snapshot) {
	s := snap.Plant
	rows := []struct {
		label string
		value float64
		color core.Color
	}{
		{"Water", s.Water, core.ColorWater},
		{"Light", s.Light, core.ColorSun},
		{"Environ", s.Environment, core.ColorLeaf},
		{"Mental", s.Mental, core.ColorMood},
	}

	w := dst.Width()
	gaugeW := core.Min(30, w-24)
	x := (w - gaugeW - 14) / 2
	y := 9
	for i, r := range rows {
		dst.DrawTextColor(x, y+i, fmt.Sprintf("%-8s", r.label), core.ColorWhite)
		dst.DrawGauge(x+9, y+i, gaugeW, r.value/100, r.color)
		dst.DrawTextColor(x+10+gaugeW, y+i, fmt.Sprintf("%3.0f", r.value), core.ColorWhite)
	}

	if snap.NeedsAttention {
		dst.DrawTextCentered(y+len(rows), "Your flower needs attention", core.ColorOrange)
	}
}

func drawStatus(dst *core.Screen, snap engine.Snapshot) {
	if !snap.HasPlant {
		return
	}
	s := snap.Plant
	lines := []string{
		fmt.Sprintf("Seed      %s", s.Seed),
		fmt.Sprintf("Stage     %s", s.Stage),
		fmt.Sprintf("Age       %s", snap.Clock),
		fmt.Sprintf("Tendency  %s", orDash(s.Tendency.ID())),
		fmt.Sprintf("Shape     %s", orDash(s.Phase2)),
		fmt.Sprintf("Bloom     %s", orDash(s.Phase3)),
		fmt.Sprintf("Water %.0f  Light %.0f  Env %.0f  Mental %.0f", s.Water, s.Light, s.Environment, s.Mental),
		fmt.Sprintf("Weeds %d  Pests %d", s.Weeds, s.Pests),
	}
	x := (dst.Width() - 40) / 2
	for i, line := range lines {
		dst.DrawTextColor(x, 9+i, line, core.ColorWhite)
	}
}

func drawSeedHints(dst *core.Screen) {
	y := dst.Height()/2 - 2
	for i, s := range garden.Seeds {
		dst.DrawTextCentered(y+i, fmt.Sprintf("%d  %s", i+1, s), seedColor(s))
	}
}

func drawMenu(dst *core.Screen, y int, snap engine.Snapshot) {
	if len(snap.Menu) == 0 {
		return
	}
	var parts []string
	colors := make([]core.Color, 0, len(snap.Menu))
	for i, it := range snap.Menu {
		label := " " + it.Label + " "
		c := core.ColorWhite
		switch {
		case i == snap.Cursor:
			label = "[" + it.Label + "]"
			c = core.ColorBrightYellow
		case !it.Enabled:
			c = c.Dim()
		}
		parts = append(parts, label)
		colors = append(colors, c)
	}

	total := 0
	for _, p := range parts {
		total += len([]rune(p)) + 1
	}
	x := core.Max(1, (dst.Width()-total)/2)
	for i, p := range parts {
		dst.DrawTextColor(x, y, p, colors[i])
		x += len([]rune(p)) + 1
	}
}

func drawMessages(dst *core.Screen, snap engine.Snapshot) {
	y := dst.Height() - 4
	if snap.Invalid != "" {
		dst.DrawTextCentered(y, snap.Invalid, core.ColorBrightRed)
	} else if snap.Info != "" {
		dst.DrawTextCentered(y, snap.Info, core.ColorBrightCyan)
	}
}

func drawHelp(dst *core.Screen, screen engine.Screen) {
	var text string
	switch screen {
	case engine.ScreenTitle, engine.ScreenDeath:
		text = "Enter: continue  Q: quit"
	case engine.ScreenSeedSelection:
		text = "Left/Right: choose  1-4: seed  Enter: plant  Esc: back"
	case engine.ScreenFlowerLanguage:
		text = "Left/Right: choose  Y/N: speak  Enter: say it"
	default:
		text = "W water  F fertilizer  G light  X weeds  Z pests  [ ] speed  P pause  Q quit"
	}
	dst.DrawTextCentered(dst.Height()-2, text, core.ColorGray)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
