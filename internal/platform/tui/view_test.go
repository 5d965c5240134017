package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/engine"
	"github.com/vovakirdan/tui-bloom/internal/garden"
)

func TestDrawGardenTooSmall(t *testing.T) {
	scr := core.NewScreen(30, 10)
	DrawGarden(scr, engine.Snapshot{Screen: engine.ScreenMain})
	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Errorf("expected a size warning, got:\n%s", scr.String())
	}
}

func TestDrawGardenScreens(t *testing.T) {
	plant := garden.State{Seed: garden.SeedRain, Stage: garden.StageBud, Water: 50, Light: 40, Environment: 60, Mental: 70, Weeds: 2}

	tests := []struct {
		name string
		snap engine.Snapshot
		want []string
	}{
		{
			name: "title",
			snap: engine.Snapshot{Screen: engine.ScreenTitle, Cursor: -1},
			want: []string{"B L O O M", "Press Enter"},
		},
		{
			name: "seed selection",
			snap: engine.Snapshot{
				Screen: engine.ScreenSeedSelection,
				Menu:   []engine.MenuItem{{ID: "sun", Label: "Sun", Enabled: true}, {ID: "moon", Label: "Moon", Enabled: true}},
				Cursor: 1,
			},
			want: []string{"1  Sun", "[Moon]"},
		},
		{
			name: "main with plant",
			snap: engine.Snapshot{
				Screen: engine.ScreenMain, HasPlant: true, Alive: true, Plant: plant,
				Clock: "Day 1 12:00", TimeScale: 60, NutritionRemaining: 2,
				Info: "2 more nutrition actions this hour", Cursor: -1,
			},
			want: []string{"Day 1 12:00", "Speed x60", "Nutrition: 2", "Water", "vv", "2 more nutrition"},
		},
		{
			name: "status",
			snap: engine.Snapshot{Screen: engine.ScreenStatus, HasPlant: true, Alive: true, Plant: plant, Cursor: -1},
			want: []string{"Stage", "Weeds 2"},
		},
		{
			name: "death",
			snap: engine.Snapshot{Screen: engine.ScreenDeath, HasPlant: true, Plant: plant, Clock: "Day 2 03:00", Cursor: -1},
			want: []string{"withered", "Day 2 03:00"},
		},
		{
			name: "invalid message wins",
			snap: engine.Snapshot{Screen: engine.ScreenMain, Info: "hello", Invalid: "Only 3 nutrition actions per hour", Cursor: -1},
			want: []string{"Only 3 nutrition"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr := core.NewScreen(80, 24)
			DrawGarden(scr, tt.snap)
			out := scr.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestDrawGardenDisabledMenuItem(t *testing.T) {
	scr := core.NewScreen(80, 24)
	DrawGarden(scr, engine.Snapshot{
		Screen: engine.ScreenModeWater,
		Menu: []engine.MenuItem{
			{ID: "water", Label: "Water", Enabled: false},
			{ID: "back", Label: "Back", Enabled: true},
		},
		Cursor: 1,
	})

	y := scr.Height() - 5
	row := scr.Row(y)
	x := strings.Index(row, "Water")
	if x < 0 {
		t.Fatalf("menu row %q has no Water item", row)
	}
	if got := scr.GetCell(x, y).Color; got != core.ColorGray {
		t.Errorf("disabled item color = %v, expected gray", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawTextColor(0, 0, "bloom", core.ColorGreen)
	out := RenderScreen(scr)
	if !strings.Contains(out, "bloom") {
		t.Errorf("RenderScreen lost the text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
