package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to garden intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key press on the given screen to an intent.
// Digits pick a seed on the seed selection screen and are care
// shortcuts everywhere else. Unknown keys map to IntentNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, screen engine.Screen) core.Intent {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Simple(core.IntentQuit)
	case "left", "a", "h", "up", "k":
		return core.Simple(core.IntentNavLeft)
	case "right", "d", "l", "down", "j", "tab":
		return core.Simple(core.IntentNavRight)
	case "enter", " ":
		return core.Simple(core.IntentNavConfirm)
	case "esc", "b":
		return core.Simple(core.IntentNavCancel)
	case "p":
		return core.Simple(core.IntentTogglePause)
	case "y":
		return core.Simple(core.IntentMentalLike)
	case "n":
		return core.Simple(core.IntentMentalDislike)
	}

	if screen == engine.ScreenSeedSelection {
		if len(key) == 1 && key[0] >= '1' && key[0] <= '4' {
			return core.SelectSeed(int(key[0] - '1'))
		}
		return core.Simple(core.IntentNone)
	}

	switch key {
	case "1", "w":
		return core.Simple(core.IntentWater)
	case "2", "f":
		return core.Simple(core.IntentFertilizer)
	case "3", "g":
		return core.Simple(core.IntentLight)
	case "4", "x":
		return core.Simple(core.IntentRemoveWeeds)
	case "5", "z":
		return core.Simple(core.IntentRemovePests)
	}

	return core.Simple(core.IntentNone)
}

// StepScale returns the preset after (dir > 0) or before (dir < 0) the
// current scale, staying at the ends of the list.
func StepScale(current float64, dir int) float64 {
	presets := engine.TimeScalePresets
	idx := -1
	for i, p := range presets {
		if p <= current {
			idx = i
		}
	}

	switch {
	case dir > 0:
		idx++
	case dir < 0 && idx >= 0 && presets[idx] == current:
		idx--
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(presets) {
		idx = len(presets) - 1
	}
	return presets[idx]
}
