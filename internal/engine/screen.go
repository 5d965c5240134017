// Package engine drives one garden session: it owns the plant, the action
// gate and the per-screen menus, and turns player intents and elapsed time
// into screen transitions.
package engine

// Screen identifies the active screen.
type Screen string

const (
	ScreenTitle          Screen = "title"
	ScreenSeedSelection  Screen = "seed_selection"
	ScreenTimeSetting    Screen = "time_setting"
	ScreenMain           Screen = "main"
	ScreenSettings       Screen = "settings"
	ScreenStatus         Screen = "status"
	ScreenModeWater      Screen = "mode_water"
	ScreenModeLight      Screen = "mode_light"
	ScreenModeEnv        Screen = "mode_env"
	ScreenFlowerLanguage Screen = "flower_language"
	ScreenDeath          Screen = "death"
)

// Title returns the heading shown for the screen.
func (s Screen) Title() string {
	switch s {
	case ScreenTitle:
		return "Bloom"
	case ScreenSeedSelection:
		return "Choose a Seed"
	case ScreenTimeSetting:
		return "Time Speed"
	case ScreenMain:
		return "Garden"
	case ScreenSettings:
		return "Settings"
	case ScreenStatus:
		return "Status"
	case ScreenModeWater:
		return "Water"
	case ScreenModeLight:
		return "Light"
	case ScreenModeEnv:
		return "Environment"
	case ScreenFlowerLanguage:
		return "Flower Language"
	case ScreenDeath:
		return "Withered"
	default:
		return string(s)
	}
}

// Simulates reports whether the plant grows while this screen is active.
func (s Screen) Simulates() bool {
	return s == ScreenMain || s == ScreenStatus || s.IsMode()
}

// IsMode reports whether s is one of the care mode screens.
func (s Screen) IsMode() bool {
	switch s {
	case ScreenModeWater, ScreenModeLight, ScreenModeEnv:
		return true
	}
	return false
}
