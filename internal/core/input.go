package core

import "fmt"

// IntentKind identifies a player intent, abstracted from physical key presses.
// The key mapper produces intents; the engine consumes them.
type IntentKind int

const (
	IntentNone          IntentKind = iota
	IntentWater                    // Give water
	IntentLight                    // Toggle the grow light
	IntentFertilizer               // Give fertilizer
	IntentRemoveWeeds              // Pull weeds
	IntentRemovePests              // Remove pests
	IntentSelectSeed               // Pick a seed kind (Intent.Seed)
	IntentMentalLike               // Speak kind words to the flower
	IntentMentalDislike            // Speak harsh words to the flower
	IntentNavLeft                  // Move menu cursor back
	IntentNavRight                 // Move menu cursor forward
	IntentNavConfirm               // Activate the selected menu item
	IntentNavCancel                // Leave the current screen
	IntentTogglePause              // Pause or resume the simulation
	IntentSetTimeScale             // Change simulation speed (Intent.Scale)
	IntentQuit                     // End the session
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentWater:
		return "Water"
	case IntentLight:
		return "Light"
	case IntentFertilizer:
		return "Fertilizer"
	case IntentRemoveWeeds:
		return "RemoveWeeds"
	case IntentRemovePests:
		return "RemovePests"
	case IntentSelectSeed:
		return "SelectSeed"
	case IntentMentalLike:
		return "MentalLike"
	case IntentMentalDislike:
		return "MentalDislike"
	case IntentNavLeft:
		return "NavLeft"
	case IntentNavRight:
		return "NavRight"
	case IntentNavConfirm:
		return "NavConfirm"
	case IntentNavCancel:
		return "NavCancel"
	case IntentTogglePause:
		return "TogglePause"
	case IntentSetTimeScale:
		return "SetTimeScale"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is a single player request handed to the engine.
// Seed is only read for IntentSelectSeed, Scale only for IntentSetTimeScale.
type Intent struct {
	Kind  IntentKind
	Seed  int
	Scale float64
}

// Simple creates an intent that carries no payload.
func Simple(kind IntentKind) Intent {
	return Intent{Kind: kind}
}

// SelectSeed creates a seed selection intent.
func SelectSeed(seed int) Intent {
	return Intent{Kind: IntentSelectSeed, Seed: seed}
}

// SetTimeScale creates a time scale intent.
func SetTimeScale(scale float64) Intent {
	return Intent{Kind: IntentSetTimeScale, Scale: scale}
}

// String implements fmt.Stringer.
func (i Intent) String() string {
	switch i.Kind {
	case IntentSelectSeed:
		return fmt.Sprintf("SelectSeed(%d)", i.Seed)
	case IntentSetTimeScale:
		return fmt.Sprintf("SetTimeScale(%g)", i.Scale)
	default:
		return i.Kind.String()
	}
}

// IsNavigation reports whether the intent only moves between menus and screens.
func (i Intent) IsNavigation() bool {
	switch i.Kind {
	case IntentNavLeft, IntentNavRight, IntentNavConfirm, IntentNavCancel:
		return true
	}
	return false
}

// IntentQueue collects intents between ticks in arrival order.
type IntentQueue struct {
	items []Intent
}

// Push appends an intent. IntentNone is dropped.
func (q *IntentQueue) Push(i Intent) {
	if i.Kind == IntentNone {
		return
	}
	q.items = append(q.items, i)
}

// Drain returns all queued intents and empties the queue.
func (q *IntentQueue) Drain() []Intent {
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending intents.
func (q *IntentQueue) Len() int {
	return len(q.items)
}
