package engine

import "github.com/vovakirdan/tui-bloom/internal/garden"

// EventKind identifies a session event.
type EventKind string

const (
	EventSeedChosen    EventKind = "seed_chosen"
	EventGrowthChanged EventKind = "growth_changed"
	EventCompleted     EventKind = "completed"
	EventWithered      EventKind = "withered"
	EventReset         EventKind = "reset"
)

// Event is queued by the controller for the shell to act on, for example
// saving a finished bloom. State is the plant state when the event fired.
type Event struct {
	Kind  EventKind
	From  garden.Stage
	To    garden.Stage
	State garden.State
}
