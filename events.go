package decay

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DecayStarted fires when decay (re)begins for an entity. Duration is the
// time left at the moment of emission: the freshly resolved duration on first
// activation, the remaining time on resume.
type DecayStarted struct {
	Entity   donburi.Entity
	Duration time.Duration
}

// DecayPaused fires when an entity's decay is halted by removing the marker.
// Elapsed progress is kept; re-adding the marker resumes from
// RemainingDuration.
type DecayPaused struct {
	Entity            donburi.Entity
	RemainingDuration time.Duration
}

// DecayCompleted fires at most once per cycle and carries every entity that
// finished decaying during that cycle. The marker and timer are already
// stripped by the time subscribers run.
type DecayCompleted struct {
	Entities []donburi.Entity
}

var (
	StartedEvent   = events.NewEventType[DecayStarted]()
	PausedEvent    = events.NewEventType[DecayPaused]()
	CompletedEvent = events.NewEventType[DecayCompleted]()
)

// processEvents drains the decay event queues so subscribers observe a
// cycle's transitions within that same cycle.
func processEvents(w donburi.World) {
	StartedEvent.ProcessEvents(w)
	PausedEvent.ProcessEvents(w)
	CompletedEvent.ProcessEvents(w)
}
