// Package decay makes tagged entities expire after a configurable, optionally
// randomized time and reports every lifecycle transition as an event.
//
// Attaching the Decay tag (together with a DurationRange) starts an entity's
// countdown, removing the tag pauses it, and re-adding the tag resumes from
// the remaining time. When a timer runs out the tag and timer are stripped
// and the entity is reported in that cycle's DecayCompleted batch. Register
// wires the per-frame sweep into a donburi ecs; DecayStarted, DecayPaused and
// DecayCompleted are delivered through donburi's event feature.
package decay

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Decay marks an entity as currently decaying. Entities carrying the tag are
// expected to also carry a DurationRange; a missing or zero range makes the
// entity drop out immediately without any events.
var Decay = donburi.NewTag().SetName("Decay")

// Register adds the decay sweep to the ecs update loop. Hosts that drive
// their own fixed timestep can skip Register and call Tick directly.
func Register(e *ecs.ECS) {
	e.AddSystem(UpdateDecay)
}
