package decay

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// decayClockData remembers the previous sweep's wall-clock timestamp for
// UpdateDecay. It rides on a singleton entity like any other world-global
// state.
type decayClockData struct {
	last time.Time
}

var decayClock = donburi.NewComponentType[decayClockData]()

// UpdateDecay is the real-time decay system: it advances every active timer
// by the wall-clock time since its previous run on the same world. The first
// run sees a zero delta. Fixed-step hosts can call Tick with their own delta
// instead.
func UpdateDecay(e *ecs.ECS) {
	now := time.Now()
	var delta time.Duration

	if entry, ok := decayClock.First(e.World); ok {
		clock := decayClock.Get(entry)
		delta = now.Sub(clock.last)
		clock.last = now
	} else {
		entry := e.World.Entry(e.World.Create(decayClock))
		decayClock.Set(entry, &decayClockData{last: now})
	}

	Tick(e, delta)
}

// Tick runs one decay cycle: marker transitions are settled first, then every
// running timer advances by delta. Entities whose timer runs out lose the
// marker and timer before a single DecayCompleted carrying all of them is
// published, and the decay event queues are flushed at the end of the cycle.
func Tick(e *ecs.ECS, delta time.Duration) {
	w := e.World
	reconcile(w)

	var finished []*donburi.Entry
	Decay.Each(w, func(entry *donburi.Entry) {
		if !entry.HasComponent(decayTimer) {
			return
		}
		t := decayTimer.Get(entry)
		t.tick(delta)
		if t.finished() {
			finished = append(finished, entry)
		}
	})

	if len(finished) > 0 {
		batch := make([]donburi.Entity, 0, len(finished))
		for _, entry := range finished {
			// A subscriber may have despawned the entity in the meantime;
			// skip it and keep the rest of the batch.
			if !entry.Valid() {
				continue
			}
			entry.RemoveComponent(decayTimer)
			entry.RemoveComponent(Decay)
			batch = append(batch, entry.Entity())
		}
		if len(batch) > 0 {
			CompletedEvent.Publish(w, DecayCompleted{Entities: batch})
		}
	}

	processEvents(w)
}
