package decay

import (
	"time"

	"github.com/yohamta/donburi"
)

// Attach sets the entity's duration range, adds the Decay marker and runs the
// activation policy: a zero range strips marker and timer on the spot without
// emitting anything, a dormant timer resumes with its remaining time, and
// otherwise a fresh timer is created from a newly resolved duration. The
// resulting DecayStarted is delivered on the next event flush.
func Attach(entry *donburi.Entry, r DurationRangeData) {
	if !entry.Valid() {
		return
	}
	if !entry.HasComponent(DurationRange) {
		entry.AddComponent(DurationRange)
	}
	DurationRange.Set(entry, &r)
	// Adding a marker that is already present and counting down is not an
	// edge; only a fresh, missing-timer or dormant-timer state activates.
	if entry.HasComponent(Decay) && entry.HasComponent(decayTimer) && !decayTimer.Get(entry).paused {
		return
	}
	if !entry.HasComponent(Decay) {
		entry.AddComponent(Decay)
	}
	activate(entry)
}

// AttachFixed is Attach with a fixed duration.
func AttachFixed(entry *donburi.Entry, d time.Duration) {
	Attach(entry, FixedDuration(d))
}

// Detach pauses the entity's decay and removes the marker. Progress made so
// far stays on the dormant timer, so a later Attach (or re-adding the tag)
// resumes rather than restarts.
func Detach(entry *donburi.Entry) {
	if !entry.Valid() || !entry.HasComponent(Decay) {
		return
	}
	deactivate(entry)
	entry.RemoveComponent(Decay)
}

// activate applies the marker-insertion policy to an entry currently holding
// the Decay marker.
func activate(entry *donburi.Entry) {
	var r DurationRangeData
	if entry.HasComponent(DurationRange) {
		r = *DurationRange.Get(entry)
	}

	// Zero range: the decay completes instantaneously and silently.
	if r.IsZero() {
		if entry.HasComponent(decayTimer) {
			entry.RemoveComponent(decayTimer)
		}
		entry.RemoveComponent(Decay)
		return
	}

	// Dormant timer: resume from where the pause left off.
	if entry.HasComponent(decayTimer) {
		t := decayTimer.Get(entry)
		t.unpause()
		StartedEvent.Publish(entry.World, DecayStarted{
			Entity:   entry.Entity(),
			Duration: t.remaining(),
		})
		return
	}

	d := r.Resolve()
	entry.AddComponent(decayTimer)
	decayTimer.Set(entry, &decayTimerData{total: d})
	StartedEvent.Publish(entry.World, DecayStarted{
		Entity:   entry.Entity(),
		Duration: d,
	})
}

// deactivate applies the marker-removal policy: pause the timer, keep its
// progress, report the remaining time. Entries without a timer (the zero
// range fast path already cleared it) are left alone.
func deactivate(entry *donburi.Entry) {
	if !entry.HasComponent(decayTimer) {
		return
	}
	t := decayTimer.Get(entry)
	t.pause()
	PausedEvent.Publish(entry.World, DecayPaused{
		Entity:            entry.Entity(),
		RemainingDuration: t.remaining(),
	})
}

// reconcile grants raw AddComponent/RemoveComponent toggles of the Decay tag
// the same edge-triggered treatment as Attach and Detach. Marker and timer
// state only disagree when the tag was flipped outside those helpers since
// the previous sweep, so nothing here can double-fire.
func reconcile(w donburi.World) {
	var added []*donburi.Entry
	Decay.Each(w, func(entry *donburi.Entry) {
		if !entry.HasComponent(decayTimer) || decayTimer.Get(entry).paused {
			added = append(added, entry)
		}
	})
	for _, entry := range added {
		if entry.Valid() {
			activate(entry)
		}
	}

	var removed []*donburi.Entry
	decayTimer.Each(w, func(entry *donburi.Entry) {
		if !entry.HasComponent(Decay) && !decayTimer.Get(entry).paused {
			removed = append(removed, entry)
		}
	})
	for _, entry := range removed {
		if entry.Valid() {
			deactivate(entry)
		}
	}
}
