package decay

import (
	"time"

	"github.com/yohamta/donburi"
)

// decayTimerData counts a single entity down to completion. It is internal
// state: created when the marker activates, left dormant while the marker is
// off, destroyed on completion. The tick system never creates one.
type decayTimerData struct {
	elapsed time.Duration
	total   time.Duration
	paused  bool
}

var decayTimer = donburi.NewComponentType[decayTimerData]()

// tick advances the countdown, saturating at total. Paused and finished
// timers are left untouched.
func (t *decayTimerData) tick(delta time.Duration) {
	if t.paused || t.finished() {
		return
	}
	t.elapsed += delta
	if t.elapsed > t.total {
		t.elapsed = t.total
	}
}

func (t *decayTimerData) pause()   { t.paused = true }
func (t *decayTimerData) unpause() { t.paused = false }

// remaining returns the time left before completion, never negative.
func (t *decayTimerData) remaining() time.Duration {
	if rem := t.total - t.elapsed; rem > 0 {
		return rem
	}
	return 0
}

func (t *decayTimerData) finished() bool {
	return t.elapsed >= t.total
}
