package decay

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// DurationRangeData bounds how long an entity takes to decay. The concrete
// duration is fixed when both bounds match and drawn uniformly between them
// otherwise. Bounds are kept ordered by construction, so build values with
// NewDurationRange or FixedDuration instead of filling the struct directly;
// the zero value is a zero range.
type DurationRangeData struct {
	min time.Duration
	max time.Duration
}

var DurationRange = donburi.NewComponentType[DurationRangeData]()

// NewDurationRange returns a range spanning min to max. Reversed bounds are
// swapped rather than rejected.
func NewDurationRange(min, max time.Duration) DurationRangeData {
	if min > max {
		min, max = max, min
	}
	return DurationRangeData{min: min, max: max}
}

// FixedDuration returns a range that always resolves to d.
func FixedDuration(d time.Duration) DurationRangeData {
	return NewDurationRange(d, d)
}

func (r DurationRangeData) Min() time.Duration { return r.min }
func (r DurationRangeData) Max() time.Duration { return r.max }

// IsZero reports whether both bounds are zero.
func (r DurationRangeData) IsZero() bool {
	return r.min == 0 && r.max == 0
}

// Resolve picks the concrete decay duration: min when the bounds match,
// otherwise a uniform draw from the inclusive millisecond range [min, max].
func (r DurationRangeData) Resolve() time.Duration {
	if r.min == r.max {
		return r.min
	}
	minMs := r.min.Milliseconds()
	maxMs := r.max.Milliseconds()
	ms := minMs + rng.Int63n(maxMs-minMs+1)
	return time.Duration(ms) * time.Millisecond
}
