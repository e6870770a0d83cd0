package input

import (
	"time"

	"github.com/lixenwraith/pong-quest/parameter"
)

// Axis turns discrete key presses into a held -1..1 signal
// A press engages the axis; it drops back to 0 once presses stop arriving
type Axis struct {
	dir       float64
	last      time.Time
	repeating bool
}

// Press engages dir at now
func (a *Axis) Press(dir float64, now time.Time) {
	a.repeating = dir == a.dir && !a.last.IsZero() && now.Sub(a.last) <= parameter.KeyInitialHold
	a.dir = dir
	a.last = now
}

// Value returns the held direction at now, 0 once the hold window lapses
func (a *Axis) Value(now time.Time) float64 {
	if a.dir == 0 {
		return 0
	}
	hold := parameter.KeyInitialHold
	if a.repeating {
		hold = parameter.KeyRepeatHold
	}
	if now.Sub(a.last) > hold {
		a.Release()
		return 0
	}
	return a.dir
}

// Release drops the axis to 0
func (a *Axis) Release() {
	a.dir = 0
	a.repeating = false
	a.last = time.Time{}
}
