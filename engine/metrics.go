package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/pong-quest/status"
)

// engineMetrics caches registry pointers so the tick loop writes atomics directly
type engineMetrics struct {
	ticks       *atomic.Int64
	tickNanos   *atomic.Int64
	goals       *atomic.Int64
	playerScore *atomic.Int64
	enemyScore  *atomic.Int64
	paddleHits  *atomic.Int64
	wallBounces *atomic.Int64
	damage      *atomic.Int64
	orbSpeed    *status.AtomicFloat
	peakSpeed   *status.AtomicFloat
	state       *status.AtomicString
}

func newEngineMetrics(r *status.Registry) engineMetrics {
	return engineMetrics{
		ticks:       r.Ints.Get(status.KeyTicks),
		tickNanos:   r.Ints.Get(status.KeyTickNanos),
		goals:       r.Ints.Get(status.KeyGoals),
		playerScore: r.Ints.Get(status.KeyPlayerScore),
		enemyScore:  r.Ints.Get(status.KeyEnemyScore),
		paddleHits:  r.Ints.Get(status.KeyPaddleHits),
		wallBounces: r.Ints.Get(status.KeyWallBounces),
		damage:      r.Ints.Get(status.KeyDamageDealt),
		orbSpeed:    r.Floats.Get(status.KeyOrbSpeed),
		peakSpeed:   r.Floats.Get(status.KeyOrbPeakSpeed),
		state:       r.Strings.Get(status.KeyState),
	}
}
