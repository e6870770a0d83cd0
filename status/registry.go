package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine and the frame loop
const (
	KeyTicks         = "engine.ticks"
	KeyTickNanos     = "engine.tick_ns"
	KeyDroppedTicks  = "engine.dropped_ticks"
	KeyPaused        = "engine.paused"
	KeyState         = "battle.state"
	KeyGoals         = "battle.goals"
	KeyPlayerScore   = "battle.score.player"
	KeyEnemyScore    = "battle.score.enemy"
	KeyOrbSpeed      = "orb.speed"
	KeyOrbPeakSpeed  = "orb.peak_speed"
	KeyPaddleHits    = "orb.paddle_hits"
	KeyWallBounces   = "orb.wall_bounces"
	KeyDamageDealt   = "combat.damage"
	KeyEventsEmitted = "bus.events"
	KeyAudioReady    = "audio.ready"
	KeyFPS           = "render.fps"
)

// Registry is the central metrics facade
// The engine caches pointers at construction; the tick loop writes directly to atomics,
// the HUD reads from its own goroutine
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as "key: value", grouped by type, keys sorted within a group
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %t", k, v.Load()))
	})
	return lines
}
