package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock converts wall time into whole fixed steps with pause support
// Time spent paused never produces ticks
type Clock struct {
	mu sync.Mutex

	provider     TimeProvider
	tickInterval time.Duration
	maxCatchUp   int

	last        time.Time
	accumulator time.Duration
	dropped     time.Duration // Backlog discarded by the catch-up cap

	isPaused       atomic.Bool
	pauseStartTime time.Time
	totalPaused    time.Duration
}

// NewClock creates a clock stepping every tickInterval
// maxCatchUp bounds ticks released by one Advance after a stall
func NewClock(provider TimeProvider, tickInterval time.Duration, maxCatchUp int) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{
		provider:     provider,
		tickInterval: tickInterval,
		maxCatchUp:   max(1, maxCatchUp),
		last:         provider.Now(),
	}
}

// Advance returns how many ticks are due since the previous call
func (c *Clock) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	if c.isPaused.Load() {
		c.last = now
		return 0
	}

	c.accumulator += now.Sub(c.last)
	c.last = now

	ticks := int(c.accumulator / c.tickInterval)
	if ticks > c.maxCatchUp {
		excess := time.Duration(ticks-c.maxCatchUp) * c.tickInterval
		c.dropped += excess
		c.accumulator -= excess
		ticks = c.maxCatchUp
	}
	c.accumulator -= time.Duration(ticks) * c.tickInterval
	return ticks
}

// UntilNext returns the wait before the next tick is due
func (c *Clock) UntilNext() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isPaused.Load() {
		return c.tickInterval
	}
	wait := c.tickInterval - c.accumulator - c.provider.Now().Sub(c.last)
	return max(0, wait)
}

// Pause stops tick production
func (c *Clock) Pause() {
	if c.isPaused.CompareAndSwap(false, true) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.pauseStartTime = c.provider.Now()
	}
}

// Resume continues tick production without a catch-up burst
func (c *Clock) Resume() {
	if c.isPaused.CompareAndSwap(true, false) {
		c.mu.Lock()
		defer c.mu.Unlock()
		now := c.provider.Now()
		c.totalPaused += now.Sub(c.pauseStartTime)
		c.pauseStartTime = time.Time{}
		c.last = now
	}
}

// Toggle flips the pause state and returns the new state
func (c *Clock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	return c.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, current pause included
func (c *Clock) TotalPauseDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.totalPaused
	if c.isPaused.Load() && !c.pauseStartTime.IsZero() {
		total += c.provider.Now().Sub(c.pauseStartTime)
	}
	return total
}

// Dropped returns wall time discarded by the catch-up cap
func (c *Clock) Dropped() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}
