package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testTick = 20 * time.Millisecond

func newTestClock(maxCatchUp int) (*Clock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	return NewClock(mock, testTick, maxCatchUp), mock
}

func TestClock_AccumulatesPartialTicks(t *testing.T) {
	c, mock := newTestClock(5)

	assert.Equal(t, 0, c.Advance())

	mock.Advance(15 * time.Millisecond)
	assert.Equal(t, 0, c.Advance())
	assert.Equal(t, 5*time.Millisecond, c.UntilNext())

	mock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, c.Advance(), "remainder carries over")

	mock.Advance(35 * time.Millisecond)
	assert.Equal(t, 2, c.Advance())
	assert.Equal(t, testTick, c.UntilNext())
}

func TestClock_CatchUpCap(t *testing.T) {
	c, mock := newTestClock(3)

	mock.Advance(10 * testTick)
	assert.Equal(t, 3, c.Advance())
	assert.Equal(t, 7*testTick, c.Dropped())

	mock.Advance(testTick)
	assert.Equal(t, 1, c.Advance(), "backlog discarded, not deferred")
}

func TestClock_PauseProducesNoTicks(t *testing.T) {
	c, mock := newTestClock(5)

	c.Pause()
	assert.True(t, c.IsPaused())
	mock.Advance(time.Second)
	assert.Equal(t, 0, c.Advance())
	assert.Equal(t, time.Second, c.TotalPauseDuration())

	c.Resume()
	assert.Equal(t, 0, c.Advance(), "no burst after resume")

	mock.Advance(testTick)
	assert.Equal(t, 1, c.Advance())
	assert.Equal(t, time.Second, c.TotalPauseDuration())
}

func TestClock_Toggle(t *testing.T) {
	c, _ := newTestClock(5)

	assert.True(t, c.Toggle())
	assert.True(t, c.IsPaused())
	assert.False(t, c.Toggle())
	assert.False(t, c.IsPaused())

	// Redundant calls are no-ops
	c.Resume()
	c.Pause()
	c.Pause()
	assert.True(t, c.IsPaused())
}
