package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings to the Clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with monotonic readings
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() MonotonicTimeProvider { return MonotonicTimeProvider{} }

func (MonotonicTimeProvider) Now() time.Time { return time.Now() }

// MockTimeProvider is a manually stepped clock for tests and headless runs
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d, negative values are ignored
func (m *MockTimeProvider) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Set jumps to t, allowing a test to simulate a wall-clock stall
func (m *MockTimeProvider) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}
