package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.False(t, t2.Before(t1), "time went backwards")
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	assert.Equal(t, start, mock.Now())

	mock.Advance(5 * time.Second)
	assert.Equal(t, start.Add(5*time.Second), mock.Now())

	mock.Advance(20 * time.Millisecond)
	assert.Equal(t, start.Add(5*time.Second+20*time.Millisecond), mock.Now())
}

func TestMockTimeProvider_Concurrent(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Unix(0, 0).Add(time.Second), mock.Now())
}

func TestMockTimeProvider_SetAndNegativeAdvance(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(10, 0))
	mock.Advance(-time.Second)
	assert.Equal(t, time.Unix(10, 0), mock.Now())

	mock.Set(time.Unix(20, 0))
	assert.Equal(t, time.Unix(20, 0), mock.Now())
}
