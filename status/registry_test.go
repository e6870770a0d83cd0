package status

import (
	"sync"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMap_GetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	require.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), b.Load())
	assert.True(t, r.Ints.Has(KeyTicks))
	assert.False(t, r.Ints.Has(KeyGoals))
}

func TestMetricMap_ConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyPaddleHits).Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(16), r.Ints.Get(KeyPaddleHits).Load())
	assert.Equal(t, 1, r.Ints.Count())
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	assert.Equal(t, 2.0, f.Add(0.5))
	assert.Equal(t, 2.0, f.StoreMax(1))
	assert.Equal(t, 9.0, f.StoreMax(9))
	assert.Equal(t, 9.0, f.Get())
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("active")
	assert.Equal(t, "active", s.Load())
	s.Store("a string that is far too long for the hud")
	assert.Len(t, s.Load(), MaxStringLen)
}

func TestRegistry_Lines(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyState).Store("active")
	r.Ints.Get(KeyGoals).Store(2)
	r.Ints.Get(KeyTicks).Store(10)
	r.Floats.Get(KeyOrbSpeed).Set(7)
	r.Bools.Get(KeyPaused).Store(true)

	assert.Equal(t, []string{
		"battle.state: active",
		"battle.goals: 2",
		"engine.ticks: 10",
		"orb.speed: 7.00",
		"engine.paused: true",
	}, r.Lines())
	assert.Equal(t, 5, r.TotalCount())
}

func TestAtomicString_CutsOnRuneBoundary(t *testing.T) {
	var s AtomicString
	s.Store("défaite défaite défaite défaite")
	got := s.Load()
	assert.LessOrEqual(t, len(got), MaxStringLen)
	assert.True(t, utf8.ValidString(got))
}

func TestMetricMap_KeysSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("b")
	m.Get("a")
	m.Get("c")
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}
