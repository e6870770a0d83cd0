package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps string metrics in bytes, cut on a rune boundary so HUD text stays valid UTF-8
const MaxStringLen = 24

// AtomicFloat is a float64 gauge stored as its IEEE bits, zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Add returns the updated value
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(cur float64) (float64, bool) { return cur + delta, true })
}

// StoreMax keeps the larger of the current value and v, used for peak gauges
func (f *AtomicFloat) StoreMax(v float64) float64 {
	return f.update(func(cur float64) (float64, bool) { return v, v > cur })
}

func (f *AtomicFloat) update(next func(cur float64) (float64, bool)) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		nv, ok := next(cur)
		if !ok {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(nv)) {
			return nv
		}
	}
}

// AtomicString holds a short label such as the battle state name, zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(v string) {
	if len(v) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	s.ptr.Store(&v)
}

func (s *AtomicString) Load() string {
	p := s.ptr.Load()
	if p == nil {
		return ""
	}
	return *p
}
