package status

import (
	"slices"
	"sync"
)

// MetricMap hands out stable pointers to values of type T keyed by metric name
// Writers cache the pointer once and update it lock-free afterwards
type MetricMap[T any] struct {
	mu   sync.RWMutex
	vals map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{vals: make(map[string]*T)}
}

// Get returns the value for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	p, ok := m.vals[key]
	m.mu.RUnlock()
	if ok {
		return p
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok = m.vals[key]; !ok {
		p = new(T)
		m.vals[key] = p
	}
	return p
}

func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.vals[key]
	return ok
}

// Keys returns registered names in sorted order
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.vals))
	for k := range m.vals {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Range visits metrics in key order; fn runs outside the lock and may call Get
func (m *MetricMap[T]) Range(fn func(key string, v *T)) {
	for _, k := range m.Keys() {
		m.mu.RLock()
		v := m.vals[k]
		m.mu.RUnlock()
		fn(k, v)
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vals)
}
