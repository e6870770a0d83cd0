package rpg

import (
	"reflect"
	"slices"
)

// Modifier is an additive contribution to a Stat
// The pointer returned by AddModifier is the handle for RemoveModifier
type Modifier struct {
	Value  float64
	Source any // Opaque origin (item, buff), compared with == when comparable
}

// Stat is a named scalar: base value plus ordered additive modifiers
// Value never drops below zero
type Stat struct {
	name      string
	base      float64
	modifiers []*Modifier

	// OnChange runs after every mutation
	OnChange func(s *Stat)
}

// NewStat creates a stat with no modifiers
func NewStat(name string, base float64) *Stat {
	return &Stat{name: name, base: base}
}

func (s *Stat) Name() string       { return s.name }
func (s *Stat) Base() float64      { return s.base }
func (s *Stat) ModifierCount() int { return len(s.modifiers) }

// Value returns max(0, base + sum of modifiers)
func (s *Stat) Value() float64 {
	v := s.base
	for _, m := range s.modifiers {
		v += m.Value
	}
	if v < 0 {
		return 0
	}
	return v
}

// Modifiers returns a copy of the modifier list in insertion order
func (s *Stat) Modifiers() []Modifier {
	out := make([]Modifier, len(s.modifiers))
	for i, m := range s.modifiers {
		out[i] = *m
	}
	return out
}

func (s *Stat) SetBase(v float64) {
	s.base = v
	s.changed()
}

func (s *Stat) IncreaseBase(delta float64) {
	s.base += delta
	s.changed()
}

// AddModifier appends a modifier and returns its removal handle
func (s *Stat) AddModifier(value float64, source any) *Modifier {
	m := &Modifier{Value: value, Source: source}
	s.modifiers = append(s.modifiers, m)
	s.changed()
	return m
}

// RemoveModifier removes the modifier identified by handle
// Returns false if the handle was not attached, the change hook still runs
func (s *Stat) RemoveModifier(handle *Modifier) bool {
	idx := slices.Index(s.modifiers, handle)
	if idx >= 0 {
		s.modifiers = slices.Delete(s.modifiers, idx, idx+1)
	}
	s.changed()
	return idx >= 0
}

// RemoveAllModifiersFromSource removes every modifier whose source equals source
// Returns the number removed
func (s *Stat) RemoveAllModifiersFromSource(source any) int {
	before := len(s.modifiers)
	s.modifiers = slices.DeleteFunc(s.modifiers, func(m *Modifier) bool {
		return sameSource(m.Source, source)
	})
	s.changed()
	return before - len(s.modifiers)
}

func (s *Stat) ClearModifiers() {
	s.modifiers = s.modifiers[:0]
	s.changed()
}

func (s *Stat) changed() {
	if s.OnChange != nil {
		s.OnChange(s)
	}
}

// sameSource compares opaque sources without panicking on non-comparable dynamic types
func sameSource(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
