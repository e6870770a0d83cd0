package engine

import (
	"cmp"
	"slices"
)

// Timer tags used by the battle flow
const (
	TagServe    = "serve"
	TagTerminal = "terminal"
)

// TimerID identifies a scheduled callback
type TimerID uint64

type timer struct {
	id  TimerID
	due uint64
	tag string
	fn  func()
}

// Scheduler runs callbacks after a number of simulation ticks
// Not safe for concurrent use, owned by the engine's tick goroutine
type Scheduler struct {
	timers []timer // Sorted by due tick, then id
	nextID TimerID
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules fn for tick due under tag
func (s *Scheduler) At(due uint64, tag string, fn func()) TimerID {
	s.nextID++
	t := timer{id: s.nextID, due: due, tag: tag, fn: fn}
	idx, _ := slices.BinarySearchFunc(s.timers, t, func(a, b timer) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	s.timers = slices.Insert(s.timers, idx, t)
	return t.id
}

// Cancel removes one timer, returns false if it already ran or never existed
func (s *Scheduler) Cancel(id TimerID) bool {
	before := len(s.timers)
	s.timers = slices.DeleteFunc(s.timers, func(t timer) bool { return t.id == id })
	return len(s.timers) != before
}

// CancelTag removes every timer with tag and returns how many were removed
func (s *Scheduler) CancelTag(tag string) int {
	before := len(s.timers)
	s.timers = slices.DeleteFunc(s.timers, func(t timer) bool { return t.tag == tag })
	return before - len(s.timers)
}

// CancelAll drops every pending timer
func (s *Scheduler) CancelAll() int {
	n := len(s.timers)
	s.timers = s.timers[:0]
	return n
}

// RunDue runs timers due at or before tick in schedule order
// Timers cancelled by an earlier callback in the same pass do not run,
// timers scheduled during the pass wait for the next call
func (s *Scheduler) RunDue(tick uint64) int {
	limit := s.nextID
	ran := 0
	for {
		idx := slices.IndexFunc(s.timers, func(t timer) bool {
			return t.due <= tick && t.id <= limit
		})
		if idx < 0 {
			return ran
		}
		t := s.timers[idx]
		s.timers = slices.Delete(s.timers, idx, idx+1)
		t.fn()
		ran++
	}
}

// Pending reports whether a timer with tag is scheduled
func (s *Scheduler) Pending(tag string) bool {
	return slices.ContainsFunc(s.timers, func(t timer) bool { return t.tag == tag })
}

// Len returns the number of pending timers
func (s *Scheduler) Len() int { return len(s.timers) }
