package fsm

import (
	"time"
)

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// TriggerTick marks automatic transitions evaluated on every Update
const TriggerTick = "Tick"

// Machine is a generic finite state machine driven by named triggers
// T is the context type passed to actions and guards (e.g. *engine.Battle)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes    map[StateID]*Node[T]
	nameToID map[string]StateID

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration

	// OnTransition runs after every completed transition, re-entry included
	OnTransition func(ctx T, from, to StateID)

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Trigger  string       // TriggerTick for auto-transitions
	Guard    GuardFunc[T] // nil = always true
	Reenter  bool         // Self-transition runs exit and enter actions
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)
