package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		nameToID:  make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry, must precede LoadConfig
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry, must precede LoadConfig
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	m.activeStateID = node.ID
	m.timeInState = 0
	runActions(ctx, node.OnEnter)
	return nil
}

// Update advances time in state, runs OnUpdate and evaluates Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return
	}
	m.timeInState += dt
	runActions(ctx, node.OnUpdate)
	m.Fire(ctx, TriggerTick)
}

// Fire evaluates the active state's transitions for trigger in declaration order
// Returns true if a transition was taken
func (m *Machine[T]) Fire(ctx T, trigger string) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Trigger != trigger {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		if trans.TargetID == m.activeStateID && !trans.Reenter {
			// Matched self-transition without re-entry consumes the trigger
			return false
		}
		m.transition(ctx, trans.TargetID)
		return true
	}
	return false
}

// CanFire reports whether trigger would take a transition without running it
func (m *Machine[T]) CanFire(ctx T, trigger string) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Trigger == trigger && (trans.Guard == nil || trans.Guard(ctx)) {
			return trans.TargetID != m.activeStateID || trans.Reenter
		}
	}
	return false
}

// Reenter runs exit and enter actions of the active state
func (m *Machine[T]) Reenter(ctx T) {
	if m.activeStateID == StateNone {
		return
	}
	m.transition(ctx, m.activeStateID)
}

func (m *Machine[T]) transition(ctx T, targetID StateID) {
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}
	from := m.activeStateID
	if current, ok := m.nodes[from]; ok {
		runActions(ctx, current.OnExit)
	}

	m.activeStateID = targetID
	m.timeInState = 0
	runActions(ctx, target.OnEnter)

	if m.OnTransition != nil {
		m.OnTransition(ctx, from, targetID)
	}
}

// Current returns the active StateID
func (m *Machine[T]) Current() StateID { return m.activeStateID }

// CurrentName returns the active state's name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// StateName resolves an ID to its name
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the active state
func (m *Machine[T]) TimeInState() time.Duration { return m.timeInState }

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}
