package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown FSM config keys: %v", undecoded)
	}
	if len(config.States) == 0 {
		return fmt.Errorf("FSM config defines no states")
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeStateID = StateNone
	m.timeInState = 0

	// Sort keys for deterministic ID generation
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		stateNames = append(stateNames, name)
	}
	sort.Strings(stateNames)

	for i, name := range stateNames {
		m.AddState(StateID(i+1), name)
	}

	for _, name := range stateNames {
		cfg := config.States[name]
		if cfg == nil {
			continue
		}
		node := m.nodes[m.nameToID[name]]

		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' OnEnter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' OnUpdate: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' OnExit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	initialID, ok := m.nameToID[config.InitialState]
	if !ok {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID
	return nil
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	id, ok := m.nameToID[name]
	return id, ok
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}
		actions = append(actions, Action[T]{Func: fn, Args: cfg.Args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for _, cfg := range configs {
		targetID, ok := m.nameToID[cfg.Target]
		if !ok {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}
		if cfg.Trigger == "" {
			return fmt.Errorf("transition to '%s' has no trigger", cfg.Target)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			g, ok := m.guardReg[cfg.Guard]
			if !ok {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
			guard = g
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Trigger:  cfg.Trigger,
			Guard:    guard,
			Reenter:  cfg.Reenter,
		})
	}
	return nil
}
