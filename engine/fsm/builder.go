package fsm

// AddState registers an empty node, transitions and actions are compiled onto it by the loader
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	m.nameToID[name] = id
	return node
}
