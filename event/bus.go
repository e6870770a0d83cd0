package event

import "slices"

// Emitter is the producer side of the bus
// Core components hold an Emitter so they can run without any consumer attached
type Emitter interface {
	Emit(ev GameEvent)
}

// Handler processes specific event types
// Consumers implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously from Emit on the simulation goroutine
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The bus uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler for the given types
type HandlerFunc struct {
	Fn    func(GameEvent)
	Types []EventType
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType  { return h.Types }

// Subscription identifies a registered handler for Unsubscribe
type Subscription uint64

type entry struct {
	id      Subscription
	handler Handler
}

// Bus dispatches feedback events to registered handlers
//
// Architecture:
//   - Synchronous dispatch, Emit returns after every handler ran
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events with no handlers are dropped
//   - Not safe for concurrent use, owned by the simulation goroutine
type Bus struct {
	handlers map[EventType][]entry
	nextID   Subscription
	tick     uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]entry),
	}
}

// Subscribe adds a handler for its declared event types
func (b *Bus) Subscribe(handler Handler) Subscription {
	b.nextID++
	id := b.nextID
	for _, t := range handler.EventTypes() {
		// Clip forces a fresh backing array so an in-flight Emit keeps its snapshot
		b.handlers[t] = append(slices.Clip(b.handlers[t]), entry{id: id, handler: handler})
	}
	return id
}

// SubscribeFunc registers fn for the listed event types
func (b *Bus) SubscribeFunc(fn func(GameEvent), types ...EventType) Subscription {
	return b.Subscribe(HandlerFunc{Fn: fn, Types: types})
}

// Unsubscribe removes every registration made under sub
// Returns false if sub was not registered
func (b *Bus) Unsubscribe(sub Subscription) bool {
	found := false
	for t, list := range b.handlers {
		kept := make([]entry, 0, len(list))
		for _, e := range list {
			if e.id == sub {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(b.handlers, t)
		} else {
			b.handlers[t] = kept
		}
	}
	return found
}

// SetTick sets the tick stamped on events emitted without one
func (b *Bus) SetTick(tick uint64) { b.tick = tick }

// Emit delivers ev to every handler registered for its type
func (b *Bus) Emit(ev GameEvent) {
	if ev.Tick == 0 {
		ev.Tick = b.tick
	}
	for _, e := range b.handlers[ev.Type] {
		e.handler.HandleEvent(ev)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (b *Bus) HasHandlers(t EventType) bool {
	return len(b.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}

// Emit sends ev through em when em is non-nil
func Emit(em Emitter, t EventType, payload any) {
	if em == nil {
		return
	}
	em.Emit(GameEvent{Type: t, Payload: payload})
}
