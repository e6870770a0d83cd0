package event

// EventType represents the type of feedback event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// === Combatant Events ===

	// EventHealthChanged signals a combatant's HP or max HP changed
	// Trigger: Health mutators | Payload: *HealthChangedPayload
	EventHealthChanged

	// EventDamageTaken signals effective damage applied to a combatant
	// Trigger: Health.TakeDamage | Payload: *DamagePayload
	EventDamageTaken

	// EventHealed signals HP restored by a positive amount
	// Trigger: Health.Heal | Payload: *DamagePayload
	EventHealed

	// EventDeath signals the alive to dead transition, emitted once per transition
	// Trigger: Health | Consumer: Battle | Payload: *SidePayload
	EventDeath

	// EventStatChanged signals any stat mutation
	// Trigger: Stat mutators | Payload: *StatChangedPayload
	EventStatChanged

	// === Battle Events ===

	// EventBattleStateChanged signals a battle FSM transition
	// Trigger: Battle | Payload: *StateChangedPayload
	EventBattleStateChanged

	// EventScore signals a goal, Side is the attacking (scoring) side
	// Trigger: goal resolution | Payload: *ScorePayload
	EventScore

	// EventTerminalScreen requests the victory/defeat screen after its delay
	// Trigger: Battle scheduler | Consumer: renderer | Payload: *StateChangedPayload
	EventTerminalScreen

	// === Orb Events ===

	// EventPaddleHit signals an orb deflection off a paddle
	// Trigger: orb physics | Consumer: audio, camera shake | Payload: *PaddleHitPayload
	EventPaddleHit

	// EventWallBounce signals an orb reflection off the top or bottom wall
	// Trigger: orb physics | Consumer: audio | Payload: nil
	EventWallBounce

	// EventOrbLaunched signals a serve
	// Trigger: Battle | Payload: *OrbPayload
	EventOrbLaunched

	// EventOrbReset signals the orb was recentred and stopped
	// Trigger: Battle | Payload: nil
	EventOrbReset

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventNone:               "None",
	EventHealthChanged:      "HealthChanged",
	EventDamageTaken:        "DamageTaken",
	EventHealed:             "Healed",
	EventDeath:              "Death",
	EventStatChanged:        "StatChanged",
	EventBattleStateChanged: "BattleStateChanged",
	EventScore:              "Score",
	EventTerminalScreen:     "TerminalScreen",
	EventPaddleHit:          "PaddleHit",
	EventWallBounce:         "WallBounce",
	EventOrbLaunched:        "OrbLaunched",
	EventOrbReset:           "OrbReset",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if n == name && i != int(EventNone) {
			return EventType(i), true
		}
	}
	return EventNone, false
}

// AllTypes returns every emittable event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount-1)
	for t := EventNone + 1; t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// GameEvent is a single notification on the bus
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
