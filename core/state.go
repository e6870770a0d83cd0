package core

// BattleState is the top-level battle phase
type BattleState uint8

const (
	StateIdle BattleState = iota
	StateActive
	StateVictory
	StateDefeat
)

func (s BattleState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the battle has been decided
func (s BattleState) Terminal() bool {
	return s == StateVictory || s == StateDefeat
}

// Mode selects the rule set the engine runs with
type Mode uint8

const (
	// ModeBattle applies RPG stat scaling and converts goals into damage
	ModeBattle Mode = iota
	// ModeClassic is plain Pong: goals are points, first to the score limit wins
	ModeClassic
)

func (m Mode) String() string {
	if m == ModeClassic {
		return "classic"
	}
	return "battle"
}

// ParseMode maps a config string to Mode, unknown values fall back to ModeBattle
func ParseMode(s string) Mode {
	if s == "classic" || s == "pong" {
		return ModeClassic
	}
	return ModeBattle
}
