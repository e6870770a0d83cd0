package event

import "github.com/lixenwraith/pong-quest/core"

// HealthChangedPayload carries the post-change HP of a combatant
type HealthChangedPayload struct {
	Side    core.Side
	Current int
	Max     int
}

// DamagePayload carries an effective damage or healing amount
type DamagePayload struct {
	Side   core.Side
	Amount int
}

// SidePayload identifies a combatant
type SidePayload struct {
	Side core.Side
}

// StatChangedPayload carries the stat's value after the mutation
type StatChangedPayload struct {
	Side  core.Side
	Stat  string
	Value float64
}

// StateChangedPayload carries a battle FSM transition
type StateChangedPayload struct {
	From core.BattleState
	To   core.BattleState
}

// ScorePayload carries the scoring side and both running scores
type ScorePayload struct {
	Side        core.Side
	PlayerScore int
	EnemyScore  int
	Damage      int // Applied damage, 0 when the goal was not attributed
}

// PaddleHitPayload carries deflection details for feedback
type PaddleHitPayload struct {
	Side      core.Side
	RelativeY float64
	AngleDeg  float64
	Speed     float64
}

// OrbPayload carries the orb's velocity at launch
type OrbPayload struct {
	VelX, VelY float64
}
