package engine

import (
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/physics"
	"github.com/lixenwraith/pong-quest/rpg"
)

// Combatant groups everything one side owns
// Stats and Health may be nil, damage and stat terms are then skipped
type Combatant struct {
	Side   core.Side
	Paddle *paddle.Paddle
	Stats  *rpg.Stats
	Health *rpg.Health
	Policy paddle.Policy
	Speed  float64 // Base paddle speed before Agility
	Score  int
}

// Arena is the shared simulation state mutated only inside Engine.Tick and commands
type Arena struct {
	Bounds physics.Bounds
	Orb    *physics.Orb
	Player *Combatant
	Enemy  *Combatant
}

// Combatant returns the side's combatant, nil for SideNone
func (a *Arena) Combatant(side core.Side) *Combatant {
	switch side {
	case core.SidePlayer:
		return a.Player
	case core.SideEnemy:
		return a.Enemy
	default:
		return nil
	}
}

// Combatants returns both sides, player first
func (a *Arena) Combatants() [2]*Combatant {
	return [2]*Combatant{a.Player, a.Enemy}
}

// Recenter stops the orb at the centre and returns paddles home
func (a *Arena) Recenter() {
	a.Orb.ResetToCenter()
	a.Orb.ResetSpeed()
	for _, c := range a.Combatants() {
		c.Paddle.Reset()
	}
}
