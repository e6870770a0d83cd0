package engine

import (
	"github.com/lixenwraith/pong-quest/core"
)

// CombatantSnapshot is a read-only copy of one side
type CombatantSnapshot struct {
	Y       float64 `msgpack:"y"`
	VY      float64 `msgpack:"vy"`
	HP      int     `msgpack:"hp"`
	MaxHP   int     `msgpack:"max_hp"`
	Score   int     `msgpack:"score"`
	Power   float64 `msgpack:"pwr"`
	Agility float64 `msgpack:"agi"`
	Grit    float64 `msgpack:"grt"`
	Focus   float64 `msgpack:"fcs"`
}

// OrbSnapshot is a read-only copy of the orb
type OrbSnapshot struct {
	X           float64   `msgpack:"x"`
	Y           float64   `msgpack:"y"`
	VX          float64   `msgpack:"vx"`
	VY          float64   `msgpack:"vy"`
	Speed       float64   `msgpack:"speed"`
	Launched    bool      `msgpack:"launched"`
	LastToucher core.Side `msgpack:"toucher"`
}

// Snapshot is a copy of the simulation state safe to hand to other goroutines
type Snapshot struct {
	Tick   uint64            `msgpack:"tick"`
	State  core.BattleState  `msgpack:"state"`
	Orb    OrbSnapshot       `msgpack:"orb"`
	Player CombatantSnapshot `msgpack:"player"`
	Enemy  CombatantSnapshot `msgpack:"enemy"`
}

// Snapshot copies the current state
func (e *Engine) Snapshot() Snapshot {
	o := e.arena.Orb
	return Snapshot{
		Tick:  e.tick,
		State: e.battle.State(),
		Orb: OrbSnapshot{
			X: o.Pos.X, Y: o.Pos.Y,
			VX: o.Vel.X, VY: o.Vel.Y,
			Speed:       o.Speed,
			Launched:    o.Launched,
			LastToucher: o.LastToucher,
		},
		Player: snapshotCombatant(e.arena.Player),
		Enemy:  snapshotCombatant(e.arena.Enemy),
	}
}

func snapshotCombatant(c *Combatant) CombatantSnapshot {
	s := CombatantSnapshot{
		Y:     c.Paddle.Y,
		VY:    c.Paddle.VY,
		Score: c.Score,
	}
	if c.Health != nil {
		s.HP, s.MaxHP = c.Health.Current(), c.Health.Max()
	}
	if c.Stats != nil {
		s.Power = c.Stats.Power.Value()
		s.Agility = c.Stats.Agility.Value()
		s.Grit = c.Stats.Grit.Value()
		s.Focus = c.Stats.Focus.Value()
	}
	return s
}
