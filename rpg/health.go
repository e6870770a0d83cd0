package rpg

import (
	"log/slog"
	"math"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/event"
	"github.com/lixenwraith/pong-quest/parameter"
)

// HealthConfig carries the tunables a Health instance needs
type HealthConfig struct {
	MaxHP int
	// GritReduction is damage removed per point of Grit, 0 disables stat mitigation
	GritReduction float64
}

// DefaultHealthConfig returns battle-mode defaults
func DefaultHealthConfig() HealthConfig {
	return HealthConfig{
		MaxHP:         parameter.CombatMaxHP,
		GritReduction: parameter.GritDamageReduction,
	}
}

// Health tracks a combatant's hit points
// Invariant: 0 <= current <= max, dead exactly when current reaches 0
type Health struct {
	max          int
	current      int
	invulnerable bool
	dead         bool

	gritReduction float64
	stats         *Stats // optional, nil skips mitigation
	side          core.Side
	emitter       event.Emitter
}

// NewHealth creates a full-health combatant
func NewHealth(cfg HealthConfig, side core.Side, stats *Stats, emitter event.Emitter) *Health {
	maxHP := max(1, cfg.MaxHP)
	return &Health{
		max:           maxHP,
		current:       maxHP,
		gritReduction: cfg.GritReduction,
		stats:         stats,
		side:          side,
		emitter:       emitter,
	}
}

func (h *Health) Current() int       { return h.current }
func (h *Health) Max() int           { return h.max }
func (h *Health) Side() core.Side    { return h.side }
func (h *Health) IsAlive() bool      { return !h.dead }
func (h *Health) IsDead() bool       { return h.dead }
func (h *Health) Invulnerable() bool { return h.invulnerable }

// SetInvulnerable toggles damage immunity, healing is unaffected
func (h *Health) SetInvulnerable(v bool) { h.invulnerable = v }

// Percent returns current/max in [0, 1]
func (h *Health) Percent() float64 {
	return float64(h.current) / float64(h.max)
}

// Mitigate returns the damage left after Grit reduction, never below 1
func (h *Health) Mitigate(raw int) int {
	reduction := 0
	if h.stats == nil {
		if h.gritReduction > 0 {
			slog.Debug("health has no stats, skipping grit reduction", "side", h.side)
		}
	} else if h.gritReduction > 0 {
		reduction = int(math.Round(h.stats.Grit.Value() * h.gritReduction))
	}
	return max(1, raw-reduction)
}

// TakeDamage applies raw damage after mitigation and returns the amount applied
// No-op returning 0 while invulnerable or dead
func (h *Health) TakeDamage(raw int) int {
	if h.invulnerable || h.dead {
		return 0
	}
	effective := h.Mitigate(raw)
	h.current = max(0, h.current-effective)

	event.Emit(h.emitter, event.EventDamageTaken, &event.DamagePayload{Side: h.side, Amount: effective})
	h.emitHealth()
	slog.Debug("damage taken", "side", h.side, "raw", raw, "effective", effective, "hp", h.current)

	if h.current == 0 {
		h.die()
	}
	return effective
}

// Heal restores up to amount HP and returns the amount restored
// Dead entities cannot be healed, use Revive
func (h *Health) Heal(amount int) int {
	if h.dead || amount <= 0 {
		return 0
	}
	before := h.current
	h.current = min(h.max, h.current+amount)
	healed := h.current - before
	if healed > 0 {
		event.Emit(h.emitter, event.EventHealed, &event.DamagePayload{Side: h.side, Amount: healed})
		h.emitHealth()
	}
	return healed
}

// FullHeal heals to max, no-op when dead
func (h *Health) FullHeal() int { return h.Heal(h.max) }

// SetHP sets current HP clamped to [0, max]
// Reaching 0 kills, a positive value brings a dead entity back
func (h *Health) SetHP(v int) {
	h.current = min(h.max, max(0, v))
	h.emitHealth()
	switch {
	case h.current == 0 && !h.dead:
		h.die()
	case h.current > 0 && h.dead:
		h.dead = false
	}
}

// Revive brings the entity back with hp clamped to [1, max]
func (h *Health) Revive(hp int) {
	h.dead = false
	h.current = min(h.max, max(1, hp))
	h.emitHealth()
}

// SetMaxHP changes max HP (at least 1) and clamps current
func (h *Health) SetMaxHP(n int) {
	h.max = max(1, n)
	h.current = min(h.current, h.max)
	h.emitHealth()
}

func (h *Health) die() {
	h.dead = true
	slog.Info("combatant died", "side", h.side)
	event.Emit(h.emitter, event.EventDeath, &event.SidePayload{Side: h.side})
}

func (h *Health) emitHealth() {
	event.Emit(h.emitter, event.EventHealthChanged, &event.HealthChangedPayload{
		Side:    h.side,
		Current: h.current,
		Max:     h.max,
	})
}
