package physics

import (
	"github.com/lixenwraith/pong-quest/parameter"
)

// DeflectionProfile defines how a paddle redirects and accelerates the orb
// Profiles are pre-defined as package variables, engines copy and override from config
type DeflectionProfile struct {
	MaxBounceAngleDeg   float64 `toml:"max_bounce_angle_deg" yaml:"max_bounce_angle_deg"`
	Strength            float64 `toml:"deflection_strength" yaml:"deflection_strength"` // 0..1 share of MaxBounceAngle reachable at the paddle edge
	SpeedIncreasePerHit float64 `toml:"speed_increase_per_hit" yaml:"speed_increase_per_hit"`
	PowerSpeedBoost     float64 `toml:"power_speed_boost" yaml:"power_speed_boost"` // Speed per point of striker Power
}

// BattleDeflection is the RPG rule set: soft angles, Power drives acceleration
var BattleDeflection = DeflectionProfile{
	MaxBounceAngleDeg:   parameter.MaxBounceAngleDeg,
	Strength:            parameter.DeflectionStrength,
	SpeedIncreasePerHit: parameter.SpeedIncreasePerHit,
	PowerSpeedBoost:     parameter.PowerSpeedBoost,
}

// ClassicDeflection is plain Pong: full angle range, flat acceleration per hit
var ClassicDeflection = DeflectionProfile{
	MaxBounceAngleDeg:   parameter.ClassicMaxBounceAngleDeg,
	Strength:            parameter.ClassicDeflectionStrength,
	SpeedIncreasePerHit: parameter.ClassicSpeedIncreasePerHit,
	PowerSpeedBoost:     0,
}
