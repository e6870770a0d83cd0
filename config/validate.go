package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/vmath"
)

// ErrInvalid marks a configuration that cannot be clamped into shape
var ErrInvalid = errors.New("invalid config")

// Validate clamps out-of-range tunables in place and rejects impossible ones
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Mode {
	case "battle", "classic", "pong":
	default:
		fail("unknown mode %q", c.Mode)
	}
	switch c.FirstServe {
	case "player", "enemy", "random":
	default:
		fail("unknown first_serve %q", c.FirstServe)
	}
	if _, err := paddle.ParseScheme(c.Player.Control); err != nil {
		fail("player control: %v", err)
	}
	if _, err := paddle.ParseScheme(c.Enemy.Control); err != nil {
		fail("enemy control: %v", err)
	}

	if c.Arena.HalfWidth <= 0 || c.Arena.HalfHeight <= 0 {
		fail("arena must have positive size, got %vx%v", c.Arena.HalfWidth, c.Arena.HalfHeight)
	}
	if c.Arena.GoalLineX <= 0 {
		fail("goal_line_x must be positive")
	}
	if c.Orb.BaseSpeed <= 0 {
		fail("orb base_speed must be positive")
	}
	if c.Orb.MaxSpeed < c.Orb.BaseSpeed {
		fail("orb max_speed %v below base_speed %v", c.Orb.MaxSpeed, c.Orb.BaseSpeed)
	}
	if c.Orb.Radius <= 0 {
		fail("orb radius must be positive")
	}
	if c.Timing.Tick <= 0 {
		fail("timing tick must be positive")
	}

	g := &c.Paddle.Geometry
	if g.HalfHeight <= 0 || g.HalfWidth <= 0 {
		fail("paddle extents must be positive")
	}
	if g.MinY > g.MaxY {
		fail("paddle min_y %v above max_y %v", g.MinY, g.MaxY)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	// Clamp soft ranges
	clamp("orb.launch_angle_min_deg", &c.Orb.LaunchAngleMinDeg, -89, 89)
	clamp("orb.launch_angle_max_deg", &c.Orb.LaunchAngleMaxDeg, -89, 89)
	if c.Orb.LaunchAngleMinDeg > c.Orb.LaunchAngleMaxDeg {
		c.Orb.LaunchAngleMinDeg, c.Orb.LaunchAngleMaxDeg = c.Orb.LaunchAngleMaxDeg, c.Orb.LaunchAngleMinDeg
	}
	clamp("deflection.max_bounce_angle_deg", &c.Deflection.MaxBounceAngleDeg, 0, 89)
	clamp("deflection.deflection_strength", &c.Deflection.Strength, 0, 1)
	clamp("deflection.speed_increase_per_hit", &c.Deflection.SpeedIncreasePerHit, 0, c.Orb.MaxSpeed)
	clamp("deflection.power_speed_boost", &c.Deflection.PowerSpeedBoost, 0, 1)
	clamp("combat.grit_reduction", &c.Combat.GritReduction, 0, 10)
	clamp("combat.power_damage_multiplier", &c.Combat.PowerDamageMultiplier, 0, 10)
	clamp("enemy.difficulty", &c.Enemy.Difficulty, 0, 1)
	clamp("player.difficulty", &c.Player.Difficulty, 0, 1)
	clamp("audio.master_volume", &c.Audio.MasterVolume, 0, 1)

	c.Combat.MaxHP = max(1, c.Combat.MaxHP)
	c.Combat.BaseDamage = max(0, c.Combat.BaseDamage)
	c.Combat.ScoreToWin = max(1, c.Combat.ScoreToWin)
	c.Timing.MaxCatchUpTicks = max(1, c.Timing.MaxCatchUpTicks)
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = Default().Audio.SampleRate
	}
	c.Player.Speed = max(0, c.Player.Speed)
	c.Enemy.Speed = max(0, c.Enemy.Speed)
	c.Player.DeadZone = max(0, c.Player.DeadZone)
	c.Enemy.DeadZone = max(0, c.Enemy.DeadZone)
	return nil
}

func clamp(key string, v *float64, lo, hi float64) {
	clamped := vmath.Clamp(*v, lo, hi)
	if clamped != *v {
		slog.Warn("config value clamped", "key", key, "value", *v, "clamped", clamped)
		*v = clamped
	}
}
