package physics

import (
	"log/slog"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/vmath"
)

// OrbConfig holds the orb's tunables
type OrbConfig struct {
	BaseSpeed         float64 `toml:"base_speed" yaml:"base_speed"`
	MaxSpeed          float64 `toml:"max_speed" yaml:"max_speed"`
	Radius            float64 `toml:"radius" yaml:"radius"`
	LaunchAngleMinDeg float64 `toml:"launch_angle_min_deg" yaml:"launch_angle_min_deg"`
	LaunchAngleMaxDeg float64 `toml:"launch_angle_max_deg" yaml:"launch_angle_max_deg"`
}

// DefaultOrbConfig returns battle-mode orb defaults
func DefaultOrbConfig() OrbConfig {
	return OrbConfig{
		BaseSpeed:         parameter.OrbBaseSpeed,
		MaxSpeed:          parameter.OrbMaxSpeed,
		Radius:            parameter.OrbRadius,
		LaunchAngleMinDeg: parameter.OrbLaunchAngleMinDeg,
		LaunchAngleMaxDeg: parameter.OrbLaunchAngleMaxDeg,
	}
}

// Orb is the ball. It is either idle at rest or launched at Speed
// Speed stays within [BaseSpeed, MaxSpeed]
type Orb struct {
	Pos, Vel    vmath.Vec2
	Speed       float64
	BaseSpeed   float64
	MaxSpeed    float64
	Radius      float64
	LastToucher core.Side
	Launched    bool

	angleMin, angleMax float64
}

// NewOrb creates an idle orb at the origin
func NewOrb(cfg OrbConfig) *Orb {
	return &Orb{
		Speed:     cfg.BaseSpeed,
		BaseSpeed: cfg.BaseSpeed,
		MaxSpeed:  max(cfg.MaxSpeed, cfg.BaseSpeed),
		Radius:    cfg.Radius,
		angleMin:  cfg.LaunchAngleMinDeg,
		angleMax:  cfg.LaunchAngleMaxDeg,
	}
}

// Position and Velocity satisfy paddle.OrbSource
func (o *Orb) Position() vmath.Vec2 { return o.Pos }
func (o *Orb) Velocity() vmath.Vec2 { return o.Vel }

// Launch sends the orb toward side at a random angle within the launch range
// SideNone picks a side from rng, a nil rng falls back to a fixed seed
func (o *Orb) Launch(toward core.Side, rng *vmath.FastRand) vmath.Vec2 {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	if toward == core.SideNone {
		toward = core.SidePlayer
		if rng.Intn(2) == 1 {
			toward = core.SideEnemy
		}
	}
	angle := rng.Range(o.angleMin, o.angleMax)
	// Striking from the opposite side sends the orb toward `toward`
	dir := DeflectDirection(toward.Opponent(), angle)
	o.LaunchDirection(dir)
	slog.Debug("orb launched", "toward", toward, "angle", angle, "speed", o.Speed)
	return o.Vel
}

// LaunchDirection launches along dir at the current speed
// A zero direction is ignored
func (o *Orb) LaunchDirection(dir vmath.Vec2) {
	if dir.IsZero() {
		return
	}
	o.Vel = dir.WithMagnitude(o.Speed)
	o.Launched = true
}

// Step integrates one fixed step and bounces off the top and bottom walls
// Returns true on a wall bounce
func (o *Orb) Step(dt float64, b Bounds) bool {
	if !o.Launched || dt <= 0 {
		return false
	}
	o.Vel = o.Vel.WithMagnitude(o.Speed)
	CapSpeed(&o.Vel, o.MaxSpeed)
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
	return ReflectWalls(&o.Pos, &o.Vel, o.Radius, b.HalfHeight)
}

// AddSpeed accelerates up to MaxSpeed
func (o *Orb) AddSpeed(amount float64) {
	o.Speed = vmath.Clamp(o.Speed+amount, o.BaseSpeed, o.MaxSpeed)
}

// ResetToCenter stops the orb at the origin and forgets who touched it last
func (o *Orb) ResetToCenter() {
	o.Pos = vmath.Vec2{}
	o.Vel = vmath.Vec2{}
	o.Launched = false
	o.LastToucher = core.SideNone
}

// ResetSpeed returns to BaseSpeed
func (o *Orb) ResetSpeed() { o.Speed = o.BaseSpeed }

// Goal identifies the goal the orb entered
type Goal uint8

const (
	GoalNone Goal = iota
	GoalPlayer // Left goal, scored by the enemy
	GoalEnemy  // Right goal, scored by the player
)

// Defender returns the side whose goal was entered
func (g Goal) Defender() core.Side {
	switch g {
	case GoalPlayer:
		return core.SidePlayer
	case GoalEnemy:
		return core.SideEnemy
	default:
		return core.SideNone
	}
}

// Attacker returns the scoring side
func (g Goal) Attacker() core.Side { return g.Defender().Opponent() }

// CheckGoal reports whether the orb centre crossed a goal line
func (o *Orb) CheckGoal(b Bounds) Goal {
	if !o.Launched {
		return GoalNone
	}
	switch {
	case o.Pos.X < -b.GoalLineX:
		return GoalPlayer
	case o.Pos.X > b.GoalLineX:
		return GoalEnemy
	default:
		return GoalNone
	}
}
