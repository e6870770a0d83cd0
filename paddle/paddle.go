package paddle

import (
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/vmath"
)

// Paddle is a vertical bar constrained to [MinY, MaxY]
// Y is authoritative, VY is derived from the last step
type Paddle struct {
	Side       core.Side
	X, Y       float64
	HomeY      float64
	HalfHeight float64
	HalfWidth  float64
	MinY, MaxY float64
	VY         float64
}

// Geometry describes paddle placement, mirrored for the enemy
type Geometry struct {
	X          float64 `toml:"x" yaml:"x"` // Distance from centre, sign applied per side
	HalfHeight float64 `toml:"half_height" yaml:"half_height"`
	HalfWidth  float64 `toml:"half_width" yaml:"half_width"`
	MinY       float64 `toml:"min_y" yaml:"min_y"`
	MaxY       float64 `toml:"max_y" yaml:"max_y"`
}

// New places a paddle for side, player on the left
func New(side core.Side, g Geometry) *Paddle {
	x := g.X
	if side == core.SidePlayer {
		x = -x
	}
	return &Paddle{
		Side:       side,
		X:          x,
		HalfHeight: g.HalfHeight,
		HalfWidth:  g.HalfWidth,
		MinY:       g.MinY,
		MaxY:       g.MaxY,
	}
}

// Top and Bottom are the paddle's vertical extents
func (p *Paddle) Top() float64    { return p.Y + p.HalfHeight }
func (p *Paddle) Bottom() float64 { return p.Y - p.HalfHeight }

// FaceX is the x of the face pointing at the arena centre
func (p *Paddle) FaceX() float64 {
	if p.X < 0 {
		return p.X + p.HalfWidth
	}
	return p.X - p.HalfWidth
}

// Step moves the paddle toward the policy's target and derives VY
// A clamped move leaves no residual velocity beyond the actual displacement
func (p *Paddle) Step(policy Policy, signal, speed, dt float64) {
	if dt <= 0 {
		return
	}
	old := p.Y
	target := old
	if policy != nil {
		target = policy.TargetY(old, signal, speed, dt)
	}
	p.Y = vmath.Clamp(target, p.MinY, p.MaxY)
	p.VY = (p.Y - old) / dt
}

// Reset recentres the paddle on its home position
func (p *Paddle) Reset() {
	p.Y = vmath.Clamp(p.HomeY, p.MinY, p.MaxY)
	p.VY = 0
}

// EffectiveSpeed returns base speed with the agility bonus
func EffectiveSpeed(base, agility, multiplier float64) float64 {
	return base + agility*multiplier
}
