package physics

import (
	"github.com/lixenwraith/pong-quest/vmath"
)

// Bounds is the playable rectangle, centred on the origin
type Bounds struct {
	HalfWidth  float64 `toml:"half_width" yaml:"half_width"`
	HalfHeight float64 `toml:"half_height" yaml:"half_height"`
	GoalLineX  float64 `toml:"goal_line_x" yaml:"goal_line_x"` // Orb centre beyond ±GoalLineX scores
}

// CapSpeed limits the velocity magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	if vel.MagnitudeSq() > maxSpeed*maxSpeed {
		*vel = vel.ClampMagnitude(maxSpeed)
		return true
	}
	return false
}

// ReflectWalls bounces a circle of radius r off the top and bottom edges
// The position is pushed back inside and the vertical velocity points away from the wall
func ReflectWalls(pos, vel *vmath.Vec2, r, halfHeight float64) bool {
	top := halfHeight - r
	bottom := -halfHeight + r
	switch {
	case pos.Y > top:
		pos.Y = top - (pos.Y - top)
		if pos.Y < bottom {
			pos.Y = bottom
		}
		if vel.Y > 0 {
			vel.Y = -vel.Y
		}
		return true
	case pos.Y < bottom:
		pos.Y = bottom + (bottom - pos.Y)
		if pos.Y > top {
			pos.Y = top
		}
		if vel.Y < 0 {
			vel.Y = -vel.Y
		}
		return true
	}
	return false
}
