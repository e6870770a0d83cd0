package physics

import (
	"math"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/vmath"
)

// BounceAngle converts a paddle-relative hit offset in [-1, 1] to degrees
// |result| <= maxDeg*strength, a centre hit returns 0
func BounceAngle(relativeY, maxDeg, strength float64) float64 {
	return vmath.Clamp(relativeY, -1, 1) * maxDeg * strength
}

// RelativeHitY maps a contact point to [-1, 1] across the paddle's height
func RelativeHitY(contactY, centerY, halfHeight float64) float64 {
	if halfHeight <= 0 {
		return 0
	}
	return vmath.Clamp((contactY-centerY)/halfHeight, -1, 1)
}

// DeflectDirection returns the unit direction leaving a paddle owned by side
// Player strikes toward +X, Enemy toward -X
func DeflectDirection(side core.Side, angleDeg float64) vmath.Vec2 {
	rad := angleDeg * vmath.DegToRad
	return vmath.V(side.DirX()*math.Cos(rad), math.Sin(rad)).Normalize()
}

// GoalDamage returns max(1, base + round(power*multiplier))
func GoalDamage(base int, power, multiplier float64) int {
	return max(1, base+vmath.RoundInt(power*multiplier))
}
