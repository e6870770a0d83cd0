package physics

import (
	"math"

	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/vmath"
)

// Hit describes a resolved paddle deflection
type Hit struct {
	RelativeY float64 // -1 bottom edge .. 1 top edge
	AngleDeg  float64
	Speed     float64 // Orb speed after the hit
}

// CollidePaddle resolves contact between the orb and p during the step that moved it from prev
// A swept test against the paddle face catches fast orbs, an overlap test catches
// paddles moving into the orb. Only orbs travelling toward the paddle are deflected.
// power is the striker's Power stat, 0 when stat scaling is off
func CollidePaddle(o *Orb, prev vmath.Vec2, p *paddle.Paddle, prof DeflectionProfile, power float64) (Hit, bool) {
	if !o.Launched || p == nil {
		return Hit{}, false
	}
	dirX := p.Side.DirX() // Outward normal of the face
	if o.Vel.X*dirX >= 0 {
		return Hit{}, false
	}

	face := p.FaceX()
	contactY, ok := sweptContact(o, prev, p, face, dirX)
	if !ok {
		contactY, ok = overlapContact(o, p)
	}
	if !ok {
		return Hit{}, false
	}

	rel := RelativeHitY(contactY, p.Y, p.HalfHeight)
	angle := BounceAngle(rel, prof.MaxBounceAngleDeg, prof.Strength)

	o.AddSpeed(prof.SpeedIncreasePerHit + power*prof.PowerSpeedBoost)
	o.Vel = DeflectDirection(p.Side, angle).Scale(o.Speed)
	o.Pos = vmath.V(face+dirX*o.Radius, contactY)
	o.LastToucher = p.Side

	return Hit{RelativeY: rel, AngleDeg: angle, Speed: o.Speed}, true
}

// sweptContact intersects the orb's leading edge path with the face plane
func sweptContact(o *Orb, prev vmath.Vec2, p *paddle.Paddle, face, dirX float64) (float64, bool) {
	// Signed distance of the leading edge in front of the face, positive = arena side
	before := (prev.X-face)*dirX - o.Radius
	after := (o.Pos.X-face)*dirX - o.Radius
	if before < 0 || after > 0 {
		return 0, false
	}
	t := 1.0
	if before != after {
		t = before / (before - after)
	}
	y := prev.Y + (o.Pos.Y-prev.Y)*t
	if y < p.Bottom()-o.Radius || y > p.Top()+o.Radius {
		return 0, false
	}
	return y, true
}

// overlapContact tests the orb circle against the paddle rectangle
// The orb must not be fully behind the paddle
func overlapContact(o *Orb, p *paddle.Paddle) (float64, bool) {
	if math.Abs(o.Pos.X-p.X) > p.HalfWidth+o.Radius {
		return 0, false
	}
	back := p.X - p.Side.DirX()*p.HalfWidth
	if (o.Pos.X-back)*p.Side.DirX() < 0 {
		return 0, false
	}
	cx := vmath.Clamp(o.Pos.X, p.X-p.HalfWidth, p.X+p.HalfWidth)
	cy := vmath.Clamp(o.Pos.Y, p.Bottom(), p.Top())
	if o.Pos.Sub(vmath.V(cx, cy)).MagnitudeSq() > o.Radius*o.Radius {
		return 0, false
	}
	return cy, true
}
