package vmath

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2         { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2         { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2    { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64      { return v.X*o.X + v.Y*o.Y }
func (v Vec2) IsZero() bool            { return v.X == 0 && v.Y == 0 }
func (v Vec2) Magnitude() float64      { return math.Hypot(v.X, v.Y) }
func (v Vec2) MagnitudeSq() float64    { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// WithMagnitude rescales v to length mag preserving direction
// Zero vector stays zero
func (v Vec2) WithMagnitude(mag float64) Vec2 {
	return v.Normalize().Scale(mag)
}

// ClampMagnitude limits vector to maxMag while preserving direction
func (v Vec2) ClampMagnitude(maxMag float64) Vec2 {
	mag := v.Magnitude()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

// Reflect returns velocity reflected off surface with given unit normal
// v' = v - 2 * dot(v, n) * n
func (v Vec2) Reflect(n Vec2) Vec2 {
	d := 2 * v.Dot(n)
	return Vec2{v.X - d*n.X, v.Y - d*n.Y}
}

// ReflectAxisY reflects off a horizontal wall (top/bottom edge)
func (v Vec2) ReflectAxisY() Vec2 { return Vec2{v.X, -v.Y} }

// ReflectAxisX reflects off a vertical wall (left/right edge)
func (v Vec2) ReflectAxisX() Vec2 { return Vec2{-v.X, v.Y} }

// FromAngle returns the unit vector at angle rad measured from +X
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}
