package paddle

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/vmath"
)

// Policy maps a control signal to the paddle's desired Y for one step
type Policy interface {
	TargetY(currentY, signal, speed, dt float64) float64
}

// DirectAxis treats signal as a -1..1 axis, keyboard or stick
type DirectAxis struct{}

func (DirectAxis) TargetY(currentY, signal, speed, dt float64) float64 {
	return currentY + vmath.Clamp(signal, -1, 1)*speed*dt
}

// Pointer treats signal as an absolute world Y, mouse or touch
// The paddle jumps to the pointer, Step clamps to bounds
type Pointer struct{}

func (Pointer) TargetY(_, signal, _, _ float64) float64 {
	return signal
}

// Tilt treats signal as a -1..1 device tilt scaled by Sensitivity
type Tilt struct {
	Sensitivity float64
}

func (t Tilt) TargetY(currentY, signal, speed, dt float64) float64 {
	return currentY + vmath.Clamp(signal, -1, 1)*t.Sensitivity*speed*dt
}

// OrbSource exposes the orb state a tracking policy follows
type OrbSource interface {
	Position() vmath.Vec2
	Velocity() vmath.Vec2
}

// Tracking follows the orb's Y without overshooting, the signal is ignored
type Tracking struct {
	Orb  OrbSource
	Side core.Side // Owner, decides which way is "incoming"

	// Prediction leads the orb by vy*Prediction*Difficulty while it approaches
	Prediction float64
	Difficulty float64
	// DeadZone holds position while the target is this close
	DeadZone float64
}

func (t *Tracking) TargetY(currentY, _, speed, dt float64) float64 {
	if t.Orb == nil {
		return currentY
	}
	pos := t.Orb.Position()
	ideal := pos.Y
	if t.Prediction != 0 && t.incoming() {
		ideal += t.Orb.Velocity().Y * t.Prediction * t.Difficulty
	}
	if math.Abs(ideal-currentY) <= t.DeadZone && t.DeadZone > 0 {
		return currentY
	}
	return vmath.MoveTowards(currentY, ideal, speed*dt)
}

// incoming reports whether the orb is travelling toward the owner's goal
func (t *Tracking) incoming() bool {
	vx := t.Orb.Velocity().X
	return vx*t.Side.DirX() < 0
}

// Scheme names an input strategy
type Scheme uint8

const (
	SchemeAxis Scheme = iota
	SchemePointer
	SchemeTilt
	SchemeTracking
)

func (s Scheme) String() string {
	switch s {
	case SchemeAxis:
		return "axis"
	case SchemePointer:
		return "pointer"
	case SchemeTilt:
		return "tilt"
	case SchemeTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// ParseScheme maps a config string to a Scheme
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keyboard", "axis":
		return SchemeAxis, nil
	case "mouse", "touch", "pointer":
		return SchemePointer, nil
	case "tilt", "gyro":
		return SchemeTilt, nil
	case "ai", "tracking":
		return SchemeTracking, nil
	default:
		return SchemeAxis, fmt.Errorf("unknown control scheme %q", s)
	}
}

// PolicyOptions feeds scheme-specific parameters to NewPolicy
type PolicyOptions struct {
	TiltSensitivity float64
	Orb             OrbSource
	Side            core.Side
	Prediction      float64
	Difficulty      float64
	DeadZone        float64
}

// NewPolicy builds the strategy for scheme
func NewPolicy(scheme Scheme, opts PolicyOptions) Policy {
	switch scheme {
	case SchemePointer:
		return Pointer{}
	case SchemeTilt:
		return Tilt{Sensitivity: opts.TiltSensitivity}
	case SchemeTracking:
		return &Tracking{
			Orb:        opts.Orb,
			Side:       opts.Side,
			Prediction: opts.Prediction,
			Difficulty: opts.Difficulty,
			DeadZone:   opts.DeadZone,
		}
	default:
		return DirectAxis{}
	}
}
