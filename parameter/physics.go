package parameter

// Arena geometry in world units, origin at the arena centre
const (
	ArenaHalfWidth  = 8.5
	ArenaHalfHeight = 4.5

	// GoalLineX is the |x| beyond which the orb centre counts as a goal
	GoalLineX = 8.5
)

// Orb motion
const (
	OrbBaseSpeed = 7.0
	OrbMaxSpeed  = 15.0
	OrbRadius    = 0.2

	// OrbLaunchAngleMinDeg and OrbLaunchAngleMaxDeg bound the random serve angle
	OrbLaunchAngleMinDeg = -45.0
	OrbLaunchAngleMaxDeg = 45.0
)

// Deflection
const (
	// MaxBounceAngleDeg is the deflection at the very edge of a paddle
	MaxBounceAngleDeg = 75.0

	// DeflectionStrength scales how much the edge offset bends the rebound (0-1)
	DeflectionStrength = 0.7

	// SpeedIncreasePerHit is a flat speed gain per paddle hit, unused by the battle preset
	SpeedIncreasePerHit = 0.0

	// PowerSpeedBoost is orb speed gained per point of the striker's Power
	PowerSpeedBoost = 0.05
)

// Classic preset
const (
	ClassicInitialSpeed        = 8.0
	ClassicMaxSpeed            = 15.0
	ClassicMaxBounceAngleDeg   = 60.0
	ClassicDeflectionStrength  = 1.0
	ClassicSpeedIncreasePerHit = 0.5
	ClassicLaunchAngleDeg      = 30.0
	ClassicScoreToWin          = 11
)
