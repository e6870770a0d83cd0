package parameter

// Paddle geometry and motion
const (
	// PaddleX is the |x| of both paddle centres
	PaddleX = 7.5

	PaddleHalfHeight = 1.0
	PaddleHalfWidth  = 0.15

	// PaddleMinY and PaddleMaxY bound the paddle centre
	PaddleMinY = -3.5
	PaddleMaxY = 3.5

	// PaddleBaseSpeed is player paddle speed before Agility
	PaddleBaseSpeed = 8.0

	// AgilitySpeedMultiplier is paddle speed gained per point of Agility
	AgilitySpeedMultiplier = 0.1

	// TiltSensitivity scales the tilt axis
	TiltSensitivity = 1.5
)

// Tracking AI
const (
	EnemyBaseSpeed = 6.0

	// EnemyPrediction leads the orb by vy * prediction * difficulty, 0 = pure tracking
	EnemyPrediction = 0.0
	EnemyDifficulty = 0.5
	EnemyDeadZone   = 0.0
)
