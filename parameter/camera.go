package parameter

import "time"

// Camera shake, applied by the renderer as a cell offset
const (
	ShakeDamageIntensity    = 3.0
	ShakeDamageDuration     = 300 * time.Millisecond
	ShakePaddleHitIntensity = 0.8
	ShakePaddleHitDuration  = 100 * time.Millisecond
)
