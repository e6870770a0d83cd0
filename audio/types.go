package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle  SoundType = iota // Orb off a paddle
	SoundWall                     // Orb off the top or bottom wall
	SoundDamage                   // Goal damage landed
	SoundScore                    // Goal scored
	SoundVictory                  // Battle won stinger
	SoundDefeat                   // Battle lost stinger
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundPaddle:  "paddle",
	SoundWall:    "wall",
	SoundDamage:  "damage",
	SoundScore:   "score",
	SoundVictory: "victory",
	SoundDefeat:  "defeat",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// effectVolumes is the per-effect gain applied under the master volume
var effectVolumes = [soundTypeCount]float64{
	SoundPaddle:  0.5,
	SoundWall:    0.3,
	SoundDamage:  0.6,
	SoundScore:   0.5,
	SoundVictory: 0.7,
	SoundDefeat:  0.7,
}
