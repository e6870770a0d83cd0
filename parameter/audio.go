package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.6
)

// Effect envelopes
const (
	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 40 * time.Millisecond

	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 30 * time.Millisecond

	DamageSoundDuration = 180 * time.Millisecond
	DamageSoundAttack   = 5 * time.Millisecond
	DamageSoundRelease  = 120 * time.Millisecond

	ScoreNoteDuration = 90 * time.Millisecond
	ScoreNoteAttack   = 5 * time.Millisecond
	ScoreNoteRelease  = 60 * time.Millisecond

	StingerNoteDuration = 160 * time.Millisecond
	StingerNoteAttack   = 10 * time.Millisecond
	StingerNoteRelease  = 100 * time.Millisecond
)
