package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note builds one shaped oscillator
func note(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// arpeggio plays freqs back to back with the stinger envelope
func arpeggio(rate beep.SampleRate, wave WaveType, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, wave, parameter.StingerNoteDuration, parameter.StingerNoteAttack, parameter.StingerNoteRelease, rate)
	}
	return beep.Seq(notes...)
}

// CreatePaddleSound is a short square blip
func CreatePaddleSound(rate beep.SampleRate) beep.Streamer {
	return note(440.0, WaveSquare, parameter.PaddleSoundDuration, parameter.PaddleSoundAttack, parameter.PaddleSoundRelease, rate)
}

// CreateWallSound is a softer, lower blip than the paddle
func CreateWallSound(rate beep.SampleRate) beep.Streamer {
	return note(220.0, WaveSine, parameter.WallSoundDuration, parameter.WallSoundAttack, parameter.WallSoundRelease, rate)
}

// CreateDamageSound mixes a low saw with noise for a hit thud
func CreateDamageSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := parameter.DamageSoundDuration, parameter.DamageSoundAttack, parameter.DamageSoundRelease
	return beep.Take(rate.N(d), beep.Mix(
		newVolume(note(90.0, WaveSaw, d, a, r, rate), 0.6),
		newVolume(note(0, WaveNoise, d, a, r, rate), 0.4),
	))
}

// CreateScoreSound is a rising two-note chime (C5, G5)
func CreateScoreSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := parameter.ScoreNoteDuration, parameter.ScoreNoteAttack, parameter.ScoreNoteRelease
	return beep.Seq(
		note(523.25, WaveSquare, d, a, r, rate),
		note(783.99, WaveSquare, d, a, r, rate),
	)
}

// CreateVictorySound is a major arpeggio (C5 E5 G5 C6)
func CreateVictorySound(rate beep.SampleRate) beep.Streamer {
	return arpeggio(rate, WaveSine, 523.25, 659.25, 783.99, 1046.50)
}

// CreateDefeatSound is a falling minor line (G4 Eb4 C4)
func CreateDefeatSound(rate beep.SampleRate) beep.Streamer {
	return arpeggio(rate, WaveSaw, 392.00, 311.13, 261.63)
}

// GetSoundEffect returns the streamer for soundType at cfg's volume and rate
func GetSoundEffect(soundType SoundType, cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch soundType {
	case SoundPaddle:
		s = CreatePaddleSound(rate)
	case SoundWall:
		s = CreateWallSound(rate)
	case SoundDamage:
		s = CreateDamageSound(rate)
	case SoundScore:
		s = CreateScoreSound(rate)
	case SoundVictory:
		s = CreateVictorySound(rate)
	case SoundDefeat:
		s = CreateDefeatSound(rate)
	default:
		return nil
	}
	return newVolume(s, effectVolumes[soundType]*cfg.MasterVolume)
}
