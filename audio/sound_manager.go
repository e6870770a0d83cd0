package audio

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/event"
	"github.com/lixenwraith/pong-quest/parameter"
)

// SoundManager plays effects for battle feedback events
// It is a bus Handler; Play hands finished streamers to the speaker's mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played [soundTypeCount]atomic.Uint64

	bus *event.Bus
	sub event.Subscription
}

// NewSoundManager creates a sound manager, Initialize opens the device
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the speaker, a disabled config skips the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLength)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	slog.Info("audio initialized", "sample_rate", sm.cfg.SampleRate, "volume", sm.cfg.MasterVolume)
	return nil
}

// Cleanup stops all sounds and detaches from the bus
func (sm *SoundManager) Cleanup() {
	sm.Detach()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues soundType, returns false when audio is down or muted
func (sm *SoundManager) Play(soundType SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[soundType].Add(1)
	return true
}

// Played returns how many times soundType reached the mixer
func (sm *SoundManager) Played(soundType SoundType) uint64 {
	if soundType < 0 || soundType >= soundTypeCount {
		return 0
	}
	return sm.played[soundType].Load()
}

// ToggleMute flips mute and returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool { return sm.muted.Load() }

// IsReady returns true once the speaker is open
func (sm *SoundManager) IsReady() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Attach subscribes to b, replacing any previous subscription
func (sm *SoundManager) Attach(b *event.Bus) {
	sm.Detach()
	sm.bus = b
	sm.sub = b.Subscribe(sm)
}

// Detach removes the bus subscription
func (sm *SoundManager) Detach() {
	if sm.bus != nil {
		sm.bus.Unsubscribe(sm.sub)
		sm.bus = nil
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPaddleHit,
		event.EventWallBounce,
		event.EventDamageTaken,
		event.EventScore,
		event.EventBattleStateChanged,
	}
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if st, ok := SoundFor(ev); ok {
		sm.Play(st)
	}
}

// SoundFor maps a feedback event to its effect
func SoundFor(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventPaddleHit:
		return SoundPaddle, true
	case event.EventWallBounce:
		return SoundWall, true
	case event.EventDamageTaken:
		return SoundDamage, true
	case event.EventScore:
		return SoundScore, true
	case event.EventBattleStateChanged:
		p, ok := ev.Payload.(*event.StateChangedPayload)
		if !ok {
			return 0, false
		}
		switch p.To {
		case core.StateVictory:
			return SoundVictory, true
		case core.StateDefeat:
			return SoundDefeat, true
		}
	}
	return 0, false
}
