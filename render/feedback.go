package render

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/event"
	"github.com/lixenwraith/pong-quest/parameter"
)

// Feedback turns bus events into transient visual state: camera shake,
// the goal banner and the victory/defeat screen
// Runs on the loop goroutine, same as the bus
type Feedback struct {
	now func() time.Time

	shakeIntensity float64
	shakeStart     time.Time
	shakeDuration  time.Duration

	banner      string
	bannerColor RGB
	bannerUntil time.Time

	showTerminal  bool
	terminalState core.BattleState

	bus *event.Bus
	sub event.Subscription
}

// NewFeedback creates the handler, nil clock uses time.Now
func NewFeedback(now func() time.Time) *Feedback {
	if now == nil {
		now = time.Now
	}
	return &Feedback{now: now}
}

// Attach subscribes to b, replacing any earlier subscription
func (f *Feedback) Attach(b *event.Bus) {
	f.Detach()
	f.bus = b
	f.sub = b.Subscribe(f)
}

// Detach removes the bus subscription
func (f *Feedback) Detach() {
	if f.bus != nil {
		f.bus.Unsubscribe(f.sub)
		f.bus = nil
	}
}

// EventTypes implements event.Handler
func (f *Feedback) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDamageTaken,
		event.EventPaddleHit,
		event.EventScore,
		event.EventTerminalScreen,
		event.EventBattleStateChanged,
	}
}

// HandleEvent implements event.Handler
func (f *Feedback) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventDamageTaken:
		f.Shake(parameter.ShakeDamageIntensity, parameter.ShakeDamageDuration)

	case event.EventPaddleHit:
		f.Shake(parameter.ShakePaddleHitIntensity, parameter.ShakePaddleHitDuration)

	case event.EventScore:
		p, ok := ev.Payload.(*event.ScorePayload)
		if !ok {
			return
		}
		msg := fmt.Sprintf("%s SCORES  %d : %d", sideLabel(p.Side), p.PlayerScore, p.EnemyScore)
		if p.Damage > 0 {
			msg += fmt.Sprintf("  (-%d HP)", p.Damage)
		}
		f.Flash(msg, SideColor(p.Side), parameter.GoalBannerDuration)

	case event.EventTerminalScreen:
		if p, ok := ev.Payload.(*event.StateChangedPayload); ok && p.To.Terminal() {
			f.showTerminal = true
			f.terminalState = p.To
		}

	case event.EventBattleStateChanged:
		if p, ok := ev.Payload.(*event.StateChangedPayload); ok && !p.To.Terminal() {
			f.showTerminal = false
		}
	}
}

// Shake starts a camera shake unless a stronger one is still running
func (f *Feedback) Shake(intensity float64, d time.Duration) {
	now := f.now()
	if f.remaining(now) > intensity {
		return
	}
	f.shakeIntensity = intensity
	f.shakeStart = now
	f.shakeDuration = d
}

// Flash shows msg in the status line for d
func (f *Feedback) Flash(msg string, color RGB, d time.Duration) {
	f.banner = msg
	f.bannerColor = color
	f.bannerUntil = f.now().Add(d)
}

// remaining returns the decayed shake amplitude at now
func (f *Feedback) remaining(now time.Time) float64 {
	if f.shakeDuration <= 0 {
		return 0
	}
	elapsed := now.Sub(f.shakeStart)
	if elapsed < 0 || elapsed >= f.shakeDuration {
		return 0
	}
	return f.shakeIntensity * (1 - float64(elapsed)/float64(f.shakeDuration))
}

// Offset returns the shake displacement in cells at now
// Horizontal swing is twice the vertical to match the cell aspect ratio
func (f *Feedback) Offset(now time.Time) (int, int) {
	amp := f.remaining(now)
	if amp == 0 {
		return 0, 0
	}
	t := now.Sub(f.shakeStart).Seconds()
	dx := math.Round(amp * math.Sin(t*90))
	dy := math.Round(amp * 0.5 * math.Cos(t*70))
	return int(dx), int(dy)
}

// Terminal reports the pending victory/defeat screen
func (f *Feedback) Terminal() (core.BattleState, bool) {
	return f.terminalState, f.showTerminal
}

// Apply copies the feedback state into a frame context
func (f *Feedback) Apply(ctx *RenderContext) {
	ctx.ShakeX, ctx.ShakeY = f.Offset(ctx.Now)
	if ctx.Now.Before(f.bannerUntil) {
		ctx.Banner = f.banner
		ctx.BannerColor = f.bannerColor
	}
	ctx.ShowTerminal = f.showTerminal
	ctx.TerminalState = f.terminalState
}

func sideLabel(s core.Side) string {
	switch s {
	case core.SidePlayer:
		return "PLAYER"
	case core.SideEnemy:
		return "ENEMY"
	default:
		return "NOBODY"
	}
}
