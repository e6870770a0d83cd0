package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/pong-quest/audio"
	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/engine"
	"github.com/lixenwraith/pong-quest/event"
	"github.com/lixenwraith/pong-quest/input"
	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/render"
	"github.com/lixenwraith/pong-quest/render/renderer"
	"github.com/lixenwraith/pong-quest/replay"
	"github.com/lixenwraith/pong-quest/status"
)

type interactiveOptions struct {
	KeymapPath string
	Record     string
	Debug      bool
}

// game owns every collaborator of an interactive session
// All fields are touched only by the loop goroutine
type game struct {
	cfg    config.Config
	screen tcell.Screen
	eng    *engine.Engine
	clock  *engine.Clock
	rec    *replay.Recorder // nil when not recording

	orch     *render.RenderOrchestrator
	feedback *render.Feedback
	debug    *renderer.DebugRenderer
	mapper   *input.Mapper
	sound    *audio.SoundManager
	scheme   paddle.Scheme

	width, height int

	// Cached metric pointers
	statFPS     *atomic.Int64
	statDropped *atomic.Int64
	statPaused  *atomic.Bool

	frames   int64
	fpsStart time.Time
}

// runInteractive opens the terminal and runs the frame loop until quit or signal
func runInteractive(ctx context.Context, cfg config.Config, o interactiveOptions, opts ...engine.Option) error {
	keys, err := input.LoadKeyConfigFile(o.KeymapPath)
	if err != nil {
		return err
	}
	scheme, err := paddle.ParseScheme(cfg.Player.Control)
	if err != nil {
		return fmt.Errorf("player control: %w", err)
	}

	registry := status.NewRegistry()
	bus := event.NewBus()
	eng, err := engine.New(cfg, bus, append(opts, engine.WithRegistry(registry))...)
	if err != nil {
		return err
	}
	defer eng.Close()

	eventCount := registry.Ints.Get(status.KeyEventsEmitted)
	bus.SubscribeFunc(func(event.GameEvent) { eventCount.Add(1) }, event.AllTypes()...)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "error", err)
	}
	sound.Attach(bus)
	defer sound.Cleanup()
	registry.Bools.Get(status.KeyAudioReady).Store(sound.IsReady())

	feedback := render.NewFeedback(nil)
	feedback.Attach(bus)
	defer feedback.Detach()

	orch := render.NewRenderOrchestrator(screen)
	debug := renderer.RegisterAll(orch, registry)
	debug.SetVisible(o.Debug)

	g := newGame(cfg, screen, eng, orch, feedback, debug, input.NewMapper(keys), sound, scheme, registry)
	if o.Record != "" {
		g.rec = replay.NewRecorder(eng)
	}

	events := make(chan tcell.Event, parameter.InputQueueSize)
	group, gctx := errgroup.WithContext(ctx)
	loopCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	group.Go(core.Guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-loopCtx.Done():
				return nil
			}
		}
	}))
	group.Go(core.Guard(func() error {
		defer cancel()
		// Fini unblocks PollEvent
		defer screen.Fini()
		return g.loop(loopCtx, events)
	}))

	err = group.Wait()
	if g.rec != nil {
		if serr := replay.Save(o.Record, g.rec.Finish()); serr != nil && err == nil {
			err = serr
		}
	}
	slog.Info("session ended", "ticks", eng.CurrentTick(), "state", eng.State())
	return err
}

func newGame(cfg config.Config, screen tcell.Screen, eng *engine.Engine, orch *render.RenderOrchestrator,
	feedback *render.Feedback, debug *renderer.DebugRenderer, mapper *input.Mapper, sound *audio.SoundManager,
	scheme paddle.Scheme, registry *status.Registry) *game {
	w, h := screen.Size()
	return &game{
		cfg:         cfg,
		screen:      screen,
		eng:         eng,
		clock:       engine.NewClock(nil, cfg.Timing.Tick, cfg.Timing.MaxCatchUpTicks),
		orch:        orch,
		feedback:    feedback,
		debug:       debug,
		mapper:      mapper,
		sound:       sound,
		scheme:      scheme,
		width:       w,
		height:      h,
		statFPS:     registry.Ints.Get(status.KeyFPS),
		statDropped: registry.Ints.Get(status.KeyDroppedTicks),
		statPaused:  registry.Bools.Get(status.KeyPaused),
	}
}

// loop multiplexes terminal events and the frame ticker
func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	g.draw(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if g.handle(g.mapper.Handle(ev, time.Now())) {
				return nil
			}

		case now := <-frameTicker.C:
			g.step(now)
			g.draw(now)
		}
	}
}

// handle applies one intent and reports whether the session should end
func (g *game) handle(it input.Intent) bool {
	switch it.Type {
	case input.IntentQuit:
		return true

	case input.IntentToggleMute:
		msg := "sound on"
		if g.sound.ToggleMute() {
			msg = "sound off"
		}
		g.feedback.Flash(msg, render.RgbWarning, parameter.StatusMessageTimeout)

	case input.IntentToggleDebug:
		g.debug.Toggle()

	case input.IntentPause:
		paused := g.clock.Toggle()
		g.statPaused.Store(paused)
		if paused {
			g.mapper.Release()
		}

	case input.IntentResize:
		g.width, g.height = g.screen.Size()
		g.orch.Resize(g.width, g.height)

	case input.IntentStart:
		if g.eng.State().Terminal() {
			g.command(replay.CmdReset)
			break
		}
		g.command(replay.CmdStart)
	case input.IntentReset:
		g.command(replay.CmdReset)
	case input.IntentLaunch:
		g.command(replay.CmdLaunch)
	}
	return false
}

// command runs a battle command, ignored while paused
func (g *game) command(kind replay.CommandKind) {
	if g.clock.IsPaused() {
		return
	}
	var ok bool
	if g.rec != nil {
		ok = g.rec.Command(kind)
	} else {
		ok = replay.Apply(g.eng, kind)
	}
	slog.Debug("command", "kind", kind, "applied", ok, "tick", g.eng.CurrentTick())
}

// step runs every fixed tick due since the last frame
func (g *game) step(now time.Time) {
	n := g.clock.Advance()
	if n == 0 {
		return
	}
	view := render.NewViewport(g.width, g.height, g.cfg.Arena)
	for i := 0; i < n; i++ {
		in := engine.Input{
			Player: g.mapper.Control(g.scheme, now, view, g.eng.Arena().Player.Paddle.Y),
		}
		if g.rec != nil {
			g.rec.Tick(in)
		} else {
			g.eng.Tick(in)
		}
	}
	g.statDropped.Store(int64(g.clock.Dropped() / g.cfg.Timing.Tick))
}

func (g *game) draw(now time.Time) {
	ctx := render.NewContext(g.eng, g.width, g.height, now)
	ctx.Paused = g.clock.IsPaused()
	ctx.Muted = g.sound.IsMuted()
	g.feedback.Apply(&ctx)
	g.orch.RenderFrame(ctx)

	if g.fpsStart.IsZero() {
		g.fpsStart = now
	}
	g.frames++
	if elapsed := now.Sub(g.fpsStart); elapsed >= time.Second {
		g.statFPS.Store(int64(float64(g.frames) / elapsed.Seconds()))
		g.frames = 0
		g.fpsStart = now
	}
}
