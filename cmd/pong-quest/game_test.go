package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong-quest/audio"
	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/engine"
	"github.com/lixenwraith/pong-quest/event"
	"github.com/lixenwraith/pong-quest/input"
	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/render"
	"github.com/lixenwraith/pong-quest/render/renderer"
	"github.com/lixenwraith/pong-quest/replay"
	"github.com/lixenwraith/pong-quest/status"
)

var t0 = time.Unix(1_000_000, 0)

func newTestGame(t *testing.T) (*game, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 3
	cfg.Audio.Enabled = false

	reg := status.NewRegistry()
	bus := event.NewBus()
	eng, err := engine.New(cfg, bus, engine.WithRegistry(reg))
	require.NoError(t, err)
	t.Cleanup(eng.Close)

	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(80, 24)

	fb := render.NewFeedback(nil)
	fb.Attach(bus)
	orch := render.NewRenderOrchestrator(s)
	debug := renderer.RegisterAll(orch, reg)

	g := newGame(cfg, s, eng, orch, fb, debug, input.NewMapper(nil), audio.NewSoundManager(cfg.Audio), paddle.SchemeAxis, reg)
	clk := engine.NewMockTimeProvider(t0)
	g.clock = engine.NewClock(clk, cfg.Timing.Tick, cfg.Timing.MaxCatchUpTicks)
	return g, clk
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func runeKey(r rune) *tcell.EventKey  { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func (g *game) press(ev tcell.Event) bool { return g.handle(g.mapper.Handle(ev, t0)) }

func TestGame_StartAndStep(t *testing.T) {
	g, clk := newTestGame(t)

	assert.False(t, g.press(key(tcell.KeyEnter)))
	assert.Equal(t, core.StateActive, g.eng.State())

	clk.Advance(100 * time.Millisecond)
	g.step(t0)
	assert.Equal(t, uint64(5), g.eng.CurrentTick())

	g.step(t0)
	assert.Equal(t, uint64(5), g.eng.CurrentTick(), "no time, no ticks")
}

func TestGame_KeyboardMovesPaddle(t *testing.T) {
	g, clk := newTestGame(t)
	g.press(key(tcell.KeyEnter))

	g.press(key(tcell.KeyUp))
	clk.Advance(100 * time.Millisecond)
	g.step(t0)
	assert.Greater(t, g.eng.Arena().Player.Paddle.Y, 0.0)
}

func TestGame_PauseBlocksCommands(t *testing.T) {
	g, clk := newTestGame(t)
	g.press(key(tcell.KeyEnter))

	g.press(runeKey('p'))
	assert.True(t, g.clock.IsPaused())
	assert.True(t, g.statPaused.Load())

	g.press(runeKey(' '))
	assert.False(t, g.eng.Snapshot().Orb.Launched, "launch ignored while paused")

	clk.Advance(time.Second)
	g.step(t0)
	assert.Zero(t, g.eng.CurrentTick())

	g.press(runeKey('p'))
	g.press(runeKey(' '))
	assert.True(t, g.eng.Snapshot().Orb.Launched)
}

func TestGame_EnterAfterDefeatRematches(t *testing.T) {
	g, clk := newTestGame(t)
	g.press(key(tcell.KeyEnter))

	hp := g.eng.Arena().Player.Health
	hp.SetHP(0)
	clk.Advance(40 * time.Millisecond)
	g.step(t0)
	require.Equal(t, core.StateDefeat, g.eng.State())

	g.press(key(tcell.KeyEnter))
	assert.Equal(t, core.StateActive, g.eng.State())
	assert.Equal(t, hp.Max(), hp.Current())
	assert.True(t, hp.IsAlive())
}

func TestGame_Toggles(t *testing.T) {
	g, _ := newTestGame(t)

	assert.True(t, g.sound.IsMuted(), "disabled audio starts muted")
	g.press(runeKey('m'))
	assert.False(t, g.sound.IsMuted())

	ctx := render.RenderContext{Now: time.Now()}
	g.feedback.Apply(&ctx)
	assert.Equal(t, "sound on", ctx.Banner)

	assert.False(t, g.debug.IsVisible())
	g.press(key(tcell.KeyF1))
	assert.True(t, g.debug.IsVisible())

	assert.True(t, g.press(runeKey('q')))
	assert.True(t, g.press(key(tcell.KeyCtrlC)))
}

func TestGame_Resize(t *testing.T) {
	g, _ := newTestGame(t)
	g.screen.(tcell.SimulationScreen).SetSize(100, 30)
	g.press(tcell.NewEventResize(100, 30))

	assert.Equal(t, 100, g.width)
	assert.Equal(t, 30, g.height)
	w, h := g.orch.Buffer().Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
}

func TestGame_DrawPublishesFrame(t *testing.T) {
	g, _ := newTestGame(t)
	g.press(key(tcell.KeyEnter))
	g.draw(t0)

	buf := g.orch.Buffer()
	var row strings.Builder
	for x := 0; x < 80; x++ {
		if r := buf.Get(x, 1).Rune; r != 0 {
			row.WriteRune(r)
		} else {
			row.WriteRune(' ')
		}
	}
	assert.Contains(t, row.String(), "ACTIVE")

	g.draw(t0.Add(2 * time.Second))
	assert.Positive(t, g.statFPS.Load())
}

func TestGame_RecordingReplays(t *testing.T) {
	g, clk := newTestGame(t)
	g.rec = replay.NewRecorder(g.eng)

	g.press(key(tcell.KeyEnter))
	for i := 0; i < 40; i++ {
		if i == 10 {
			g.press(runeKey(' '))
		}
		if i%7 == 0 {
			g.press(key(tcell.KeyDown))
		}
		clk.Advance(100 * time.Millisecond)
		g.step(t0.Add(time.Duration(i) * 100 * time.Millisecond))
	}

	log := g.rec.Finish()
	assert.Equal(t, 200, len(log.Inputs))
	require.NoError(t, replay.Verify(log))
}

func TestGame_LoopExits(t *testing.T) {
	g, _ := newTestGame(t)

	events := make(chan tcell.Event, 1)
	events <- runeKey('q')
	assert.NoError(t, g.loop(context.Background(), events))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, g.loop(ctx, make(chan tcell.Event)))
}

func TestHeadless_RecordAndVerify(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	path := filepath.Join(t.TempDir(), "run.pqr")

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), cfg, headlessOptions{
		Ticks:  600,
		Record: path,
		Out:    &out,
	}))
	assert.Contains(t, out.String(), "seed 7")
	assert.Contains(t, out.String(), "replay written to")

	out.Reset()
	require.NoError(t, verifyReplay(path, &out))
	assert.True(t, strings.HasPrefix(out.String(), "replay ok: 600 ticks, 1 commands"), out.String())
}

func TestHeadless_DecidesBattle(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Combat.MaxHP = 1

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), cfg, headlessOptions{Ticks: 200000, Out: &out}))
	s := out.String()
	assert.True(t, strings.HasPrefix(s, "victory") || strings.HasPrefix(s, "defeat"), s)
}

func TestLoadConfig_Layers(t *testing.T) {
	cfg, err := loadConfig("", "classic", 9)
	require.NoError(t, err)
	assert.Equal(t, core.ModeClassic, cfg.GameMode())
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.False(t, cfg.StatScaling)

	t.Setenv("PONG_QUEST_MODE", "classic")
	cfg, err = loadConfig("", "battle", 0)
	require.NoError(t, err)
	assert.Equal(t, core.ModeBattle, cfg.GameMode())

	_, err = loadConfig(filepath.Join(t.TempDir(), "cfg.ini"), "", 0)
	assert.NoError(t, err, "missing file keeps defaults")
}

func TestLoadConfig_ModeFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classic.toml")
	require.NoError(t, config.Save(path, config.Classic()))

	cfg, err := loadConfig(path, "battle", 0)
	require.NoError(t, err)
	assert.Equal(t, core.ModeBattle, cfg.GameMode())
	assert.True(t, cfg.StatScaling)
	assert.Equal(t, config.Default().Deflection, cfg.Deflection)
	assert.Equal(t, config.Default().Orb.BaseSpeed, cfg.Orb.BaseSpeed)

	_, err = loadConfig(path, "arcade", 0)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
