package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/engine"
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/render"
)

type harness struct {
	screen tcell.SimulationScreen
	orch   *render.RenderOrchestrator
	debug  *DebugRenderer
	eng    *engine.Engine
	w, h   int
}

func newHarness(t *testing.T, cfg config.Config, w, h int) *harness {
	t.Helper()
	cfg.Seed = 1
	e, err := engine.New(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(e.Close)

	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(w, h)

	o := render.NewRenderOrchestrator(s)
	debug := RegisterAll(o, e.Registry())
	return &harness{screen: s, orch: o, debug: debug, eng: e, w: w, h: h}
}

func (h *harness) context() render.RenderContext {
	return render.NewContext(h.eng, h.w, h.h, time.Unix(0, 0))
}

func (h *harness) frame(ctx render.RenderContext) *render.RenderBuffer {
	h.orch.RenderFrame(ctx)
	return h.orch.Buffer()
}

func rowText(b *render.RenderBuffer, y int) string {
	w, _ := b.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(b *render.RenderBuffer) string {
	_, h := b.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(b, y)
	}
	return strings.Join(rows, "\n")
}

func TestFrame_ActiveBattle(t *testing.T) {
	h := newHarness(t, config.Default(), 80, 24)
	require.True(t, h.eng.StartBattle())

	ctx := h.context()
	buf := h.frame(ctx)
	v := ctx.View

	orbCol, orbRow := v.Col(0), v.Row(0)
	assert.Equal(t, parameter.OrbChar, buf.Get(orbCol, orbRow).Rune)
	r, _, _, _ := h.screen.GetContent(orbCol, orbRow)
	assert.Equal(t, parameter.OrbChar, r, "frame flushed to the screen")

	playerCol := v.Col(-ctx.Config.Paddle.Geometry.X)
	enemyCol := v.Col(ctx.Config.Paddle.Geometry.X)
	for row := v.Row(1); row <= v.Row(-1); row++ {
		assert.Equal(t, parameter.PaddleChar, buf.Get(playerCol, row).Rune, "player row %d", row)
		assert.Equal(t, render.RgbPlayer, buf.Get(playerCol, row).Fg)
		assert.Equal(t, parameter.PaddleChar, buf.Get(enemyCol, row).Rune, "enemy row %d", row)
	}
	assert.NotEqual(t, parameter.PaddleChar, buf.Get(playerCol, v.Row(2)).Rune)

	top := rowText(buf, 0)
	assert.Contains(t, top, "PLAYER")
	assert.Contains(t, top, "100/100")
	assert.Contains(t, top, "ENEMY")

	score := rowText(buf, 1)
	assert.Contains(t, score, "0  :  0")
	assert.Contains(t, score, "ACTIVE")
	assert.Contains(t, score, "BATTLE")

	assert.Contains(t, rowText(buf, 23), "Enter start")
	assert.Equal(t, '┌', buf.Get(0, v.Top).Rune)
	assert.NotContains(t, screenText(buf), "PONG QUEST")
}

func TestFrame_HPBarDrains(t *testing.T) {
	h := newHarness(t, config.Default(), 80, 24)
	require.True(t, h.eng.StartBattle())
	h.eng.Arena().Player.Health.SetHP(50)

	buf := h.frame(h.context())
	top := rowText(buf, 0)
	assert.Contains(t, top, "50/100")

	left := string([]rune(top)[:40])
	full := strings.Count(left, string(parameter.HPBarFullChar))
	empty := strings.Count(left, string(parameter.HPBarEmptyChar))
	assert.Positive(t, empty)
	assert.InDelta(t, full, empty, 1)
}

func TestFrame_ClassicHidesHP(t *testing.T) {
	h := newHarness(t, config.Classic(), 80, 24)
	require.True(t, h.eng.StartBattle())

	buf := h.frame(h.context())
	assert.NotContains(t, rowText(buf, 0), "PLAYER")
	assert.Contains(t, rowText(buf, 1), "CLASSIC to 11")
}

func TestFrame_IdleTitle(t *testing.T) {
	h := newHarness(t, config.Default(), 80, 24)
	buf := h.frame(h.context())
	text := screenText(buf)
	assert.Contains(t, text, "PONG QUEST")
	assert.Contains(t, text, "battle mode")
}

func TestFrame_TerminalScreen(t *testing.T) {
	h := newHarness(t, config.Default(), 80, 24)
	require.True(t, h.eng.StartBattle())

	ctx := h.context()
	ctx.ShowTerminal = true
	ctx.TerminalState = core.StateDefeat
	text := screenText(h.frame(ctx))
	assert.Contains(t, text, "DEFEAT")
	assert.Contains(t, text, "Enter rematch")

	ctx.TerminalState = core.StateVictory
	assert.Contains(t, screenText(h.frame(ctx)), "VICTORY")
}

func TestFrame_PauseAndStatusFlags(t *testing.T) {
	h := newHarness(t, config.Default(), 80, 24)
	require.True(t, h.eng.StartBattle())

	ctx := h.context()
	ctx.Paused = true
	ctx.Muted = true
	buf := h.frame(ctx)
	assert.Contains(t, screenText(buf), "p resume")
	status := rowText(buf, 23)
	assert.Contains(t, status, "PAUSED MUTED")

	ctx = h.context()
	ctx.Banner = "PLAYER SCORES  1 : 0"
	ctx.BannerColor = render.RgbPlayer
	status = rowText(h.frame(ctx), 23)
	assert.Contains(t, status, "PLAYER SCORES")
	assert.NotContains(t, status, "Enter start")
}

func TestFrame_DebugPanel(t *testing.T) {
	h := newHarness(t, config.Default(), 80, 24)
	require.True(t, h.eng.StartBattle())

	assert.NotContains(t, screenText(h.frame(h.context())), "PWR:")

	assert.True(t, h.debug.Toggle())
	text := screenText(h.frame(h.context()))
	assert.Contains(t, text, "player PWR:")
	assert.Contains(t, text, "engine.ticks")

	h.debug.SetVisible(false)
	assert.NotContains(t, screenText(h.frame(h.context())), "PWR:")
}

func TestFrame_ShakeOffsetsArena(t *testing.T) {
	h := newHarness(t, config.Default(), 80, 24)
	require.True(t, h.eng.StartBattle())

	ctx := h.context()
	ctx.ShakeX, ctx.ShakeY = 2, 1
	buf := h.frame(ctx)
	assert.Equal(t, parameter.OrbChar, buf.Get(ctx.View.Col(0)+2, ctx.View.Row(0)+1).Rune)
}

func TestFrame_TooSmall(t *testing.T) {
	h := newHarness(t, config.Default(), 30, 8)
	text := screenText(h.frame(h.context()))
	assert.Contains(t, text, "terminal too small")
	assert.NotContains(t, text, "PONG QUEST")
}
