package renderer

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/render"
	"github.com/lixenwraith/pong-quest/status"
)

// KeyHints is the default status line content
const KeyHints = "Enter start  Space serve  r reset  p pause  m mute  F1 debug  q quit"

// ScoreRenderer draws mode, score and battle state on the second HUD row
type ScoreRenderer struct{}

func NewScoreRenderer() *ScoreRenderer {
	return &ScoreRenderer{}
}

func (r *ScoreRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	const y = 1

	mode := strings.ToUpper(ctx.Mode.String())
	if ctx.Mode == core.ModeClassic && ctx.Config != nil {
		mode += fmt.Sprintf(" to %d", ctx.Config.Combat.ScoreToWin)
	}
	buf.Text(1, y, mode, render.RgbTextDim, 0)

	score := fmt.Sprintf("%d  :  %d", ctx.Snap.Player.Score, ctx.Snap.Enemy.Score)
	buf.TextCentered(0, ctx.ScreenWidth-1, y, score, render.RgbText, tcell.AttrBold)

	state := strings.ToUpper(ctx.Snap.State.String())
	fg := render.RgbText
	switch ctx.Snap.State {
	case core.StateVictory:
		fg = render.RgbVictory
	case core.StateDefeat:
		fg = render.RgbDefeat
	}
	buf.Text(ctx.ScreenWidth-1-utf8.RuneCountInString(state), y, state, fg, 0)
}

// StatusBarRenderer draws hints or the current banner, plus pause/mute flags and fps
type StatusBarRenderer struct {
	// Cached metric pointers (zero-lock reads)
	statFPS   *atomic.Int64
	statTicks *atomic.Int64
}

func NewStatusBarRenderer(reg *status.Registry) *StatusBarRenderer {
	return &StatusBarRenderer{
		statFPS:   reg.Ints.Get(status.KeyFPS),
		statTicks: reg.Ints.Get(status.KeyTicks),
	}
}

func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.ScreenHeight - 1
	if y < 0 {
		return
	}

	if ctx.Banner != "" {
		buf.Text(1, y, ctx.Banner, ctx.BannerColor, tcell.AttrBold)
	} else {
		buf.Text(1, y, KeyHints, render.RgbTextDim, 0)
	}

	var flags []string
	if ctx.Paused {
		flags = append(flags, "PAUSED")
	}
	if ctx.Muted {
		flags = append(flags, "MUTED")
	}
	flags = append(flags, fmt.Sprintf("%dfps t%d", r.statFPS.Load(), r.statTicks.Load()))
	right := strings.Join(flags, " ")
	x := ctx.ScreenWidth - 1 - utf8.RuneCountInString(right)
	// Clear under the right block so it never mixes with long hints
	for col := x - 1; col < ctx.ScreenWidth; col++ {
		buf.SetFgOnly(col, y, ' ', render.RgbText, 0)
	}
	buf.Text(x, y, right, render.RgbWarning, 0)
}
