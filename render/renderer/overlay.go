package renderer

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/render"
)

// OverlayRenderer draws modal panels: title, pause, victory/defeat, and the undersized-screen notice
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

type overlayLine struct {
	text  string
	fg    render.RGB
	attrs tcell.AttrMask
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.ScreenWidth < parameter.MinScreenWidth || ctx.ScreenHeight < parameter.MinScreenHeight {
		r.tooSmall(ctx, buf)
		return
	}

	score := fmt.Sprintf("%d  :  %d", ctx.Snap.Player.Score, ctx.Snap.Enemy.Score)
	switch {
	case ctx.ShowTerminal:
		title, fg := "VICTORY", render.RgbVictory
		if ctx.TerminalState == core.StateDefeat {
			title, fg = "DEFEAT", render.RgbDefeat
		}
		r.panel(ctx, buf, fg, []overlayLine{
			{title, fg, tcell.AttrBold},
			{score, render.RgbText, 0},
			{"", render.RgbText, 0},
			{"Enter rematch  r reset  q quit", render.RgbTextDim, 0},
		})

	case ctx.Snap.State == core.StateIdle:
		r.panel(ctx, buf, render.RgbArenaBorder, []overlayLine{
			{"PONG QUEST", render.RgbText, tcell.AttrBold},
			{ctx.Mode.String() + " mode", render.RgbTextDim, 0},
			{"", render.RgbText, 0},
			{"Enter start  q quit", render.RgbTextDim, 0},
		})

	case ctx.Paused:
		r.panel(ctx, buf, render.RgbWarning, []overlayLine{
			{"PAUSED", render.RgbWarning, tcell.AttrBold},
			{"p resume", render.RgbTextDim, 0},
		})
	}
}

// panel centres a framed box sized to its lines over the arena
func (r *OverlayRenderer) panel(ctx render.RenderContext, buf *render.RenderBuffer, frame render.RGB, lines []overlayLine) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l.text))
	}
	w += 6
	h := len(lines) + 2
	v := ctx.View
	x := v.Left + (v.Width-w)/2
	y := v.Top + (v.Height-h)/2

	drawPanel(buf, x, y, w, h, frame, render.RgbOverlay)
	for i, l := range lines {
		buf.TextCentered(x+1, x+w-2, y+1+i, l.text, l.fg, l.attrs)
	}
}

func (r *OverlayRenderer) tooSmall(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.Clear()
	msg := fmt.Sprintf("terminal too small (need %dx%d)", parameter.MinScreenWidth, parameter.MinScreenHeight)
	buf.TextCentered(0, ctx.ScreenWidth-1, ctx.ScreenHeight/2, msg, render.RgbWarning, 0)
}
