package renderer

import (
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/render"
)

// DebugRenderer draws the F1 panel: stat summaries and every registry metric
type DebugRenderer struct {
	visible bool
}

func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

func (r *DebugRenderer) IsVisible() bool { return r.visible }

func (r *DebugRenderer) SetVisible(v bool) { r.visible = v }

// Toggle flips visibility and returns the new state
func (r *DebugRenderer) Toggle() bool {
	r.visible = !r.visible
	return r.visible
}

func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := make([]string, 0, len(ctx.Metrics)+3)
	if ctx.PlayerStats != "" {
		lines = append(lines, "player "+ctx.PlayerStats)
	}
	if ctx.EnemyStats != "" {
		lines = append(lines, "enemy  "+ctx.EnemyStats)
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, ctx.Metrics...)

	_, top, _, innerH := ctx.View.Inner()
	w := min(parameter.DebugPanelWidth, ctx.ScreenWidth)
	h := min(len(lines)+2, innerH)
	if w < 4 || h < 3 {
		return
	}
	x := ctx.View.Right() - w
	drawPanel(buf, x, top, w, h, render.RgbTextDim, render.RgbPanelBg)

	for i, line := range lines[:h-2] {
		row := top + 1 + i
		runes := []rune(line)
		if len(runes) > w-2 {
			runes = runes[:w-2]
		}
		buf.Text(x+1, row, string(runes), render.RgbDebugKey, 0)
	}
}
