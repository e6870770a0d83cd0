package renderer

import (
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/render"
)

// ArenaRenderer draws the border, goal zones and the dashed centre line
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render draws the arena shifted by the camera shake
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	dx, dy := ctx.ShakeX, ctx.ShakeY
	left, top, w, h := v.Inner()

	for row := top; row < top+h; row++ {
		buf.SetBgOnly(left+dx, row+dy, render.RgbGoalZone)
		buf.SetBgOnly(left+w-1+dx, row+dy, render.RgbGoalZone)
	}

	cx := v.Col(0)
	for row := top; row < top+h; row += 2 {
		buf.SetFgOnly(cx+dx, row+dy, parameter.CenterLineChar, render.RgbCenterLine, 0)
	}

	drawBox(buf, v.Left+dx, v.Top+dy, v.Width, v.Height, render.RgbArenaBorder)
}
