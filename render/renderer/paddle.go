package renderer

import (
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/render"
)

// PaddleRenderer draws both paddles as vertical bars
type PaddleRenderer struct{}

func NewPaddleRenderer() *PaddleRenderer {
	return &PaddleRenderer{}
}

func (r *PaddleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Config == nil {
		return
	}
	geo := ctx.Config.Paddle.Geometry
	v := ctx.View

	for _, side := range [2]core.Side{core.SidePlayer, core.SideEnemy} {
		c := ctx.Combatant(side)
		// Player sits at -X, DirX is +1 for the player
		col := v.Col(-side.DirX()*geo.X) + ctx.ShakeX
		fg := render.SideColor(side)
		for row := v.Row(c.Y + geo.HalfHeight); row <= v.Row(c.Y-geo.HalfHeight); row++ {
			buf.SetFgOnly(col, row+ctx.ShakeY, parameter.PaddleChar, fg, 0)
		}
	}
}
