package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/render"
)

// OrbRenderer draws the orb, heated toward orange as it approaches max speed
type OrbRenderer struct{}

func NewOrbRenderer() *OrbRenderer {
	return &OrbRenderer{}
}

func (r *OrbRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	o := ctx.Snap.Orb
	fg := render.RgbTextDim
	if o.Launched && ctx.Config != nil {
		fg = render.GetSpeedColor(o.Speed, ctx.Config.Orb.BaseSpeed, ctx.Config.Orb.MaxSpeed)
	}
	col := ctx.View.Col(o.X) + ctx.ShakeX
	row := ctx.View.Row(o.Y) + ctx.ShakeY
	buf.SetFgOnly(col, row, parameter.OrbChar, fg, tcell.AttrBold)
}
