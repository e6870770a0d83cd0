package renderer

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/render"
)

// HealthBarRenderer draws both HP bars on the top HUD row, battle mode only
// Player bar is left-aligned and drains to the left, enemy bar mirrors it on the right
type HealthBarRenderer struct{}

func NewHealthBarRenderer() *HealthBarRenderer {
	return &HealthBarRenderer{}
}

func (r *HealthBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Mode != core.ModeBattle {
		return
	}
	const y = 0

	p, e := ctx.Snap.Player, ctx.Snap.Enemy
	pLabel, eLabel := "PLAYER ", " ENEMY"
	pValue := fmt.Sprintf(" %d/%d", p.HP, p.MaxHP)
	eValue := fmt.Sprintf("%d/%d ", e.HP, e.MaxHP)

	half := ctx.ScreenWidth / 2
	barW := func(label, value string) int {
		w := half - 2 - utf8.RuneCountInString(label) - utf8.RuneCountInString(value)
		return max(0, min(parameter.HPBarMaxWidth, w))
	}

	x := buf.Text(1, y, pLabel, render.RgbPlayer, tcell.AttrBold)
	w := barW(pLabel, pValue)
	drawHPBar(buf, x, y, w, hpRatio(p.HP, p.MaxHP), false)
	buf.Text(x+w, y, pValue, render.RgbText, 0)

	w = barW(eLabel, eValue)
	x = ctx.ScreenWidth - 1 - utf8.RuneCountInString(eLabel) - w - utf8.RuneCountInString(eValue)
	x = buf.Text(x, y, eValue, render.RgbText, 0)
	drawHPBar(buf, x, y, w, hpRatio(e.HP, e.MaxHP), true)
	buf.Text(x+w, y, eLabel, render.RgbEnemy, tcell.AttrBold)
}

func hpRatio(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}
	return float64(hp) / float64(maxHP)
}

// drawHPBar fills from the left, or from the right when mirrored
func drawHPBar(buf *render.RenderBuffer, x, y, w int, ratio float64, mirrored bool) {
	filled := int(math.Round(ratio * float64(w)))
	fg := render.GetHealthColor(ratio)
	for i := 0; i < w; i++ {
		col := x + i
		if mirrored {
			col = x + w - 1 - i
		}
		if i < filled {
			buf.SetFgOnly(col, y, parameter.HPBarFullChar, fg, 0)
		} else {
			buf.SetFgOnly(col, y, parameter.HPBarEmptyChar, render.RgbHPEmpty, 0)
		}
	}
}
