package renderer

import (
	"github.com/lixenwraith/pong-quest/render"
)

// drawBox draws a single-line frame, interior untouched
func drawBox(buf *render.RenderBuffer, x, y, w, h int, fg render.RGB) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		buf.SetFgOnly(col, y, '─', fg, 0)
		buf.SetFgOnly(col, bottom, '─', fg, 0)
	}
	for row := y + 1; row < bottom; row++ {
		buf.SetFgOnly(x, row, '│', fg, 0)
		buf.SetFgOnly(right, row, '│', fg, 0)
	}
	buf.SetFgOnly(x, y, '┌', fg, 0)
	buf.SetFgOnly(right, y, '┐', fg, 0)
	buf.SetFgOnly(x, bottom, '└', fg, 0)
	buf.SetFgOnly(right, bottom, '┘', fg, 0)
}

// drawPanel fills a box background then frames it
func drawPanel(buf *render.RenderBuffer, x, y, w, h int, fg, bg render.RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			buf.SetWithBg(col, row, ' ', fg, bg)
		}
	}
	drawBox(buf, x, y, w, h, fg)
}
