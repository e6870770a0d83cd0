package render

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is a compositor backed by a Cell array with touched tracking
// Untouched cells get the default background at flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Size returns width and height in cells
func (b *RenderBuffer) Size() (int, int) { return b.width, b.height }

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y, the empty cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// SetFgOnly writes rune, foreground and attrs while preserving the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background while preserving rune and foreground
// Marks the cell touched
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes an opaque cell
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// BlendBg mixes bg over the current background
func (b *RenderBuffer) BlendBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	base := b.cells[idx].Bg
	if !b.touched[idx] {
		base = RgbBackground
	}
	b.cells[idx].Bg = Blend(base, bg, alpha)
	b.touched[idx] = true
}

// Text writes s starting at x and returns the column after the last rune
// Runes past the right edge are dropped
func (b *RenderBuffer) Text(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg, attrs)
		x++
	}
	return x
}

// TextCentered writes s centred on the row between left and right inclusive
func (b *RenderBuffer) TextCentered(left, right, y int, s string, fg RGB, attrs tcell.AttrMask) {
	n := utf8.RuneCountInString(s)
	x := left + (right-left+1-n)/2
	b.Text(max(left, x), y, s, fg, attrs)
}

// FillBg paints the background of a rectangle
func (b *RenderBuffer) FillBg(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetBgOnly(col, row, bg)
		}
	}
}

// ===== OUTPUT =====

// FlushTo writes the buffer to a tcell screen and shows it
func (b *RenderBuffer) FlushTo(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			c := b.cells[idx]
			if !b.touched[idx] {
				c.Bg = RgbBackground
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style())
		}
	}
	screen.Show()
}
