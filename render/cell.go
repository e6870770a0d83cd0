package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// Style converts the cell colours to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color()).Attributes(c.Attrs)
}

var emptyCell = Cell{Rune: 0, Fg: RgbText, Bg: RgbBackground}
