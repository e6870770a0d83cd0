package render

import (
	"math"

	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/physics"
	"github.com/lixenwraith/pong-quest/vmath"
)

// Viewport maps world units onto the arena box of the screen
// The box includes a one-cell border; world Y grows upward, rows grow downward
type Viewport struct {
	Left, Top     int
	Width, Height int
	HalfW, HalfH  float64
}

// NewViewport lays the arena out between the HUD rows of a screen
func NewViewport(screenW, screenH int, b physics.Bounds) Viewport {
	return Viewport{
		Left:   0,
		Top:    parameter.HUDTopRows,
		Width:  max(3, screenW),
		Height: max(3, screenH-parameter.HUDTopRows-parameter.HUDBottomRows),
		HalfW:  b.HalfWidth,
		HalfH:  b.HalfHeight,
	}
}

// Inner returns the drawable area inside the border
func (v Viewport) Inner() (left, top, width, height int) {
	return v.Left + 1, v.Top + 1, v.Width - 2, v.Height - 2
}

// Right returns the border column on the right
func (v Viewport) Right() int { return v.Left + v.Width - 1 }

// Bottom returns the border row at the bottom
func (v Viewport) Bottom() int { return v.Top + v.Height - 1 }

// Col maps world X to a screen column inside the border
func (v Viewport) Col(x float64) int {
	left, _, w, _ := v.Inner()
	c := int(math.Floor((x + v.HalfW) / (2 * v.HalfW) * float64(w)))
	return left + clampInt(c, 0, w-1)
}

// Row maps world Y to a screen row inside the border
func (v Viewport) Row(y float64) int {
	_, top, _, h := v.Inner()
	r := int(math.Floor((v.HalfH - y) / (2 * v.HalfH) * float64(h)))
	return top + clampInt(r, 0, h-1)
}

// WorldY maps a screen row back to the world Y at the row centre, clamped to the arena
func (v Viewport) WorldY(row int) float64 {
	_, top, _, h := v.Inner()
	if h <= 0 {
		return 0
	}
	frac := (float64(row-top) + 0.5) / float64(h)
	return vmath.Clamp(v.HalfH-frac*2*v.HalfH, -v.HalfH, v.HalfH)
}

// Contains reports whether a screen cell lies inside the border
func (v Viewport) Contains(col, row int) bool {
	left, top, w, h := v.Inner()
	return col >= left && col < left+w && row >= top && row < top+h
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
