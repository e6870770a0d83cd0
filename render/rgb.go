package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-quest/vmath"
)

// RGB is a 24-bit colour, converted to tcell at flush
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Color converts to a tcell true colour, tcell downsamples on limited terminals
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clamp(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Blend mixes src over c with alpha in [0, 1]
func Blend(c, src RGB, alpha float64) RGB {
	alpha = vmath.Clamp(alpha, 0, 1)
	return RGB{
		R: clamp(float64(c.R) + (float64(src.R)-float64(c.R))*alpha),
		G: clamp(float64(c.G) + (float64(src.G)-float64(c.G))*alpha),
		B: clamp(float64(c.B) + (float64(src.B)-float64(c.B))*alpha),
	}
}

// Lerp interpolates a toward b, t clamped to [0, 1]
func Lerp(a, b RGB, t float64) RGB { return Blend(a, b, t) }

// Scale multiplies every channel by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
