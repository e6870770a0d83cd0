package render

import (
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/vmath"
)

// Palette (Tokyo Night base)
var (
	RgbBackground  = RGB{26, 27, 38}
	RgbArenaBorder = RGB{86, 95, 137}
	RgbCenterLine  = RGB{59, 66, 97}
	RgbGoalZone    = RGB{36, 40, 59}

	RgbPlayer = RGB{122, 162, 247}
	RgbEnemy  = RGB{247, 118, 142}
	RgbOrb    = RGB{230, 230, 230}
	RgbOrbHot = RGB{255, 158, 100}

	RgbText    = RGB{192, 202, 245}
	RgbTextDim = RGB{86, 95, 137}
	RgbWarning = RGB{224, 175, 104}

	RgbHPEmpty = RGB{52, 59, 88}
	RgbHPLow   = RGB{247, 118, 142}
	RgbHPMid   = RGB{224, 175, 104}
	RgbHPHigh  = RGB{158, 206, 106}

	RgbVictory  = RGB{158, 206, 106}
	RgbDefeat   = RGB{247, 118, 142}
	RgbPanelBg  = RGB{36, 40, 59}
	RgbOverlay  = RGB{16, 16, 24}
	RgbDebugKey = RGB{125, 207, 255}
)

// SideColor returns the paddle colour of a side, plain text for SideNone
func SideColor(side core.Side) RGB {
	switch side {
	case core.SidePlayer:
		return RgbPlayer
	case core.SideEnemy:
		return RgbEnemy
	default:
		return RgbText
	}
}

// GetHealthColor maps an HP ratio to a red, amber, green gradient
func GetHealthColor(ratio float64) RGB {
	ratio = vmath.Clamp(ratio, 0, 1)
	if ratio < 0.5 {
		return Lerp(RgbHPLow, RgbHPMid, ratio*2)
	}
	return Lerp(RgbHPMid, RgbHPHigh, (ratio-0.5)*2)
}

// GetSpeedColor heats the orb from white at base speed to orange at max speed
func GetSpeedColor(speed, base, maxSpeed float64) RGB {
	if maxSpeed <= base {
		return RgbOrb
	}
	return Lerp(RgbOrb, RgbOrbHot, (speed-base)/(maxSpeed-base))
}
