package parameter

import "time"

// Screen layout
const (
	// HUDTopRows holds the HP bars and the score line above the arena
	HUDTopRows = 2

	// HUDBottomRows holds the key hints and status messages
	HUDBottomRows = 1

	// MinScreenWidth and MinScreenHeight below which a resize notice replaces the frame
	MinScreenWidth  = 40
	MinScreenHeight = 12

	// HPBarMaxWidth caps each side's HP bar in cells
	HPBarMaxWidth = 30

	// DebugPanelWidth is the F1 panel width in cells
	DebugPanelWidth = 40
)

// Feedback timing
const (
	// GoalBannerDuration is how long the goal message stays in the status line
	GoalBannerDuration = 1500 * time.Millisecond

	// StatusMessageTimeout is how long command status messages are displayed
	StatusMessageTimeout = 2 * time.Second
)

// Glyphs
const (
	OrbChar        = '●'
	PaddleChar     = '█'
	CenterLineChar = '┊'
	HPBarFullChar  = '█'
	HPBarEmptyChar = '░'
)
