package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the fixed simulation step (50 Hz)
	TickInterval = 20 * time.Millisecond

	// MaxCatchUpTicks caps ticks run in one frame after a stall, excess time is dropped
	MaxCatchUpTicks = 5

	// InputQueueSize is the buffered capacity between the input poller and the loop
	InputQueueSize = 100
)

// Battle sequencing delays
const (
	// ServeDelay is the wait before the first serve of a battle
	ServeDelay = 1 * time.Second

	// GoalResetDelay is the wait between a goal and the next serve
	GoalResetDelay = 2 * time.Second

	// TerminalScreenDelay is the wait between victory/defeat and the end screen
	TerminalScreenDelay = 2 * time.Second
)
