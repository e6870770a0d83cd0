package render

import (
	"time"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now    time.Time
	Paused bool
	Muted  bool

	Mode   core.Mode
	Snap   engine.Snapshot
	Config *config.Config

	// Screen and arena layout
	ScreenWidth  int
	ScreenHeight int
	View         Viewport

	// Camera shake offset in cells, applied to arena content
	ShakeX, ShakeY int

	// Banner is a transient status line message, empty when none
	Banner      string
	BannerColor RGB

	// Terminal screen requested by the battle, shown until the next Active state
	ShowTerminal  bool
	TerminalState core.BattleState

	// Debug panel content
	PlayerStats string
	EnemyStats  string
	Metrics     []string
}

// NewContext captures one frame of engine state
func NewContext(e *engine.Engine, screenW, screenH int, now time.Time) RenderContext {
	cfg := e.Config()
	ctx := RenderContext{
		Now:          now,
		Mode:         e.Mode(),
		Snap:         e.Snapshot(),
		Config:       &cfg,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
		View:         NewViewport(screenW, screenH, cfg.Arena),
		Metrics:      e.Registry().Lines(),
	}
	if s := e.Arena().Player.Stats; s != nil {
		ctx.PlayerStats = s.Summary()
	}
	if s := e.Arena().Enemy.Stats; s != nil {
		ctx.EnemyStats = s.Summary()
	}
	return ctx
}

// Combatant returns the snapshot of one side
func (ctx *RenderContext) Combatant(side core.Side) engine.CombatantSnapshot {
	if side == core.SideEnemy {
		return ctx.Snap.Enemy
	}
	return ctx.Snap.Player
}
