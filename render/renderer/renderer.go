// Package renderer holds the concrete frame renderers for the arena and HUD
package renderer

import (
	"github.com/lixenwraith/pong-quest/render"
	"github.com/lixenwraith/pong-quest/status"
)

// RegisterAll wires the standard renderer set into o and returns the debug panel for toggling
func RegisterAll(o *render.RenderOrchestrator, reg *status.Registry) *DebugRenderer {
	debug := NewDebugRenderer()
	o.Register(NewArenaRenderer(), render.PriorityArena)
	o.Register(NewPaddleRenderer(), render.PriorityEntities)
	o.Register(NewOrbRenderer(), render.PriorityEntities)
	o.Register(NewHealthBarRenderer(), render.PriorityUI)
	o.Register(NewScoreRenderer(), render.PriorityUI)
	o.Register(NewStatusBarRenderer(reg), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
	o.Register(debug, render.PriorityDebug)
	return debug
}
