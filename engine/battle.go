package engine

import (
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/engine/fsm"
	"github.com/lixenwraith/pong-quest/event"
)

//go:embed battle.toml
var defaultBattleGraph string

// FSM triggers
const (
	triggerStart      = "Start"
	triggerReset      = "Reset"
	triggerDeath      = "Death"
	triggerScoreLimit = "ScoreLimit"
)

// Battle is the Idle/Active/Victory/Defeat machine
// It reacts to deaths and score limits and sequences serves through the engine's scheduler
type Battle struct {
	e   *Engine
	fsm *fsm.Machine[*Battle]

	toState map[fsm.StateID]core.BattleState
	toID    map[core.BattleState]fsm.StateID

	// Set for the duration of a Fire call, read by guards
	deathSide core.Side
	winner    core.Side
}

// newBattle compiles graph, the built-in graph when empty
func newBattle(e *Engine, graph string) (*Battle, error) {
	b := &Battle{
		e:       e,
		fsm:     fsm.NewMachine[*Battle](),
		toState: make(map[fsm.StateID]core.BattleState),
		toID:    make(map[core.BattleState]fsm.StateID),
	}

	b.fsm.RegisterGuard("PlayerDied", func(b *Battle) bool { return b.deathSide == core.SidePlayer })
	b.fsm.RegisterGuard("EnemyDied", func(b *Battle) bool { return b.deathSide == core.SideEnemy })
	b.fsm.RegisterGuard("PlayerWon", func(b *Battle) bool { return b.winner == core.SidePlayer })
	b.fsm.RegisterGuard("EnemyWon", func(b *Battle) bool { return b.winner == core.SideEnemy })
	b.fsm.RegisterAction("ArmServe", func(b *Battle, _ map[string]any) { b.armServe() })
	b.fsm.RegisterAction("Conclude", func(b *Battle, _ map[string]any) { b.conclude() })

	if graph == "" {
		graph = defaultBattleGraph
	}
	if err := b.fsm.LoadConfig([]byte(graph)); err != nil {
		return nil, fmt.Errorf("battle graph: %w", err)
	}
	for _, s := range []core.BattleState{core.StateIdle, core.StateActive, core.StateVictory, core.StateDefeat} {
		id, ok := b.fsm.GetStateID(stateName(s))
		if !ok {
			return nil, fmt.Errorf("battle graph: missing state %q", stateName(s))
		}
		b.toID[s] = id
		b.toState[id] = s
	}
	if b.toState[b.fsm.InitialStateID] != core.StateIdle {
		return nil, fmt.Errorf("battle graph: initial state must be Idle, got %q", b.fsm.StateName(b.fsm.InitialStateID))
	}

	b.fsm.OnTransition = func(b *Battle, from, to fsm.StateID) {
		f, t := b.toState[from], b.toState[to]
		slog.Info("battle state changed", "from", f, "to", t, "tick", b.e.tick)
		b.e.metrics.state.Store(t.String())
		event.Emit(b.e.bus, event.EventBattleStateChanged, &event.StateChangedPayload{From: f, To: t})
	}

	if err := b.fsm.Init(b); err != nil {
		return nil, fmt.Errorf("battle init: %w", err)
	}
	return b, nil
}

// stateName maps BattleState to its node name in the graph
func stateName(s core.BattleState) string {
	switch s {
	case core.StateIdle:
		return "Idle"
	case core.StateActive:
		return "Active"
	case core.StateVictory:
		return "Victory"
	case core.StateDefeat:
		return "Defeat"
	default:
		return ""
	}
}

// State returns the current battle state
func (b *Battle) State() core.BattleState {
	return b.toState[b.fsm.Current()]
}

// TimeInState returns simulated time since the last transition
func (b *Battle) TimeInState() time.Duration { return b.fsm.TimeInState() }

// Start enters Active from Idle or a terminal state, no-op while Active
// Health is left as is
func (b *Battle) Start() bool {
	if !b.fsm.CanFire(b, triggerStart) {
		return false
	}
	b.e.sched.CancelAll()
	b.e.resetOrb(false)
	return b.fsm.Fire(b, triggerStart)
}

// Reset revives both sides at full health, zeroes scores and re-enters Active from any state
func (b *Battle) Reset() {
	e := b.e
	e.sched.CancelAll()
	e.pendingDeaths = e.pendingDeaths[:0]
	e.winner = core.SideNone

	for _, c := range e.arena.Combatants() {
		if c.Health != nil {
			c.Health.Revive(c.Health.Max())
		}
		c.Score = 0
	}
	e.arena.Recenter()
	e.metrics.playerScore.Store(0)
	e.metrics.enemyScore.Store(0)
	event.Emit(e.bus, event.EventOrbReset, nil)

	if b.fsm.Fire(b, triggerReset) {
		return
	}
	if b.State() == core.StateActive {
		b.fsm.Reenter(b)
		return
	}
	slog.Warn("battle graph has no Reset edge", "state", b.fsm.CurrentName())
}

// onDeath reacts to a queued death, ignored outside Active
func (b *Battle) onDeath(side core.Side) {
	b.deathSide = side
	defer func() { b.deathSide = core.SideNone }()
	b.fsm.Fire(b, triggerDeath)
}

// onScoreLimit ends a classic match
func (b *Battle) onScoreLimit(side core.Side) {
	b.winner = side
	defer func() { b.winner = core.SideNone }()
	b.fsm.Fire(b, triggerScoreLimit)
}

// Update advances time in state
func (b *Battle) Update(dt time.Duration) {
	b.fsm.Update(b, dt)
}

func (b *Battle) armServe() {
	b.e.scheduleServe(b.e.cfg.ServeSide(), b.e.cfg.Timing.ServeDelay)
}

// conclude stops play and schedules the end screen
func (b *Battle) conclude() {
	e := b.e
	e.sched.CancelTag(TagServe)
	e.resetOrb(true)

	state := b.toState[b.fsm.Current()]
	due := e.tick + max(1, e.cfg.Ticks(e.cfg.Timing.TerminalScreenDelay))
	e.sched.At(due, TagTerminal, func() {
		event.Emit(e.bus, event.EventTerminalScreen, &event.StateChangedPayload{From: state, To: state})
	})
}
