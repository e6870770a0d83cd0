package engine

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/event"
	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/physics"
	"github.com/lixenwraith/pong-quest/rpg"
	"github.com/lixenwraith/pong-quest/status"
	"github.com/lixenwraith/pong-quest/vmath"
)

// Control is one side's input for a tick, interpreted by that side's policy
type Control struct {
	Signal float64 `msgpack:"s"`
}

// Input carries both sides' controls for one tick
type Input struct {
	Player Control `msgpack:"p"`
	Enemy  Control `msgpack:"e"`
}

// Option configures an Engine
type Option func(*options)

type options struct {
	registry   *status.Registry
	graphPath  string
	graph      string
	policies   map[core.Side]paddle.Policy
	seedForced bool
	seed       uint64
}

// WithRegistry publishes metrics into r instead of a private registry
func WithRegistry(r *status.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithBattleGraph loads the battle FSM from a TOML file instead of the built-in graph
func WithBattleGraph(path string) Option {
	return func(o *options) { o.graphPath = path }
}

// WithBattleGraphSource compiles the battle FSM from TOML text, used to replay a recorded graph
// WithBattleGraph takes precedence when both are given
func WithBattleGraphSource(graph string) Option {
	return func(o *options) { o.graph = graph }
}

// WithPolicy overrides the configured control scheme for side
func WithPolicy(side core.Side, p paddle.Policy) Option {
	return func(o *options) { o.policies[side] = p }
}

// WithSeed fixes the launch RNG seed, overriding config
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed, o.seedForced = seed, true }
}

// battleGraph returns the custom graph text, empty for the built-in one
func (o *options) battleGraph() (string, error) {
	if o.graphPath == "" {
		return o.graph, nil
	}
	data, err := os.ReadFile(o.graphPath)
	if err != nil {
		return "", fmt.Errorf("battle graph: %w", err)
	}
	return string(data), nil
}

// Engine owns the simulation and advances it one fixed step per Tick
// Not safe for concurrent use; collaborators observe it through the bus and Snapshot
type Engine struct {
	cfg        config.Config
	mode       core.Mode
	bus        *event.Bus
	arena      *Arena
	battle     *Battle
	sched      *Scheduler
	rng        *vmath.FastRand
	seed       uint64
	deflection physics.DeflectionProfile
	dt         float64
	tick       uint64
	graph      string

	nextServe     core.Side
	pendingDeaths []core.Side
	winner        core.Side
	deathSub      event.Subscription

	registry *status.Registry
	metrics  engineMetrics
}

// New builds an engine from a validated copy of cfg
// A nil bus gets a private one
func New(cfg config.Config, bus *event.Bus, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{policies: make(map[core.Side]paddle.Policy)}
	for _, opt := range opts {
		opt(&o)
	}
	if bus == nil {
		bus = event.NewBus()
	}
	if o.registry == nil {
		o.registry = status.NewRegistry()
	}

	seed := cfg.Seed
	if o.seedForced {
		seed = o.seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := &Engine{
		cfg:        cfg,
		mode:       cfg.GameMode(),
		bus:        bus,
		sched:      NewScheduler(),
		rng:        vmath.NewFastRand(seed),
		seed:       seed,
		deflection: cfg.Deflection,
		dt:         cfg.TickSeconds(),
		nextServe:  cfg.ServeSide(),
		registry:   o.registry,
	}
	e.metrics = newEngineMetrics(o.registry)

	e.arena = &Arena{
		Bounds: cfg.Arena,
		Orb:    physics.NewOrb(cfg.Orb),
	}
	var err error
	if e.arena.Player, err = e.newCombatant(core.SidePlayer, cfg.Player, o.policies); err != nil {
		return nil, err
	}
	if e.arena.Enemy, err = e.newCombatant(core.SideEnemy, cfg.Enemy, o.policies); err != nil {
		return nil, err
	}

	if e.graph, err = o.battleGraph(); err != nil {
		return nil, err
	}

	e.deathSub = bus.SubscribeFunc(func(ev event.GameEvent) {
		if p, ok := ev.Payload.(*event.SidePayload); ok {
			e.pendingDeaths = append(e.pendingDeaths, p.Side)
		}
	}, event.EventDeath)

	if e.battle, err = newBattle(e, e.graph); err != nil {
		bus.Unsubscribe(e.deathSub)
		return nil, err
	}
	e.metrics.state.Store(e.battle.State().String())

	slog.Info("engine created", "mode", e.mode, "seed", seed, "stat_scaling", e.statScaling())
	return e, nil
}

func (e *Engine) newCombatant(side core.Side, cc config.CombatantConfig, overrides map[core.Side]paddle.Policy) (*Combatant, error) {
	stats := rpg.NewStats(cc.Stats, side, e.bus)
	hc := rpg.HealthConfig{MaxHP: e.cfg.Combat.MaxHP}
	if e.statScaling() {
		hc.GritReduction = e.cfg.Combat.GritReduction
	}

	policy, ok := overrides[side]
	if !ok {
		scheme, err := paddle.ParseScheme(cc.Control)
		if err != nil {
			return nil, fmt.Errorf("%s control: %w", side, err)
		}
		policy = paddle.NewPolicy(scheme, paddle.PolicyOptions{
			TiltSensitivity: e.cfg.Paddle.TiltSensitivity,
			Orb:             e.arena.Orb,
			Side:            side,
			Prediction:      cc.Prediction,
			Difficulty:      cc.Difficulty,
			DeadZone:        cc.DeadZone,
		})
	}

	return &Combatant{
		Side:   side,
		Paddle: paddle.New(side, e.cfg.Paddle.Geometry),
		Stats:  stats,
		Health: rpg.NewHealth(hc, side, stats, e.bus),
		Policy: policy,
		Speed:  cc.Speed,
	}, nil
}

// Close detaches the engine from the bus
func (e *Engine) Close() {
	e.bus.Unsubscribe(e.deathSub)
}

// statScaling reports whether Power/Agility/Grit affect physics and damage
func (e *Engine) statScaling() bool {
	return e.cfg.StatScaling && e.mode == core.ModeBattle
}

// Tick advances one fixed step: due timers, paddles, orb, state reaction
func (e *Engine) Tick(in Input) {
	start := time.Now()
	e.tick++
	e.bus.SetTick(e.tick)

	e.sched.RunDue(e.tick)

	e.stepPaddle(e.arena.Player, in.Player.Signal)
	e.stepPaddle(e.arena.Enemy, in.Enemy.Signal)

	e.stepOrb()

	e.react()
	e.battle.Update(e.cfg.Timing.Tick)

	e.metrics.ticks.Store(int64(e.tick))
	e.metrics.tickNanos.Store(time.Since(start).Nanoseconds())
	e.metrics.orbSpeed.Set(e.arena.Orb.Speed)
}

func (e *Engine) stepPaddle(c *Combatant, signal float64) {
	agility := 0.0
	if e.statScaling() {
		agility = rpg.AgilityOf(c.Stats)
	}
	speed := paddle.EffectiveSpeed(c.Speed, agility, e.cfg.Paddle.AgilityMultiplier)
	c.Paddle.Step(c.Policy, signal, speed, e.dt)
}

func (e *Engine) stepOrb() {
	o := e.arena.Orb
	if !o.Launched {
		return
	}
	prev := o.Pos
	if o.Step(e.dt, e.arena.Bounds) {
		e.metrics.wallBounces.Add(1)
		event.Emit(e.bus, event.EventWallBounce, &event.OrbPayload{VelX: o.Vel.X, VelY: o.Vel.Y})
	}

	for _, c := range e.arena.Combatants() {
		power := 0.0
		if e.statScaling() {
			power = rpg.PowerOf(c.Stats)
		}
		hit, ok := physics.CollidePaddle(o, prev, c.Paddle, e.deflection, power)
		if !ok {
			continue
		}
		e.metrics.paddleHits.Add(1)
		e.metrics.peakSpeed.StoreMax(hit.Speed)
		event.Emit(e.bus, event.EventPaddleHit, &event.PaddleHitPayload{
			Side:      c.Side,
			RelativeY: hit.RelativeY,
			AngleDeg:  hit.AngleDeg,
			Speed:     hit.Speed,
		})
		break
	}

	goal := o.CheckGoal(e.arena.Bounds)
	if goal == physics.GoalNone {
		return
	}
	if e.battle.State() != core.StateActive {
		// Display-only states never score
		e.resetOrb(true)
		return
	}
	e.resolveGoal(goal)
}

// resolveGoal scores, applies attributed damage and schedules the next serve
func (e *Engine) resolveGoal(goal physics.Goal) {
	attacker, defender := goal.Attacker(), goal.Defender()
	atk := e.arena.Combatant(attacker)
	def := e.arena.Combatant(defender)
	atk.Score++

	damage := 0
	if e.mode == core.ModeBattle && e.arena.Orb.LastToucher == attacker {
		switch {
		case def.Health == nil:
			slog.Debug("goal damage skipped, defender has no health", "side", defender)
		default:
			power := 0.0
			if e.statScaling() {
				power = rpg.PowerOf(atk.Stats)
			}
			raw := physics.GoalDamage(e.cfg.Combat.BaseDamage, power, e.cfg.Combat.PowerDamageMultiplier)
			damage = def.Health.TakeDamage(raw)
			e.metrics.damage.Add(int64(damage))
		}
	}

	e.metrics.goals.Add(1)
	e.metrics.playerScore.Store(int64(e.arena.Player.Score))
	e.metrics.enemyScore.Store(int64(e.arena.Enemy.Score))
	slog.Debug("goal", "attacker", attacker, "toucher", e.arena.Orb.LastToucher, "damage", damage,
		"player", e.arena.Player.Score, "enemy", e.arena.Enemy.Score)
	event.Emit(e.bus, event.EventScore, &event.ScorePayload{
		Side:        attacker,
		PlayerScore: e.arena.Player.Score,
		EnemyScore:  e.arena.Enemy.Score,
		Damage:      damage,
	})

	e.resetOrb(true)

	if e.mode == core.ModeClassic && atk.Score >= e.cfg.Combat.ScoreToWin {
		e.winner = attacker
		return
	}
	e.scheduleServe(defender, e.cfg.Timing.GoalResetDelay)
}

// react consumes deaths and score limits queued during this tick
func (e *Engine) react() {
	if len(e.pendingDeaths) > 0 {
		deaths := e.pendingDeaths
		e.pendingDeaths = nil
		for _, side := range deaths {
			e.battle.onDeath(side)
		}
	}
	if e.winner != core.SideNone {
		w := e.winner
		e.winner = core.SideNone
		e.battle.onScoreLimit(w)
	}
}

// resetOrb recentres and stops the orb at base speed
func (e *Engine) resetOrb(notify bool) {
	o := e.arena.Orb
	o.ResetToCenter()
	o.ResetSpeed()
	if notify {
		event.Emit(e.bus, event.EventOrbReset, nil)
	}
}

// scheduleServe replaces any pending serve with one toward side after delay
func (e *Engine) scheduleServe(toward core.Side, delay time.Duration) {
	e.sched.CancelTag(TagServe)
	e.nextServe = toward
	due := e.tick + max(1, e.cfg.Ticks(delay))
	e.sched.At(due, TagServe, func() { e.serve(toward) })
}

func (e *Engine) serve(toward core.Side) {
	if e.battle.State() != core.StateActive || e.arena.Orb.Launched {
		return
	}
	v := e.arena.Orb.Launch(toward, e.rng)
	event.Emit(e.bus, event.EventOrbLaunched, &event.OrbPayload{VelX: v.X, VelY: v.Y})
}

// Launch serves immediately while Active and the orb is at rest
func (e *Engine) Launch() bool {
	if e.battle.State() != core.StateActive || e.arena.Orb.Launched {
		return false
	}
	e.sched.CancelTag(TagServe)
	e.serve(e.nextServe)
	return true
}

// StartBattle enters Active, see Battle.Start
func (e *Engine) StartBattle() bool { return e.battle.Start() }

// ResetBattle restores a fresh Active battle from any state
func (e *Engine) ResetBattle() { e.battle.Reset() }

// State returns the battle state
func (e *Engine) State() core.BattleState { return e.battle.State() }

// Arena exposes the live simulation state, callers must not mutate it outside commands
func (e *Engine) Arena() *Arena { return e.arena }

// Bus returns the feedback bus
func (e *Engine) Bus() *event.Bus { return e.bus }

// Registry returns the metrics registry
func (e *Engine) Registry() *status.Registry { return e.registry }

// CurrentTick returns the number of completed ticks
func (e *Engine) CurrentTick() uint64 { return e.tick }

// Seed returns the launch RNG seed actually used
func (e *Engine) Seed() uint64 { return e.seed }

// Mode returns the active rule set
func (e *Engine) Mode() core.Mode { return e.mode }

// Config returns the validated configuration
func (e *Engine) Config() config.Config { return e.cfg }

// BattleGraph returns the custom battle graph text, empty when the built-in graph runs
func (e *Engine) BattleGraph() string { return e.graph }

// PendingTimers reports whether a deferred callback with tag is scheduled
func (e *Engine) PendingTimers(tag string) bool { return e.sched.Pending(tag) }
