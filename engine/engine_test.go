package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/event"
	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/vmath"
)

// newTestEngine builds a seeded engine with idle paddles and a recorder on every event
func newTestEngine(t *testing.T, mutate func(*config.Config), opts ...Option) (*Engine, *event.Recorder) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	if mutate != nil {
		mutate(&cfg)
	}
	bus := event.NewBus()
	rec := event.NewRecorder(0)
	rec.Attach(bus)

	opts = append([]Option{
		WithPolicy(core.SidePlayer, paddle.DirectAxis{}),
		WithPolicy(core.SideEnemy, paddle.DirectAxis{}),
	}, opts...)
	e, err := New(cfg, bus, opts...)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e, rec
}

// placeOrb puts a launched orb at pos moving along vel
func placeOrb(e *Engine, pos, vel vmath.Vec2, toucher core.Side) {
	o := e.Arena().Orb
	o.Pos = pos
	o.Vel = vel
	o.Speed = vel.Magnitude()
	o.Launched = true
	o.LastToucher = toucher
}

func ticks(e *Engine, n int) {
	for range n {
		e.Tick(Input{})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Orb.MaxSpeed = 1
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNew_BadBattleGraph(t *testing.T) {
	_, err := New(config.Default(), nil, WithBattleGraph(t.TempDir()+"/missing.toml"))
	assert.Error(t, err)
}

func TestGoal_AttributedDamageOnlyToDefender(t *testing.T) {
	e, rec := newTestEngine(t, nil)
	require.True(t, e.StartBattle())
	rec.Reset()

	placeOrb(e, vmath.V(8.45, 3), vmath.V(7, 0), core.SidePlayer)
	e.Tick(Input{})

	a := e.Arena()
	// base 10 + round(10*0.5) = 15, minus round(10*0.25) = 3
	assert.Equal(t, 88, a.Enemy.Health.Current())
	assert.Equal(t, 100, a.Player.Health.Current())
	assert.Equal(t, 1, a.Player.Score)
	assert.Equal(t, 0, a.Enemy.Score)

	scores := rec.OfType(event.EventScore)
	require.Len(t, scores, 1)
	p := scores[0].Payload.(*event.ScorePayload)
	assert.Equal(t, core.SidePlayer, p.Side)
	assert.Equal(t, 12, p.Damage)

	assert.False(t, a.Orb.Launched, "orb reset after a goal")
	assert.Equal(t, vmath.Vec2{}, a.Orb.Pos)
	assert.Equal(t, core.SideNone, a.Orb.LastToucher)
	assert.True(t, e.PendingTimers(TagServe))
}

func TestGoal_UntouchedOrbDamagesNobody(t *testing.T) {
	e, rec := newTestEngine(t, nil)
	require.True(t, e.StartBattle())

	placeOrb(e, vmath.V(-8.45, -3), vmath.V(-7, 0), core.SideNone)
	e.Tick(Input{})

	a := e.Arena()
	assert.Equal(t, 100, a.Player.Health.Current())
	assert.Equal(t, 100, a.Enemy.Health.Current())
	assert.Equal(t, 1, a.Enemy.Score, "goal still counts")
	assert.Equal(t, 0, rec.Count(event.EventDamageTaken))
}

func TestGoal_OwnTouchDoesNotDamage(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	require.True(t, e.StartBattle())

	// Player touched last, orb ends up in the player's own goal
	placeOrb(e, vmath.V(-8.45, 3), vmath.V(-7, 0), core.SidePlayer)
	e.Tick(Input{})

	assert.Equal(t, 100, e.Arena().Player.Health.Current())
	assert.Equal(t, 100, e.Arena().Enemy.Health.Current())
}

func TestGoal_PowerScalesDamage(t *testing.T) {
	e, _ := newTestEngine(t, func(c *config.Config) { c.Combat.GritReduction = 0 })
	require.True(t, e.StartBattle())
	e.Arena().Player.Stats.IncreaseStat("PWR", 10)

	placeOrb(e, vmath.V(8.45, 3), vmath.V(7, 0), core.SidePlayer)
	e.Tick(Input{})

	// base 10, Power 20, multiplier 0.5
	assert.Equal(t, 80, e.Arena().Enemy.Health.Current())
}

func TestGoal_IgnoredOutsideActive(t *testing.T) {
	e, rec := newTestEngine(t, nil)

	placeOrb(e, vmath.V(8.45, 3), vmath.V(7, 0), core.SidePlayer)
	e.Tick(Input{})

	assert.Equal(t, 0, rec.Count(event.EventScore))
	assert.Equal(t, 100, e.Arena().Enemy.Health.Current())
	assert.False(t, e.Arena().Orb.Launched)
}

func TestGoal_NextServeTowardDefender(t *testing.T) {
	e, rec := newTestEngine(t, nil)
	require.True(t, e.StartBattle())

	placeOrb(e, vmath.V(8.45, 3), vmath.V(7, 0), core.SidePlayer)
	e.Tick(Input{})
	rec.Reset()

	// Goal reset delay is 2s = 100 ticks
	ticks(e, 99)
	assert.False(t, e.Arena().Orb.Launched)
	e.Tick(Input{})
	require.True(t, e.Arena().Orb.Launched)
	assert.Greater(t, e.Arena().Orb.Vel.X, 0.0, "served toward the enemy, who was scored against")
	assert.Equal(t, 1, rec.Count(event.EventOrbLaunched))
}

func TestPaddleHit_SetsToucherAndEmits(t *testing.T) {
	e, rec := newTestEngine(t, nil)
	require.True(t, e.StartBattle())

	// Orb just in front of the enemy face, heading right
	placeOrb(e, vmath.V(7.05, 0.5), vmath.V(7, 0), core.SidePlayer)
	e.Tick(Input{})

	o := e.Arena().Orb
	assert.Equal(t, core.SideEnemy, o.LastToucher)
	assert.Less(t, o.Vel.X, 0.0)
	hits := rec.OfType(event.EventPaddleHit)
	require.Len(t, hits, 1)
	assert.Equal(t, core.SideEnemy, hits[0].Payload.(*event.PaddleHitPayload).Side)
	assert.Equal(t, uint64(e.CurrentTick()), hits[0].Tick)
}

func TestPaddleMotion_AgilityScalesSpeed(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	e.Tick(Input{Player: Control{Signal: 1}, Enemy: Control{Signal: -1}})

	a := e.Arena()
	// (8 + 10*0.1) * 0.02
	assert.InDelta(t, 0.18, a.Player.Paddle.Y, 1e-9)
	// (6 + 10*0.1) * 0.02
	assert.InDelta(t, -0.14, a.Enemy.Paddle.Y, 1e-9)
	assert.InDelta(t, 9.0, a.Player.Paddle.VY, 1e-9)
}

func TestLaunchCommand(t *testing.T) {
	e, rec := newTestEngine(t, nil)
	assert.False(t, e.Launch(), "not active")

	require.True(t, e.StartBattle())
	require.True(t, e.Launch())
	assert.Less(t, e.Arena().Orb.Vel.X, 0.0, "first serve goes toward the player")
	assert.False(t, e.PendingTimers(TagServe), "manual launch cancels the scheduled serve")
	assert.False(t, e.Launch(), "already in flight")
	assert.Equal(t, 1, rec.Count(event.EventOrbLaunched))
}

func TestOrbSpeedStaysInRange(t *testing.T) {
	for _, mode := range []string{"battle", "classic"} {
		t.Run(mode, func(t *testing.T) {
			cfg := config.Default()
			if mode == "classic" {
				cfg = config.Classic()
			}
			cfg.Seed = 12345
			cfg.Player.Control = "ai"
			cfg.Enemy.Control = "ai"
			cfg.Player.Stats.Power = 40
			e, err := New(cfg, nil)
			require.NoError(t, err)
			defer e.Close()

			require.True(t, e.StartBattle())
			o := e.Arena().Orb
			launched := 0
			for range 20000 {
				e.Tick(Input{})
				if e.State().Terminal() {
					e.ResetBattle()
				}
				require.GreaterOrEqual(t, o.Speed, o.BaseSpeed)
				require.LessOrEqual(t, o.Speed, o.MaxSpeed)
				if o.Launched {
					launched++
					mag := o.Vel.Magnitude()
					require.InDelta(t, o.Speed, mag, 1e-6)
				}
			}
			assert.Positive(t, launched)
			assert.Positive(t, e.Registry().Ints.Get("orb.paddle_hits").Load())
		})
	}
}

func TestMetricsPublished(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	e.StartBattle()
	ticks(e, 3)

	r := e.Registry()
	assert.Equal(t, int64(3), r.Ints.Get("engine.ticks").Load())
	assert.Equal(t, "active", r.Strings.Get("battle.state").Load())
	assert.Equal(t, 7.0, r.Floats.Get("orb.speed").Get())
}

func TestSnapshot(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	e.StartBattle()
	placeOrb(e, vmath.V(1, 2), vmath.V(7, 0), core.SideEnemy)
	e.Arena().Enemy.Health.TakeDamage(10)

	s := e.Snapshot()
	assert.Equal(t, core.StateActive, s.State)
	assert.Equal(t, 1.0, s.Orb.X)
	assert.Equal(t, core.SideEnemy, s.Orb.LastToucher)
	assert.Equal(t, 93, s.Enemy.HP)
	assert.Equal(t, 100, s.Player.MaxHP)
	assert.Equal(t, 10.0, s.Player.Power)
}
