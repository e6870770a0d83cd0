package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/parameter"
	"github.com/lixenwraith/pong-quest/physics"
	"github.com/lixenwraith/pong-quest/rpg"
)

// Config holds every tunable of a battle
// Zero-value sections are never valid, start from Default and overlay a file
type Config struct {
	Mode        string `toml:"mode" yaml:"mode"`                 // battle | classic
	StatScaling bool   `toml:"stat_scaling" yaml:"stat_scaling"` // Power/Agility/Grit feed physics and damage
	Seed        uint64 `toml:"seed" yaml:"seed"`                 // 0 = derive from wall clock
	FirstServe  string `toml:"first_serve" yaml:"first_serve"`   // player | enemy | random

	Arena      physics.Bounds            `toml:"arena" yaml:"arena"`
	Orb        physics.OrbConfig         `toml:"orb" yaml:"orb"`
	Deflection physics.DeflectionProfile `toml:"deflection" yaml:"deflection"`
	Paddle     PaddleConfig              `toml:"paddle" yaml:"paddle"`
	Combat     CombatConfig              `toml:"combat" yaml:"combat"`
	Player     CombatantConfig           `toml:"player" yaml:"player"`
	Enemy      CombatantConfig           `toml:"enemy" yaml:"enemy"`
	Timing     TimingConfig              `toml:"timing" yaml:"timing"`
	Audio      AudioConfig               `toml:"audio" yaml:"audio"`
}

// PaddleConfig is shared paddle geometry and motion tuning
type PaddleConfig struct {
	Geometry          paddle.Geometry `toml:"geometry" yaml:"geometry"`
	AgilityMultiplier float64         `toml:"agility_multiplier" yaml:"agility_multiplier"`
	TiltSensitivity   float64         `toml:"tilt_sensitivity" yaml:"tilt_sensitivity"`
}

// CombatConfig converts goals into damage
type CombatConfig struct {
	MaxHP                 int     `toml:"max_hp" yaml:"max_hp"`
	BaseDamage            int     `toml:"base_damage" yaml:"base_damage"`
	PowerDamageMultiplier float64 `toml:"power_damage_multiplier" yaml:"power_damage_multiplier"`
	GritReduction         float64 `toml:"grit_reduction" yaml:"grit_reduction"`
	ScoreToWin            int     `toml:"score_to_win" yaml:"score_to_win"` // Classic mode only
}

// CombatantConfig describes one side's controls and stats
type CombatantConfig struct {
	Control string   `toml:"control" yaml:"control"` // keyboard | mouse | tilt | ai
	Speed   float64  `toml:"speed" yaml:"speed"`     // Base paddle speed before Agility
	Stats   rpg.Base `toml:"stats" yaml:"stats"`

	// Tracking AI tuning, ignored for human control
	Prediction float64 `toml:"prediction" yaml:"prediction"`
	Difficulty float64 `toml:"difficulty" yaml:"difficulty"`
	DeadZone   float64 `toml:"dead_zone" yaml:"dead_zone"`
}

// TimingConfig holds the fixed step and the deferred delays
type TimingConfig struct {
	Tick                time.Duration `toml:"tick" yaml:"tick"`
	ServeDelay          time.Duration `toml:"serve_delay" yaml:"serve_delay"`
	GoalResetDelay      time.Duration `toml:"goal_reset_delay" yaml:"goal_reset_delay"`
	TerminalScreenDelay time.Duration `toml:"terminal_screen_delay" yaml:"terminal_screen_delay"`
	MaxCatchUpTicks     int           `toml:"max_catch_up_ticks" yaml:"max_catch_up_ticks"`
}

// AudioConfig controls the sound collaborator
type AudioConfig struct {
	Enabled      bool    `toml:"enabled" yaml:"enabled"`
	MasterVolume float64 `toml:"master_volume" yaml:"master_volume"` // 0..1
	SampleRate   int     `toml:"sample_rate" yaml:"sample_rate"`
}

// Default returns the battle-mode configuration
func Default() Config {
	return Config{
		Mode:        core.ModeBattle.String(),
		StatScaling: true,
		FirstServe:  core.SidePlayer.String(),
		Arena: physics.Bounds{
			HalfWidth:  parameter.ArenaHalfWidth,
			HalfHeight: parameter.ArenaHalfHeight,
			GoalLineX:  parameter.GoalLineX,
		},
		Orb:        physics.DefaultOrbConfig(),
		Deflection: physics.BattleDeflection,
		Paddle: PaddleConfig{
			Geometry: paddle.Geometry{
				X:          parameter.PaddleX,
				HalfHeight: parameter.PaddleHalfHeight,
				HalfWidth:  parameter.PaddleHalfWidth,
				MinY:       parameter.PaddleMinY,
				MaxY:       parameter.PaddleMaxY,
			},
			AgilityMultiplier: parameter.AgilitySpeedMultiplier,
			TiltSensitivity:   parameter.TiltSensitivity,
		},
		Combat: CombatConfig{
			MaxHP:                 parameter.CombatMaxHP,
			BaseDamage:            parameter.CombatBaseDamage,
			PowerDamageMultiplier: parameter.PowerDamageMultiplier,
			GritReduction:         parameter.GritDamageReduction,
			ScoreToWin:            parameter.ClassicScoreToWin,
		},
		Player: CombatantConfig{
			Control: "keyboard",
			Speed:   parameter.PaddleBaseSpeed,
			Stats:   rpg.DefaultBase(),
		},
		Enemy: CombatantConfig{
			Control:    "ai",
			Speed:      parameter.EnemyBaseSpeed,
			Stats:      rpg.DefaultBase(),
			Prediction: parameter.EnemyPrediction,
			Difficulty: parameter.EnemyDifficulty,
			DeadZone:   parameter.EnemyDeadZone,
		},
		Timing: TimingConfig{
			Tick:                parameter.TickInterval,
			ServeDelay:          parameter.ServeDelay,
			GoalResetDelay:      parameter.GoalResetDelay,
			TerminalScreenDelay: parameter.TerminalScreenDelay,
			MaxCatchUpTicks:     parameter.MaxCatchUpTicks,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
	}
}

// Classic returns the plain Pong preset: no stat scaling, points instead of damage
func Classic() Config {
	c := Default()
	c.UseClassicRules()
	return c
}

// UseClassicRules switches mode, orb and deflection tuning to the classic preset
func (c *Config) UseClassicRules() {
	c.Mode = core.ModeClassic.String()
	c.StatScaling = false
	c.Orb.BaseSpeed = parameter.ClassicInitialSpeed
	c.Orb.MaxSpeed = parameter.ClassicMaxSpeed
	c.Orb.LaunchAngleMinDeg = -parameter.ClassicLaunchAngleDeg
	c.Orb.LaunchAngleMaxDeg = parameter.ClassicLaunchAngleDeg
	c.Deflection = physics.ClassicDeflection
}

// UseBattleRules restores battle mode with the default orb and deflection tuning
func (c *Config) UseBattleRules() {
	d := Default()
	c.Mode = d.Mode
	c.StatScaling = d.StatScaling
	c.Orb.BaseSpeed = d.Orb.BaseSpeed
	c.Orb.MaxSpeed = d.Orb.MaxSpeed
	c.Orb.LaunchAngleMinDeg = d.Orb.LaunchAngleMinDeg
	c.Orb.LaunchAngleMaxDeg = d.Orb.LaunchAngleMaxDeg
	c.Deflection = d.Deflection
}

// SetMode switches to the named rule set, applying its preset when the mode changes
// Unknown names are rejected with ErrInvalid and leave c untouched
func (c *Config) SetMode(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "classic", "pong":
		if c.GameMode() != core.ModeClassic {
			c.UseClassicRules()
		}
	case "battle":
		if c.GameMode() != core.ModeBattle {
			c.UseBattleRules()
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, name)
	}
	c.Mode = name
	return nil
}

// GameMode parses Mode
func (c Config) GameMode() core.Mode { return core.ParseMode(c.Mode) }

// ServeSide parses FirstServe, "random" and unknown values map to SideNone
func (c Config) ServeSide() core.Side {
	switch c.FirstServe {
	case "player":
		return core.SidePlayer
	case "enemy":
		return core.SideEnemy
	default:
		return core.SideNone
	}
}

// TickSeconds returns the fixed step in seconds
func (c Config) TickSeconds() float64 { return c.Timing.Tick.Seconds() }

// Ticks converts a delay into whole fixed steps, rounding up, minimum 1 for positive delays
func (c Config) Ticks(d time.Duration) uint64 {
	if d <= 0 || c.Timing.Tick <= 0 {
		return 0
	}
	return uint64((d + c.Timing.Tick - 1) / c.Timing.Tick)
}
