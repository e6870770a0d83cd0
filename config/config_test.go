package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/physics"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.ModeBattle, cfg.GameMode())
	assert.Equal(t, core.SidePlayer, cfg.ServeSide())
	assert.True(t, cfg.StatScaling)
	assert.Equal(t, 100, cfg.Combat.MaxHP)
}

func TestClassic(t *testing.T) {
	cfg := Classic()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.ModeClassic, cfg.GameMode())
	assert.False(t, cfg.StatScaling)
	assert.Equal(t, physics.ClassicDeflection, cfg.Deflection)
	assert.Equal(t, 11, cfg.Combat.ScoreToWin)
	assert.Equal(t, 8.0, cfg.Orb.BaseSpeed)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 42
first_serve = "enemy"

[orb]
max_speed = 20.0

[combat]
max_hp = 50

[enemy]
control = "keyboard"

[enemy.stats]
power = 25.0

[timing]
serve_delay = "500ms"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, core.SideEnemy, cfg.ServeSide())
	assert.Equal(t, 20.0, cfg.Orb.MaxSpeed)
	assert.Equal(t, 7.0, cfg.Orb.BaseSpeed, "untouched keys keep defaults")
	assert.Equal(t, 50, cfg.Combat.MaxHP)
	assert.Equal(t, "keyboard", cfg.Enemy.Control)
	assert.Equal(t, 25.0, cfg.Enemy.Stats.Power)
	assert.Equal(t, 10.0, cfg.Enemy.Stats.Grit)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.ServeDelay)
}

func TestLoad_YAMLClassic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: classic
combat:
  score_to_win: 5
player:
  control: mouse
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, core.ModeClassic, cfg.GameMode())
	assert.False(t, cfg.StatScaling, "classic preset applied before the file")
	assert.Equal(t, 5, cfg.Combat.ScoreToWin)
	assert.Equal(t, "mouse", cfg.Player.Control)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("seed = ["), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	ext := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(ext, []byte("{}"), 0o644))
	_, err = Load(ext)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.toml")
	cfg := Default()
	cfg.Seed = 7
	cfg.Enemy.Difficulty = 0.9
	cfg.Timing.GoalResetDelay = 1500 * time.Millisecond

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"max below base", func(c *Config) { c.Orb.MaxSpeed = 1 }},
		{"zero arena", func(c *Config) { c.Arena.HalfHeight = 0 }},
		{"zero tick", func(c *Config) { c.Timing.Tick = 0 }},
		{"bad mode", func(c *Config) { c.Mode = "chess" }},
		{"bad control", func(c *Config) { c.Player.Control = "mind" }},
		{"bad serve", func(c *Config) { c.FirstServe = "both" }},
		{"inverted paddle range", func(c *Config) { c.Paddle.Geometry.MinY = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_Clamps(t *testing.T) {
	cfg := Default()
	cfg.Deflection.Strength = 3
	cfg.Enemy.Difficulty = -1
	cfg.Audio.MasterVolume = 2
	cfg.Combat.MaxHP = 0
	cfg.Orb.LaunchAngleMinDeg, cfg.Orb.LaunchAngleMaxDeg = 30, -30

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1.0, cfg.Deflection.Strength)
	assert.Equal(t, 0.0, cfg.Enemy.Difficulty)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume)
	assert.Equal(t, 1, cfg.Combat.MaxHP)
	assert.Equal(t, -30.0, cfg.Orb.LaunchAngleMinDeg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PONG_QUEST_SEED", "99")
	t.Setenv("PONG_QUEST_MAX_HP", "40")
	t.Setenv("PONG_QUEST_MASTER_VOLUME", "25")
	t.Setenv("PONG_QUEST_AUDIO_ENABLED", "false")
	t.Setenv("PONG_QUEST_ENEMY_DIFFICULTY", "not-a-number")
	t.Setenv("PONG_QUEST_MODE", "classic")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 40, cfg.Combat.MaxHP)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, Default().Enemy.Difficulty, cfg.Enemy.Difficulty)
	assert.Equal(t, core.ModeClassic, cfg.GameMode())
	assert.False(t, cfg.StatScaling)
}

func TestSetMode(t *testing.T) {
	cfg := Classic()
	require.NoError(t, cfg.SetMode("Battle"))
	assert.Equal(t, Default(), cfg, "battle tunables restored")

	require.NoError(t, cfg.SetMode("pong"))
	assert.Equal(t, core.ModeClassic, cfg.GameMode())
	assert.Equal(t, physics.ClassicDeflection, cfg.Deflection)
	assert.False(t, cfg.StatScaling)

	// switching to the mode already in effect keeps file overrides
	cfg.StatScaling = true
	require.NoError(t, cfg.SetMode("classic"))
	assert.True(t, cfg.StatScaling)

	before := cfg
	assert.ErrorIs(t, cfg.SetMode("arcade"), ErrInvalid)
	assert.Equal(t, before, cfg)
}

func TestApplyEnv_UnknownModeFailsValidate(t *testing.T) {
	t.Setenv("PONG_QUEST_MODE", "arcade")
	cfg := Default()
	cfg.ApplyEnv()
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestTicks(t *testing.T) {
	cfg := Default()
	assert.Equal(t, uint64(50), cfg.Ticks(time.Second))
	assert.Equal(t, uint64(1), cfg.Ticks(time.Millisecond))
	assert.Equal(t, uint64(0), cfg.Ticks(0))
	assert.InDelta(t, 0.02, cfg.TickSeconds(), 1e-12)
}
