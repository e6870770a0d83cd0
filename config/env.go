package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "PONG_QUEST_"

// ApplyEnv overlays PONG_QUEST_* environment variables
// Unparsable values are logged and ignored
func (c *Config) ApplyEnv() {
	if v, ok := lookup("MODE"); ok {
		if err := c.SetMode(v); err != nil {
			// left for Validate to reject
			c.Mode = strings.ToLower(v)
		}
	}
	envBool("STAT_SCALING", &c.StatScaling)
	envUint("SEED", &c.Seed)
	if v, ok := lookup("FIRST_SERVE"); ok {
		c.FirstServe = strings.ToLower(v)
	}
	if v, ok := lookup("PLAYER_CONTROL"); ok {
		c.Player.Control = v
	}
	if v, ok := lookup("ENEMY_CONTROL"); ok {
		c.Enemy.Control = v
	}
	envFloat("ENEMY_DIFFICULTY", &c.Enemy.Difficulty)
	envInt("MAX_HP", &c.Combat.MaxHP)
	envInt("SCORE_TO_WIN", &c.Combat.ScoreToWin)
	envBool("AUDIO_ENABLED", &c.Audio.Enabled)

	// Master volume as 0-100
	if v, ok := lookup("MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = float64(n) / 100.0
		} else {
			slog.Warn("ignoring env override", "key", EnvPrefix+"MASTER_VOLUME", "value", v, "error", err)
		}
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func envBool(key string, dst *bool) {
	if v, ok := lookup(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("ignoring env override", "key", EnvPrefix+key, "value", v, "error", err)
			return
		}
		*dst = b
	}
}

func envInt(key string, dst *int) {
	if v, ok := lookup(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("ignoring env override", "key", EnvPrefix+key, "value", v, "error", err)
			return
		}
		*dst = n
	}
}

func envUint(key string, dst *uint64) {
	if v, ok := lookup(key); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Warn("ignoring env override", "key", EnvPrefix+key, "value", v, "error", err)
			return
		}
		*dst = n
	}
}

func envFloat(key string, dst *float64) {
	if v, ok := lookup(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			slog.Warn("ignoring env override", "key", EnvPrefix+key, "value", v, "error", err)
			return
		}
		*dst = f
	}
}
