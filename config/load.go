package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a TOML or YAML file over the defaults, chosen by extension
// A missing file returns the defaults. The result is not validated
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Mode preset first so a classic file inherits classic defaults
	if preset := peekMode(path, data); preset == "classic" || preset == "pong" {
		cfg = Classic()
	}

	if err := decode(path, data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml", "":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// peekMode extracts the top-level mode key without applying anything else
func peekMode(path string, data []byte) string {
	var head struct {
		Mode string `toml:"mode" yaml:"mode"`
	}
	// Syntax problems surface from the full decode
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		_ = yaml.Unmarshal(data, &head)
	default:
		_, _ = toml.Decode(string(data), &head)
	}
	return strings.ToLower(head.Mode)
}

// Save writes cfg as TOML
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
