package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/engine"
)

const (
	logDir      = "logs"
	logFileName = "pong-quest.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configPath = flag.String("config", "", "Config file (.toml or .yaml), built-in defaults when empty")
	modeFlag   = flag.String("mode", "", "Rule set override: battle, classic")
	seedFlag   = flag.Uint64("seed", 0, "Launch RNG seed, 0 keeps the config value")
	debugFlag  = flag.Bool("debug", false, "Log to logs/pong-quest.log and open the debug panel")
	headless   = flag.Bool("headless", false, "Play AI against AI without a terminal and print the result")
	ticksFlag  = flag.Int("ticks", 30000, "Tick limit for -headless")
	replayPath = flag.String("replay", "", "Verify a recorded replay file and exit")
	recordPath = flag.String("record", "", "Record the session to a replay file")
	keymapPath = flag.String("keymap", "", "TOML key binding overrides")
	graphPath  = flag.String("battle-graph", "", "TOML battle state graph, built-in when empty")
	saveConfig = flag.String("save-config", "", "Write the effective config as TOML and exit")
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "error", err)
		fmt.Fprintf(os.Stderr, "pong-quest: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context) error {
	if *replayPath != "" {
		return verifyReplay(*replayPath, os.Stdout)
	}

	cfg, err := loadConfig(*configPath, *modeFlag, *seedFlag)
	if err != nil {
		return err
	}

	if *saveConfig != "" {
		if err := config.Save(*saveConfig, cfg); err != nil {
			return err
		}
		fmt.Printf("config written to %s\n", *saveConfig)
		return nil
	}

	var opts []engine.Option
	if *graphPath != "" {
		opts = append(opts, engine.WithBattleGraph(*graphPath))
	}

	if *headless {
		return runHeadless(ctx, cfg, headlessOptions{
			Ticks:  *ticksFlag,
			Record: *recordPath,
			Out:    os.Stdout,
		}, opts...)
	}
	return runInteractive(ctx, cfg, interactiveOptions{
		KeymapPath: *keymapPath,
		Record:     *recordPath,
		Debug:      *debugFlag,
	}, opts...)
}

// loadConfig layers file, environment and flags, then validates
func loadConfig(path, mode string, seed uint64) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	if mode != "" {
		if err := cfg.SetMode(mode); err != nil {
			return cfg, fmt.Errorf("-mode: %w", err)
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging routes log and slog to logs/pong-quest.log when debug is set, discards otherwise
// A log file over maxLogSize is rotated to a timestamped name first
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("pong-quest-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	// slog first: SetDefault redirects the log package, SetOutput takes it back
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
