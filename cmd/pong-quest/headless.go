package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/engine"
	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/replay"
)

type headlessOptions struct {
	Ticks  int
	Record string
	Out    io.Writer
}

// runHeadless plays AI against AI until the battle is decided or the tick limit is reached
func runHeadless(ctx context.Context, cfg config.Config, o headlessOptions, opts ...engine.Option) error {
	cfg.Player.Control = paddle.SchemeTracking.String()
	cfg.Enemy.Control = paddle.SchemeTracking.String()
	cfg.Audio.Enabled = false

	e, err := engine.New(cfg, nil, opts...)
	if err != nil {
		return err
	}
	defer e.Close()

	rec := replay.NewRecorder(e)
	rec.Command(replay.CmdStart)
	for i := 0; i < o.Ticks && !e.State().Terminal(); i++ {
		if i%1000 == 0 && ctx.Err() != nil {
			break
		}
		rec.Tick(engine.Input{})
	}
	log := rec.Finish()

	s := log.Final
	fmt.Fprintf(o.Out, "%s after %d ticks  score %d:%d  hp %d/%d  seed %d\n",
		s.State, s.Tick, s.Player.Score, s.Enemy.Score, s.Player.HP, s.Enemy.HP, log.Seed)
	slog.Info("headless run finished", "state", s.State, "ticks", s.Tick, "seed", log.Seed)

	if o.Record != "" {
		if err := replay.Save(o.Record, log); err != nil {
			return err
		}
		fmt.Fprintf(o.Out, "replay written to %s\n", o.Record)
	}
	return nil
}

// verifyReplay re-runs a recorded log and checks it reaches the recorded state
func verifyReplay(path string, out io.Writer) error {
	log, err := replay.Load(path)
	if err != nil {
		return err
	}
	if err := replay.Verify(log); err != nil {
		return err
	}
	fmt.Fprintf(out, "replay ok: %d ticks, %d commands, final %s %d:%d\n",
		len(log.Inputs), len(log.Commands), log.Final.State, log.Final.Player.Score, log.Final.Enemy.Score)
	return nil
}
