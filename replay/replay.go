// Package replay records and re-runs battles from their per-tick inputs
// The simulation is deterministic for a given seed, config and input stream
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/pong-quest/config"
	"github.com/lixenwraith/pong-quest/engine"
)

// Version is the log format written by Encode
const Version = 1

var (
	// ErrVersion is returned when decoding a log written by an incompatible format
	ErrVersion = errors.New("unsupported replay version")
	// ErrMismatch is returned by Verify when the re-run diverges from the recording
	ErrMismatch = errors.New("replay diverged")
)

// CommandKind is a core command issued between ticks
type CommandKind uint8

const (
	CmdStart CommandKind = iota + 1
	CmdReset
	CmdLaunch
)

func (k CommandKind) String() string {
	switch k {
	case CmdStart:
		return "start"
	case CmdReset:
		return "reset"
	case CmdLaunch:
		return "launch"
	default:
		return "unknown"
	}
}

// Command runs before tick At+1, i.e. after At ticks have completed
type Command struct {
	At   uint64      `msgpack:"at"`
	Kind CommandKind `msgpack:"k"`
}

// Log is everything needed to reproduce a battle
type Log struct {
	Version  int             `msgpack:"v"`
	Seed     uint64          `msgpack:"seed"`
	Config   config.Config   `msgpack:"cfg"`
	Graph    string          `msgpack:"graph,omitempty"` // custom battle graph, empty for the built-in one
	Commands []Command       `msgpack:"cmd"`
	Inputs   []engine.Input  `msgpack:"in"`
	Final    engine.Snapshot `msgpack:"final"`
}

// Apply runs command kind against e
func Apply(e *engine.Engine, kind CommandKind) bool {
	switch kind {
	case CmdStart:
		return e.StartBattle()
	case CmdReset:
		e.ResetBattle()
		return true
	case CmdLaunch:
		return e.Launch()
	default:
		return false
	}
}

// Recorder drives an engine and logs what it was fed
type Recorder struct {
	e   *engine.Engine
	log Log
}

// NewRecorder starts a log for e, which should not have ticked yet
func NewRecorder(e *engine.Engine) *Recorder {
	return &Recorder{
		e: e,
		log: Log{
			Version: Version,
			Seed:    e.Seed(),
			Config:  e.Config(),
			Graph:   e.BattleGraph(),
		},
	}
}

// Command applies kind to the engine and records it
func (r *Recorder) Command(kind CommandKind) bool {
	r.log.Commands = append(r.log.Commands, Command{At: r.e.CurrentTick(), Kind: kind})
	return Apply(r.e, kind)
}

// Tick advances the engine one step and records the input
func (r *Recorder) Tick(in engine.Input) {
	r.log.Inputs = append(r.log.Inputs, in)
	r.e.Tick(in)
}

// Len returns recorded ticks
func (r *Recorder) Len() int { return len(r.log.Inputs) }

// Finish stamps the final snapshot and returns the log
func (r *Recorder) Finish() *Log {
	r.log.Final = r.e.Snapshot()
	out := r.log
	return &out
}

// Play re-runs log on a fresh engine and returns it
func Play(log *Log, opts ...engine.Option) (*engine.Engine, error) {
	opts = append(opts, engine.WithSeed(log.Seed), engine.WithBattleGraphSource(log.Graph))
	e, err := engine.New(log.Config, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("replay engine: %w", err)
	}

	cmds := log.Commands
	for _, in := range log.Inputs {
		for len(cmds) > 0 && cmds[0].At <= e.CurrentTick() {
			Apply(e, cmds[0].Kind)
			cmds = cmds[1:]
		}
		e.Tick(in)
	}
	for _, c := range cmds {
		Apply(e, c.Kind)
	}
	return e, nil
}

// Verify re-runs log and compares the final snapshot with the recorded one
func Verify(log *Log) error {
	e, err := Play(log)
	if err != nil {
		return err
	}
	defer e.Close()

	if got := e.Snapshot(); got != log.Final {
		return fmt.Errorf("%w at tick %d: got %+v, recorded %+v", ErrMismatch, got.Tick, got, log.Final)
	}
	return nil
}

// Encode writes log as msgpack
func Encode(w io.Writer, log *Log) error {
	if err := msgpack.NewEncoder(w).Encode(log); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

// Decode reads a msgpack log and checks its version
func Decode(r io.Reader) (*Log, error) {
	var log Log
	if err := msgpack.NewDecoder(r).Decode(&log); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if log.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, log.Version)
	}
	return &log, nil
}

// Save writes log to path, creating parent directories
func Save(path string, log *Log) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create replay dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	if err := Encode(f, log); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a log from path
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
