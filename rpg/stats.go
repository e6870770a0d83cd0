package rpg

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/event"
	"github.com/lixenwraith/pong-quest/parameter"
)

// Stat names as reported in StatChanged payloads
const (
	StatPower   = "Power"
	StatAgility = "Agility"
	StatGrit    = "Grit"
	StatFocus   = "Focus"
)

// Base holds spawn-time base values for the four combat stats
type Base struct {
	Power   float64 `toml:"power" yaml:"power"`
	Agility float64 `toml:"agility" yaml:"agility"`
	Grit    float64 `toml:"grit" yaml:"grit"`
	Focus   float64 `toml:"focus" yaml:"focus"`
}

// DefaultBase returns the standard spawn values
func DefaultBase() Base {
	return Base{
		Power:   parameter.StatBasePower,
		Agility: parameter.StatBaseAgility,
		Grit:    parameter.StatBaseGrit,
		Focus:   parameter.StatBaseFocus,
	}
}

// Stats bundles a combatant's four stats
// Power scales orb speed and goal damage, Agility paddle speed, Grit damage reduction
// Focus is carried for display and future effects
type Stats struct {
	Power   *Stat
	Agility *Stat
	Grit    *Stat
	Focus   *Stat

	side    core.Side
	emitter event.Emitter
}

// NewStats creates the stat set for side, mutations are reported through emitter (may be nil)
func NewStats(base Base, side core.Side, emitter event.Emitter) *Stats {
	s := &Stats{
		Power:   NewStat(StatPower, base.Power),
		Agility: NewStat(StatAgility, base.Agility),
		Grit:    NewStat(StatGrit, base.Grit),
		Focus:   NewStat(StatFocus, base.Focus),
		side:    side,
		emitter: emitter,
	}
	for _, st := range s.All() {
		st.OnChange = s.notify
	}
	return s
}

// Side returns the owning combatant
func (s *Stats) Side() core.Side { return s.side }

// All returns the stats in fixed display order
func (s *Stats) All() [4]*Stat {
	return [4]*Stat{s.Power, s.Agility, s.Grit, s.Focus}
}

func (s *Stats) notify(st *Stat) {
	event.Emit(s.emitter, event.EventStatChanged, &event.StatChangedPayload{
		Side:  s.side,
		Stat:  st.Name(),
		Value: st.Value(),
	})
}

// Lookup resolves a stat by full name or three-letter alias, case-insensitive
func (s *Stats) Lookup(name string) (*Stat, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "POWER", "PWR":
		return s.Power, true
	case "AGILITY", "AGI":
		return s.Agility, true
	case "GRIT", "GRT":
		return s.Grit, true
	case "FOCUS", "FCS":
		return s.Focus, true
	default:
		return nil, false
	}
}

// Value returns the named stat's value, unknown names log a warning and read as 0
func (s *Stats) Value(name string) float64 {
	st, ok := s.Lookup(name)
	if !ok {
		slog.Warn("unknown stat", "name", name, "side", s.side)
		return 0
	}
	return st.Value()
}

// IncreaseStat raises the named stat's base, unknown names log a warning and do nothing
func (s *Stats) IncreaseStat(name string, amount float64) {
	st, ok := s.Lookup(name)
	if !ok {
		slog.Warn("unknown stat", "name", name, "side", s.side)
		return
	}
	st.IncreaseBase(amount)
	slog.Debug("stat increased", "side", s.side, "stat", st.Name(), "amount", amount, "value", st.Value())
}

// Summary formats all four values for the debug panel
func (s *Stats) Summary() string {
	return fmt.Sprintf("PWR: %.0f | AGI: %.0f | GRT: %.0f | FCS: %.0f",
		s.Power.Value(), s.Agility.Value(), s.Grit.Value(), s.Focus.Value())
}

// PowerOf returns Power or 0 for a nil set
func PowerOf(s *Stats) float64 {
	if s == nil {
		return 0
	}
	return s.Power.Value()
}

// AgilityOf returns Agility or 0 for a nil set
func AgilityOf(s *Stats) float64 {
	if s == nil {
		return 0
	}
	return s.Agility.Value()
}

// GritOf returns Grit or 0 for a nil set
func GritOf(s *Stats) float64 {
	if s == nil {
		return 0
	}
	return s.Grit.Value()
}
