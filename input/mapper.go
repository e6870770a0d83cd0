package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-quest/engine"
	"github.com/lixenwraith/pong-quest/paddle"
)

// RowMapper converts a screen row to world Y
type RowMapper interface {
	WorldY(row int) float64
}

// Mapper parses tcell events into intents and keeps the player's control state
// Owned by the loop goroutine
type Mapper struct {
	keys *KeyTable
	axis Axis

	pointerRow int
	pointerSet bool
}

// NewMapper creates a mapper, nil keys uses the defaults
func NewMapper(keys *KeyTable) *Mapper {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Mapper{keys: keys}
}

// Handle parses one terminal event
func (m *Mapper) Handle(ev tcell.Event, now time.Time) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := m.keys.Lookup(ev)
		if !ok {
			return Intent{}
		}
		if entry.Intent == IntentMove {
			m.axis.Press(entry.Dir, now)
		}
		return Intent{Type: entry.Intent, Dir: entry.Dir}

	case *tcell.EventMouse:
		_, y := ev.Position()
		m.pointerRow, m.pointerSet = y, true
		if ev.Buttons()&tcell.Button1 != 0 {
			return Intent{Type: IntentLaunch, Row: y}
		}
		return Intent{Type: IntentPointer, Row: y}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

// Control builds the player's control for scheme at now
// Pointer schemes hold currentY until the mouse has been seen
func (m *Mapper) Control(scheme paddle.Scheme, now time.Time, rows RowMapper, currentY float64) engine.Control {
	switch scheme {
	case paddle.SchemeAxis, paddle.SchemeTilt:
		return engine.Control{Signal: m.axis.Value(now)}
	case paddle.SchemePointer:
		if !m.pointerSet || rows == nil {
			return engine.Control{Signal: currentY}
		}
		return engine.Control{Signal: rows.WorldY(m.pointerRow)}
	default:
		return engine.Control{}
	}
}

// Release drops any held key direction, used on pause
func (m *Mapper) Release() { m.axis.Release() }
