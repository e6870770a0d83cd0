package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong-quest/paddle"
	"github.com/lixenwraith/pong-quest/parameter"
)

type rowsFunc func(int) float64

func (f rowsFunc) WorldY(row int) float64 { return f(row) }

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func char(r rune) *tcell.EventKey     { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestMapper_DefaultBindings(t *testing.T) {
	m := NewMapper(nil)
	now := time.Unix(0, 0)

	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"escape quits", key(tcell.KeyEscape), IntentQuit},
		{"q quits", char('q'), IntentQuit},
		{"enter starts", key(tcell.KeyEnter), IntentStart},
		{"r resets", char('r'), IntentReset},
		{"R resets", char('R'), IntentReset},
		{"space launches", char(' '), IntentLaunch},
		{"p pauses", char('p'), IntentPause},
		{"m mutes", char('m'), IntentToggleMute},
		{"F1 debug", key(tcell.KeyF1), IntentToggleDebug},
		{"up moves", key(tcell.KeyUp), IntentMove},
		{"unbound", char('z'), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Handle(tt.ev, now).Type)
		})
	}
}

func TestMapper_KeyboardAxisHold(t *testing.T) {
	m := NewMapper(nil)
	t0 := time.Unix(100, 0)

	in := m.Handle(char('w'), t0)
	assert.Equal(t, 1.0, in.Dir)
	assert.Equal(t, 1.0, m.Control(paddle.SchemeAxis, t0.Add(100*time.Millisecond), nil, 0).Signal)

	// Held through the OS repeat delay
	assert.Equal(t, 1.0, m.Control(paddle.SchemeAxis, t0.Add(parameter.KeyInitialHold), nil, 0).Signal)

	// Auto-repeat shortens the window
	t1 := t0.Add(500 * time.Millisecond)
	m.Handle(char('w'), t1)
	assert.Equal(t, 1.0, m.Control(paddle.SchemeAxis, t1.Add(parameter.KeyRepeatHold), nil, 0).Signal)
	assert.Zero(t, m.Control(paddle.SchemeAxis, t1.Add(parameter.KeyRepeatHold+time.Millisecond), nil, 0).Signal)

	// Direction change is a fresh press
	t2 := t1.Add(time.Second)
	m.Handle(key(tcell.KeyDown), t2)
	assert.Equal(t, -1.0, m.Control(paddle.SchemeTilt, t2.Add(300*time.Millisecond), nil, 0).Signal)

	m.Release()
	assert.Zero(t, m.Control(paddle.SchemeAxis, t2, nil, 0).Signal)
}

func TestMapper_Pointer(t *testing.T) {
	m := NewMapper(nil)
	rows := rowsFunc(func(row int) float64 { return float64(10 - row) })
	now := time.Unix(0, 0)

	assert.Equal(t, 1.5, m.Control(paddle.SchemePointer, now, rows, 1.5).Signal, "holds until the mouse is seen")

	in := m.Handle(tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone), now)
	assert.Equal(t, IntentPointer, in.Type)
	assert.Equal(t, 3.0, m.Control(paddle.SchemePointer, now, rows, 1.5).Signal)

	in = m.Handle(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone), now)
	assert.Equal(t, IntentLaunch, in.Type)
	assert.Equal(t, 8.0, m.Control(paddle.SchemePointer, now, rows, 0).Signal)

	assert.Zero(t, m.Control(paddle.SchemeTracking, now, rows, 0).Signal)
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig([]byte(`
[keys]
i = "move_up"
space = "none"

[special_keys]
F2 = "toggle_debug"
f1 = "none"
`))
	require.NoError(t, err)

	merged := MergeKeyTable(DefaultKeyTable(), kt)
	m := NewMapper(merged)
	now := time.Unix(0, 0)

	in := m.Handle(char('i'), now)
	assert.Equal(t, IntentMove, in.Type)
	assert.Equal(t, 1.0, in.Dir)
	assert.Equal(t, IntentNone, m.Handle(char(' '), now).Type)
	assert.Equal(t, IntentToggleDebug, m.Handle(key(tcell.KeyF2), now).Type)
	assert.Equal(t, IntentNone, m.Handle(key(tcell.KeyF1), now).Type)
	assert.Equal(t, IntentReset, m.Handle(char('r'), now).Type, "untouched bindings survive")

	_, ok := DefaultKeyTable().Runes[' ']
	assert.True(t, ok, "merge does not mutate the base")
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	tests := map[string]string{
		"bad toml":       `[keys`,
		"unknown action": "[keys]\nx = \"fly\"\n",
		"long rune":      "[keys]\nxy = \"quit\"\n",
		"unknown key":    "[special_keys]\nhyper = \"quit\"\n",
		"unknown table":  "[mouse]\nleft = \"launch\"\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadKeyConfigFile(t *testing.T) {
	kt, err := LoadKeyConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyTable(), kt)

	path := filepath.Join(t.TempDir(), "keys.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keys]\nl = \"launch\"\n"), 0o644))
	kt, err = LoadKeyConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, IntentLaunch, kt.Runes['l'].Intent)

	_, err = LoadKeyConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	assert.Contains(t, names, "move_up")
	assert.Contains(t, names, "none")
	assert.IsIncreasing(t, names)
	assert.Equal(t, "toggle_debug", IntentToggleDebug.String())
	assert.Equal(t, "unknown", IntentType(200).String())
}
