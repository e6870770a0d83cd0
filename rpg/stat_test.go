package rpg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong-quest/core"
	"github.com/lixenwraith/pong-quest/event"
)

func TestStat_ValueSumsModifiers(t *testing.T) {
	s := NewStat(StatPower, 10)
	s.AddModifier(5, "sword")
	s.AddModifier(-2, "curse")

	assert.Equal(t, 13.0, s.Value())
	assert.Equal(t, 10.0, s.Base())
	assert.Equal(t, 2, s.ModifierCount())
}

func TestStat_ValueFloorsAtZero(t *testing.T) {
	s := NewStat(StatGrit, 3)
	s.AddModifier(-10, nil)
	assert.Equal(t, 0.0, s.Value())
}

func TestStat_RemoveModifierByHandle(t *testing.T) {
	s := NewStat(StatAgility, 10)
	a := s.AddModifier(4, "boots")
	b := s.AddModifier(4, "boots")

	require.True(t, s.RemoveModifier(a))
	assert.Equal(t, 14.0, s.Value(), "only the handle's modifier is removed")
	assert.False(t, s.RemoveModifier(a))

	mods := s.Modifiers()
	require.Len(t, mods, 1)
	assert.Equal(t, b.Value, mods[0].Value)
}

func TestStat_RemoveAllFromSource(t *testing.T) {
	type buff struct{ id int }
	s := NewStat(StatFocus, 10)
	s.AddModifier(1, buff{1})
	s.AddModifier(2, buff{2})
	s.AddModifier(3, buff{1})
	s.AddModifier(4, []int{1}) // non-comparable source

	assert.Equal(t, 2, s.RemoveAllModifiersFromSource(buff{1}))
	assert.Equal(t, 0, s.RemoveAllModifiersFromSource([]int{1}))
	assert.Equal(t, 16.0, s.Value())

	s.ClearModifiers()
	assert.Equal(t, 10.0, s.Value())
}

func TestStat_OnChangeFiresForEveryMutation(t *testing.T) {
	s := NewStat(StatPower, 1)
	calls := 0
	s.OnChange = func(*Stat) { calls++ }

	s.SetBase(2)
	s.IncreaseBase(1)
	m := s.AddModifier(1, nil)
	s.RemoveModifier(m)
	s.RemoveAllModifiersFromSource("none")
	s.ClearModifiers()

	assert.Equal(t, 6, calls)
}

func TestStats_LookupAliases(t *testing.T) {
	s := NewStats(DefaultBase(), core.SidePlayer, nil)

	tests := []struct {
		name string
		want *Stat
	}{
		{"power", s.Power},
		{"PWR", s.Power},
		{"Agility", s.Agility},
		{"agi", s.Agility},
		{"GRIT", s.Grit},
		{"grt", s.Grit},
		{" Focus ", s.Focus},
		{"FCS", s.Focus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Lookup(tt.name)
			require.True(t, ok)
			assert.Same(t, tt.want, got)
		})
	}

	_, ok := s.Lookup("luck")
	assert.False(t, ok)
	assert.Equal(t, 0.0, s.Value("luck"))
}

func TestStats_IncreaseStatEmits(t *testing.T) {
	rec := event.NewRecorder(0)
	s := NewStats(DefaultBase(), core.SideEnemy, rec)

	s.IncreaseStat("pwr", 10)
	s.IncreaseStat("unknown", 10)

	assert.Equal(t, 20.0, s.Value("power"))
	require.Len(t, rec.Events, 1)
	p := rec.Events[0].Payload.(*event.StatChangedPayload)
	assert.Equal(t, core.SideEnemy, p.Side)
	assert.Equal(t, StatPower, p.Stat)
	assert.Equal(t, 20.0, p.Value)
}

func TestStats_Summary(t *testing.T) {
	s := NewStats(DefaultBase(), core.SidePlayer, nil)
	assert.Equal(t, "PWR: 10 | AGI: 10 | GRT: 10 | FCS: 10", s.Summary())
}

func TestStatAccessorsNilSafe(t *testing.T) {
	assert.Equal(t, 0.0, PowerOf(nil))
	assert.Equal(t, 0.0, AgilityOf(nil))
	assert.Equal(t, 0.0, GritOf(nil))
}
