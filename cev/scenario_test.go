package cev

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewScenario_ValidatesAttributes verifies unknown target tags fail at
// construction, not during evaluation.
func TestNewScenario_ValidatesAttributes(t *testing.T) {
	sc, err := NewScenario("custom", []Attribute{AttrArmored, AttrMassive}, 150, 4, false)
	assert.NoError(t, err)
	assert.Equal(t, "custom", sc.Name)
	assert.Len(t, sc.TargetAttributes, 2)

	_, err = NewScenario("bad", []Attribute{"Cloaked"}, 100, 5, false)
	var attrErr *UnknownAttributeError
	if !errors.As(err, &attrErr) {
		t.Fatalf("expected UnknownAttributeError, got %v", err)
	}
	assert.Equal(t, Attribute("Cloaked"), attrErr.Attribute)
}

// TestNewScenario_CopiesTargetSlice verifies the scenario does not alias the
// caller's attribute slice.
func TestNewScenario_CopiesTargetSlice(t *testing.T) {
	targets := []Attribute{AttrLight}
	sc, err := NewScenario("aliasing", targets, 50, 10, false)
	assert.NoError(t, err)

	targets[0] = AttrArmored
	assert.Equal(t, AttrLight, sc.TargetAttributes[0])
}

// TestPresetScenario verifies preset lookup, the empty-name convention, and
// unknown names.
func TestPresetScenario(t *testing.T) {
	sc, err := PresetScenario("vs-armored")
	assert.NoError(t, err)
	assert.Equal(t, "vs-armored", sc.Name)
	assert.Equal(t, []Attribute{AttrArmored}, sc.TargetAttributes)

	sc, err = PresetScenario("")
	assert.NoError(t, err)
	assert.Nil(t, sc)

	_, err = PresetScenario("vs-heroes")
	assert.Error(t, err)
}

// TestPresetScenario_ReturnsCopy verifies mutating a returned preset never
// leaks back into the registry.
func TestPresetScenario_ReturnsCopy(t *testing.T) {
	first, err := PresetScenario("vs-elite")
	assert.NoError(t, err)
	first.TargetAttributes[0] = AttrLight
	first.TargetLifePool = 9999

	second, err := PresetScenario("vs-elite")
	assert.NoError(t, err)
	assert.Equal(t, AttrArmored, second.TargetAttributes[0])
	assert.Equal(t, 200.0, second.TargetLifePool)
}

func TestIsValidScenario(t *testing.T) {
	assert.True(t, IsValidScenario(""))
	assert.True(t, IsValidScenario("standard"))
	assert.True(t, IsValidScenario("vs-swarm"))
	assert.False(t, IsValidScenario("vs-heroes"))
}

func TestPresetScenarioNames(t *testing.T) {
	names := PresetScenarioNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "standard")
	assert.Contains(t, names, "vs-mixed")
	assert.Len(t, names, 6)
}

// TestWithMastery covers the toggle and the nil-receiver convenience.
func TestWithMastery(t *testing.T) {
	base, err := PresetScenario("standard")
	assert.NoError(t, err)

	on := base.WithMastery(true)
	assert.True(t, on.ApplyMastery)
	assert.False(t, base.ApplyMastery) // receiver untouched
	assert.Equal(t, base.Name, on.Name)

	var none *CombatScenario
	minimal := none.WithMastery(true)
	assert.NotNil(t, minimal)
	assert.True(t, minimal.ApplyMastery)
	assert.Empty(t, minimal.Name)
}
