package cev

import (
	"fmt"
	"sort"
)

// CombatScenario is an optional evaluation context: the target composition
// the unit is scored against plus the mastery toggle. Scenarios are immutable
// value objects constructed by the caller (or taken from the preset registry)
// and passed by reference into every resolver that needs context; they carry
// no ownership relation to units.
type CombatScenario struct {
	Name             string
	TargetAttributes []Attribute
	TargetLifePool   float64 // average target life, for overkill context
	TargetCount      int
	ApplyMastery     bool
}

// NewScenario builds a validated scenario. Target attributes outside the
// recognized set fail with UnknownAttributeError at construction, not during
// evaluation.
func NewScenario(name string, targets []Attribute, lifePool float64, count int, mastery bool) (*CombatScenario, error) {
	for _, attr := range targets {
		if !ValidAttributes[attr] {
			return nil, &UnknownAttributeError{Attribute: attr, Context: fmt.Sprintf("scenario %s", name)}
		}
	}
	attrs := make([]Attribute, len(targets))
	copy(attrs, targets)
	return &CombatScenario{
		Name:             name,
		TargetAttributes: attrs,
		TargetLifePool:   lifePool,
		TargetCount:      count,
		ApplyMastery:     mastery,
	}, nil
}

// scenarioPresets are the named target compositions calibrated against
// observed co-op engagements.
var scenarioPresets = map[string]CombatScenario{
	"standard":   {Name: "standard", TargetLifePool: 100, TargetCount: 5},
	"vs-armored": {Name: "vs-armored", TargetAttributes: []Attribute{AttrArmored}, TargetLifePool: 150, TargetCount: 5},
	"vs-light":   {Name: "vs-light", TargetAttributes: []Attribute{AttrLight}, TargetLifePool: 50, TargetCount: 10},
	"vs-elite":   {Name: "vs-elite", TargetAttributes: []Attribute{AttrArmored, AttrMassive}, TargetLifePool: 200, TargetCount: 3},
	"vs-swarm":   {Name: "vs-swarm", TargetAttributes: []Attribute{AttrLight, AttrBiological}, TargetLifePool: 50, TargetCount: 20},
	"vs-mixed":   {Name: "vs-mixed", TargetLifePool: 100, TargetCount: 8},
}

// IsValidScenario reports whether name is a registered preset. The empty
// string is valid and means "no scenario context".
func IsValidScenario(name string) bool {
	if name == "" {
		return true
	}
	_, ok := scenarioPresets[name]
	return ok
}

// PresetScenario returns a copy of the named preset. The empty name returns
// nil (evaluate without scenario context).
func PresetScenario(name string) (*CombatScenario, error) {
	if name == "" {
		return nil, nil
	}
	preset, ok := scenarioPresets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario preset %q", name)
	}
	sc := preset
	sc.TargetAttributes = append([]Attribute(nil), preset.TargetAttributes...)
	return &sc, nil
}

// PresetScenarioNames lists the registered preset names in sorted order.
func PresetScenarioNames() []string {
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithMastery returns a copy of the scenario with the mastery toggle set.
// A nil receiver yields a minimal scenario carrying only the toggle.
func (s *CombatScenario) WithMastery(apply bool) *CombatScenario {
	if s == nil {
		return &CombatScenario{ApplyMastery: apply}
	}
	sc := *s
	sc.TargetAttributes = append([]Attribute(nil), s.TargetAttributes...)
	sc.ApplyMastery = apply
	return &sc
}
