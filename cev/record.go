package cev

import (
	"fmt"
	"sort"
)

// Attribute is a unit classification tag used for bonus-damage lookup.
// The set is closed: records referencing tags outside it are rejected at
// load time with UnknownAttributeError.
type Attribute string

const (
	AttrLight      Attribute = "Light"
	AttrArmored    Attribute = "Armored"
	AttrBiological Attribute = "Biological"
	AttrMechanical Attribute = "Mechanical"
	AttrMassive    Attribute = "Massive"
	AttrPsionic    Attribute = "Psionic"
	AttrStructure  Attribute = "Structure"
	AttrHeroic     Attribute = "Heroic"
)

// ValidAttributes is the recognized attribute tag set.
var ValidAttributes = map[Attribute]bool{
	AttrLight:      true,
	AttrArmored:    true,
	AttrBiological: true,
	AttrMechanical: true,
	AttrMassive:    true,
	AttrPsionic:    true,
	AttrStructure:  true,
	AttrHeroic:     true,
}

// UnitClass tags a unit's control scheme for the operator-difficulty lookup.
// Every unit carries exactly one class; unconfigured classes resolve to the
// documented default of 1.0 unless the calibration runs strict.
type UnitClass string

const (
	// ClassStandard is the default control scheme (coefficient 1.0).
	ClassStandard UnitClass = "standard"
	// ClassMobileAttack marks units that attack while moving (> 1.0).
	ClassMobileAttack UnitClass = "mobile-attack"
	// ClassSimpleSiege marks units with a cheap setup transition (< 1.0).
	ClassSimpleSiege UnitClass = "simple-siege"
	// ClassComplexSiege marks units requiring precise pre-positioning (lowest).
	ClassComplexSiege UnitClass = "complex-siege"
	// ClassAutoCast marks units whose damage is mostly automated.
	ClassAutoCast UnitClass = "auto-cast"
)

// ValidUnitClasses is the closed unit-class tag set.
var ValidUnitClasses = map[UnitClass]bool{
	ClassStandard:     true,
	ClassMobileAttack: true,
	ClassSimpleSiege:  true,
	ClassComplexSiege: true,
	ClassAutoCast:     true,
}

// WeaponRef is a non-owning reference from a unit to one of its weapons.
// Mode names the unit configuration the weapon belongs to; an empty mode with
// Default set marks the weapon active in the unit's base configuration.
type WeaponRef struct {
	WeaponID string `yaml:"weapon_ref"`
	Mode     string `yaml:"mode"`
	Default  bool   `yaml:"is_default"`
}

// ModeRecord is an alternate stat/weapon configuration of a unit
// (e.g. sieged vs. mobile). StatModifiers are additive deltas onto the base
// stats; a modifier of exactly 0 disables the stat entirely (a sieged unit's
// movement speed). WeaponMode selects which WeaponRefs are active.
type ModeRecord struct {
	Name          string             `yaml:"name"`
	StatModifiers map[string]float64 `yaml:"stat_modifiers"`
	WeaponMode    string             `yaml:"weapon_mode"`
	SwitchTime    float64            `yaml:"switch_time"`
}

// UnitRecord is an immutable snapshot of one combat unit's stats.
// It strongly owns its ModeRecords; weapons are referenced by id and resolved
// through a WeaponIndex at evaluation time.
type UnitRecord struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Commander string `yaml:"commander"`
	Race      string `yaml:"race"`

	// Base stats.
	Life    float64 `yaml:"life"`
	Shields float64 `yaml:"shields"`
	Armor   float64 `yaml:"armor"`
	Energy  float64 `yaml:"energy"`

	// Cost.
	Minerals  float64 `yaml:"minerals"`
	Vespene   float64 `yaml:"vespene"`
	Supply    float64 `yaml:"supply"`
	BuildTime float64 `yaml:"build_time"`

	// Movement and physics.
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
	Flying bool    `yaml:"flying"`

	NonCombat  bool        `yaml:"non_combat"`
	Class      UnitClass   `yaml:"class"`
	Attributes []Attribute `yaml:"attributes"`
	Weapons    []WeaponRef `yaml:"weapons"`
	Modes      []ModeRecord `yaml:"modes"`
}

// Validate checks the record's local numeric invariants. Cross-references
// (weapon ids, commander id) are the loader's responsibility.
func (u *UnitRecord) Validate() error {
	if u.Life <= 0 {
		return &InvalidUnitDataError{ID: u.ID, Field: "life", Value: u.Life}
	}
	if u.Supply <= 0 {
		return &InvalidUnitDataError{ID: u.ID, Field: "supply", Value: u.Supply}
	}
	if u.Armor <= -10 {
		return &InvalidUnitDataError{ID: u.ID, Field: "armor", Value: u.Armor}
	}
	if len(u.Weapons) == 0 && !u.NonCombat {
		return &InvalidUnitDataError{ID: u.ID, Field: "weapons", Value: 0}
	}
	if u.Class != "" && !ValidUnitClasses[u.Class] {
		return fmt.Errorf("unit %q: unknown unit class %q", u.ID, u.Class)
	}
	for _, attr := range u.Attributes {
		if !ValidAttributes[attr] {
			return &UnknownAttributeError{Attribute: attr, Context: fmt.Sprintf("unit %s", u.ID)}
		}
	}
	return nil
}

// ClassOrDefault returns the unit's class tag, falling back to ClassStandard
// for records that never set one.
func (u *UnitRecord) ClassOrDefault() UnitClass {
	if u.Class == "" {
		return ClassStandard
	}
	return u.Class
}

// HasAttribute reports whether the unit carries the given tag.
func (u *UnitRecord) HasAttribute(attr Attribute) bool {
	for _, a := range u.Attributes {
		if a == attr {
			return true
		}
	}
	return false
}

// ActiveWeapons returns the weapon references active in the named mode.
// An empty mode selects the default configuration. A unit may field more than
// one simultaneous weapon (separate air/ground weapons); all matching refs
// are returned in declaration order.
func (u *UnitRecord) ActiveWeapons(mode string) []WeaponRef {
	var refs []WeaponRef
	for _, ref := range u.Weapons {
		if mode == "" {
			if ref.Default || ref.Mode == "" {
				refs = append(refs, ref)
			}
		} else if ref.Mode == mode {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Mode looks up a ModeRecord by name.
func (u *UnitRecord) Mode(name string) (ModeRecord, bool) {
	for _, m := range u.Modes {
		if m.Name == name {
			return m, true
		}
	}
	return ModeRecord{}, false
}

// WithMode returns a copy of the unit with the named mode's stat modifiers
// applied. The receiver is never mutated. Modifier keys address the base
// stats by name; a value of exactly 0 zeroes the stat out.
func (u *UnitRecord) WithMode(name string) (UnitRecord, error) {
	mode, ok := u.Mode(name)
	if !ok {
		return UnitRecord{}, fmt.Errorf("unit %q: unknown mode %q", u.ID, name)
	}
	modified := *u
	apply := func(base float64, key string) float64 {
		delta, present := mode.StatModifiers[key]
		if !present {
			return base
		}
		if delta == 0 {
			return 0
		}
		return base + delta
	}
	modified.Life = apply(u.Life, "life")
	modified.Shields = apply(u.Shields, "shields")
	modified.Armor = apply(u.Armor, "armor")
	modified.Energy = apply(u.Energy, "energy")
	modified.Speed = apply(u.Speed, "speed")
	modified.Radius = apply(u.Radius, "radius")
	return modified, nil
}

// SplashRing is one (radius, damage-fraction) step of a splash falloff curve.
type SplashRing struct {
	Radius   float64 `yaml:"radius"`
	Fraction float64 `yaml:"fraction"`
}

// SplashDescriptor describes area damage as an ordered falloff curve plus an
// optional arc for cone-shaped splash.
type SplashDescriptor struct {
	Rings []SplashRing `yaml:"rings"`
	Arc   float64      `yaml:"arc"`
}

// WeaponRecord is an immutable snapshot of one weapon's stats. UnitID is the
// owning unit; the relation is resolved by id, never by pointer.
type WeaponRecord struct {
	ID     string `yaml:"id"`
	UnitID string `yaml:"unit_id"`

	Damage  float64 `yaml:"damage"`
	Attacks int     `yaml:"attacks"`
	Period  float64 `yaml:"period"`
	Range   float64 `yaml:"range"`

	TargetFilters []string              `yaml:"target_filters"`
	BonusDamage   map[Attribute]float64 `yaml:"bonus_damage"`
	Splash        *SplashDescriptor     `yaml:"splash"`
}

// Validate checks the weapon's local invariants, including that every
// bonus-damage key is a recognized attribute tag.
func (w *WeaponRecord) Validate() error {
	if w.Period <= 0 {
		return &InvalidUnitDataError{ID: w.ID, Field: "attack_interval", Value: w.Period}
	}
	if w.Damage < 0 {
		return &InvalidUnitDataError{ID: w.ID, Field: "damage", Value: w.Damage}
	}
	if w.Attacks <= 0 {
		return &InvalidUnitDataError{ID: w.ID, Field: "attacks", Value: float64(w.Attacks)}
	}
	for attr := range w.BonusDamage {
		if !ValidAttributes[attr] {
			return &UnknownAttributeError{Attribute: attr, Context: fmt.Sprintf("weapon %s", w.ID)}
		}
	}
	return nil
}

// HasSplash reports whether the weapon deals area damage.
func (w *WeaponRecord) HasSplash() bool {
	return w.Splash != nil && len(w.Splash.Rings) > 0
}

// BonusAgainst sums the weapon's bonus damage against the given target
// attribute set. Attributes the weapon has no entry for contribute nothing.
func (w *WeaponRecord) BonusAgainst(attrs []Attribute) float64 {
	var bonus float64
	for _, attr := range attrs {
		bonus += w.BonusDamage[attr]
	}
	return bonus
}

// MasteryBonuses carries the commander mastery fractions that affect the
// formula pipeline. All fields are fractions (0.15 = +15%).
type MasteryBonuses struct {
	AttackSpeed float64 `yaml:"attack_speed"`
	MechLife    float64 `yaml:"mech_life"`
	BioLife     float64 `yaml:"bio_life"`
	ShieldRegen float64 `yaml:"shield_regen"`
}

// CommanderProfile is read-only reference data shared by all unit evaluations
// for that commander. Loaded once per session, never mutated.
type CommanderProfile struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Race string `yaml:"race"`

	PopulationCap        float64 `yaml:"population_cap"`
	MineralGasRatio      float64 `yaml:"mineral_gas_ratio"`
	SupplyTaxExempt      bool    `yaml:"supply_tax_exempt"`
	ProductionEfficiency float64 `yaml:"production_efficiency"`

	Masteries MasteryBonuses `yaml:"masteries"`
}

// Validate checks the profile's local invariants.
func (c *CommanderProfile) Validate() error {
	if c.PopulationCap <= 0 {
		return &InvalidUnitDataError{ID: c.ID, Field: "population_cap", Value: c.PopulationCap}
	}
	if c.MineralGasRatio < 0 {
		return &InvalidUnitDataError{ID: c.ID, Field: "mineral_gas_ratio", Value: c.MineralGasRatio}
	}
	return nil
}

// WeaponIndex resolves weapon ids to records. *Dataset implements it.
type WeaponIndex interface {
	Weapon(id string) (WeaponRecord, bool)
}

// CommanderIndex resolves commander ids to profiles. *Dataset implements it.
type CommanderIndex interface {
	Commander(id string) (CommanderProfile, bool)
}

// SortAttributes returns the tag set in deterministic order, for logging and
// error messages.
func SortAttributes(attrs []Attribute) []Attribute {
	sorted := make([]Attribute, len(attrs))
	copy(sorted, attrs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}
