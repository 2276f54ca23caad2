package cev

import "fmt"

// InvalidUnitDataError reports a unit or commander stat that makes the CEV
// formula undefined (non-positive divisor, impossible stat). These are caller
// data errors: they surface immediately and are never recovered internally.
type InvalidUnitDataError struct {
	ID    string  // unit or commander id
	Field string  // offending field, e.g. "attack_interval"
	Value float64 // observed value
}

func (e *InvalidUnitDataError) Error() string {
	return fmt.Sprintf("invalid unit data for %q: %s = %v", e.ID, e.Field, e.Value)
}

// InvalidRangeError reports a non-positive collision radius, which makes the
// range factor undefined.
type InvalidRangeError struct {
	UnitID string
	Radius float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid collision radius %v for unit %q", e.Radius, e.UnitID)
}

// UnknownAttributeError reports an attribute tag outside the recognized set,
// referenced either by a weapon's bonus-damage table or by a combat scenario.
type UnknownAttributeError struct {
	Attribute Attribute
	Context   string // "weapon <id>" or "scenario <name>"
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q in %s", string(e.Attribute), e.Context)
}

// MissingCoefficientConfigError reports a unit class with no
// operator-difficulty entry while the calibration runs with
// StrictOperatorLookup and the default-to-1.0 policy is disabled.
type MissingCoefficientConfigError struct {
	Class UnitClass
}

func (e *MissingCoefficientConfigError) Error() string {
	return fmt.Sprintf("no operator-difficulty coefficient configured for unit class %q", string(e.Class))
}
