package cev

// Mastery adjustments. When a scenario enables mastery, the commander's
// bonuses reshape the unit's stats before the formula pipeline runs. All
// adjustments work on copies; the records themselves stay immutable.

// masteredLife returns the unit's life after the commander's HP masteries.
// Mech and bio bonuses key off the unit's attribute tags, mirroring how the
// bonuses apply in game.
func masteredLife(u *UnitRecord, cm *CommanderProfile) float64 {
	life := u.Life
	if cm.Masteries.MechLife > 0 && u.HasAttribute(AttrMechanical) {
		life *= 1 + cm.Masteries.MechLife
	}
	if cm.Masteries.BioLife > 0 && u.HasAttribute(AttrBiological) {
		life *= 1 + cm.Masteries.BioLife
	}
	return life
}

// masteredPeriod returns the weapon period after the commander's
// attack-speed mastery: period / (1 + bonus).
func masteredPeriod(period float64, cm *CommanderProfile) float64 {
	if cm.Masteries.AttackSpeed > 0 {
		return period / (1 + cm.Masteries.AttackSpeed)
	}
	return period
}

// masteredShieldPremium returns the shield valuation factor after the
// commander's shield-regeneration mastery.
func masteredShieldPremium(base float64, cm *CommanderProfile) float64 {
	if cm.Masteries.ShieldRegen > 0 {
		return base * (1 + cm.Masteries.ShieldRegen)
	}
	return base
}
