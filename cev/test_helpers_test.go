package cev

// Shared fixtures for the engine tests. The baseline unit reproduces the
// worked example from the v2.4 calibration notes:
//
//	C_eff  = 200 + 2.0*100 + 12.5*3 = 437.5
//	DPS    = 50*1/1.0 = 50 (no splash, overkill 1.0)
//	EHP    = 200/(1 - 1/11) = 220 (no shields)
//	range  = sqrt(9/0.75) = sqrt(12)
//	CEV    = 50*220*sqrt(12)/437.5 ≈ 87.10

type weaponMap map[string]WeaponRecord

func (m weaponMap) Weapon(id string) (WeaponRecord, bool) {
	w, ok := m[id]
	return w, ok
}

type commanderMap map[string]CommanderProfile

func (m commanderMap) Commander(id string) (CommanderProfile, bool) {
	c, ok := m[id]
	return c, ok
}

func testWeapon() WeaponRecord {
	return WeaponRecord{
		ID:      "GaussCannon",
		UnitID:  "Gunner",
		Damage:  50,
		Attacks: 1,
		Period:  1.0,
		Range:   9,
	}
}

func testUnit() UnitRecord {
	return UnitRecord{
		ID:        "Gunner",
		Name:      "Gunner",
		Commander: "Raynor",
		Race:      "Terran",
		Life:      200,
		Armor:     1,
		Minerals:  200,
		Vespene:   100,
		Supply:    3,
		Radius:    0.75,
		Weapons:   []WeaponRef{{WeaponID: "GaussCannon", Default: true}},
	}
}

func testCommander() CommanderProfile {
	return CommanderProfile{
		ID:                   "Raynor",
		Name:                 "Raynor",
		Race:                 "Terran",
		PopulationCap:        200,
		MineralGasRatio:      2.0,
		ProductionEfficiency: 1.0,
	}
}

func testIndexes() (weaponMap, commanderMap) {
	return weaponMap{"GaussCannon": testWeapon()},
		commanderMap{"Raynor": testCommander()}
}

func mustEvaluator(cal Calibration) *Evaluator {
	eval, err := NewEvaluator(cal)
	if err != nil {
		panic(err)
	}
	return eval
}
