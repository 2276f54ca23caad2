package cev

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Dataset is the validated, immutable record store one evaluation session
// works against: id-keyed units, weapons, and commander profiles with
// referential integrity already established. It implements WeaponIndex and
// CommanderIndex.
type Dataset struct {
	units      map[string]UnitRecord
	weapons    map[string]WeaponRecord
	commanders map[string]CommanderProfile
}

type unitsFile struct {
	Units []UnitRecord `yaml:"units"`
}

type weaponsFile struct {
	Weapons []WeaponRecord `yaml:"weapons"`
}

type commandersFile struct {
	Commanders []CommanderProfile `yaml:"commanders"`
}

// LoadDataset reads units.yaml, weapons.yaml, and commanders.yaml from dir
// and returns a fully validated dataset.
func LoadDataset(dir string) (*Dataset, error) {
	var uf unitsFile
	if err := readYAML(filepath.Join(dir, "units.yaml"), &uf); err != nil {
		return nil, err
	}
	var wf weaponsFile
	if err := readYAML(filepath.Join(dir, "weapons.yaml"), &wf); err != nil {
		return nil, err
	}
	var cf commandersFile
	if err := readYAML(filepath.Join(dir, "commanders.yaml"), &cf); err != nil {
		return nil, err
	}

	ds, err := NewDataset(uf.Units, wf.Weapons, cf.Commanders)
	if err != nil {
		return nil, err
	}
	logrus.Infof("loaded dataset from %s: %d units, %d weapons, %d commanders",
		dir, len(ds.units), len(ds.weapons), len(ds.commanders))
	return ds, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// NewDataset validates the records (local numeric invariants plus
// referential integrity: every weapon reference and commander id must
// resolve) and builds the id-keyed store.
func NewDataset(units []UnitRecord, weapons []WeaponRecord, commanders []CommanderProfile) (*Dataset, error) {
	ds := &Dataset{
		units:      make(map[string]UnitRecord, len(units)),
		weapons:    make(map[string]WeaponRecord, len(weapons)),
		commanders: make(map[string]CommanderProfile, len(commanders)),
	}

	for _, cm := range commanders {
		if cm.ID == "" {
			return nil, fmt.Errorf("commander with empty id")
		}
		if _, dup := ds.commanders[cm.ID]; dup {
			return nil, fmt.Errorf("duplicate commander id %q", cm.ID)
		}
		if err := cm.Validate(); err != nil {
			return nil, err
		}
		ds.commanders[cm.ID] = cm
	}

	for _, w := range weapons {
		if w.ID == "" {
			return nil, fmt.Errorf("weapon with empty id")
		}
		if _, dup := ds.weapons[w.ID]; dup {
			return nil, fmt.Errorf("duplicate weapon id %q", w.ID)
		}
		if err := w.Validate(); err != nil {
			return nil, err
		}
		ds.weapons[w.ID] = w
	}

	for _, u := range units {
		if u.ID == "" {
			return nil, fmt.Errorf("unit with empty id")
		}
		if _, dup := ds.units[u.ID]; dup {
			return nil, fmt.Errorf("duplicate unit id %q", u.ID)
		}
		if err := u.Validate(); err != nil {
			return nil, err
		}
		if _, ok := ds.commanders[u.Commander]; !ok {
			return nil, fmt.Errorf("unit %q: dangling commander reference %q", u.ID, u.Commander)
		}
		for _, ref := range u.Weapons {
			if _, ok := ds.weapons[ref.WeaponID]; !ok {
				return nil, fmt.Errorf("unit %q: dangling weapon reference %q", u.ID, ref.WeaponID)
			}
		}
		ds.units[u.ID] = u
	}

	for _, w := range ds.weapons {
		if w.UnitID != "" {
			if _, ok := ds.units[w.UnitID]; !ok {
				return nil, fmt.Errorf("weapon %q: dangling unit reference %q", w.ID, w.UnitID)
			}
		}
	}

	return ds, nil
}

// Unit looks up a unit by id.
func (d *Dataset) Unit(id string) (UnitRecord, bool) {
	u, ok := d.units[id]
	return u, ok
}

// Weapon looks up a weapon by id.
func (d *Dataset) Weapon(id string) (WeaponRecord, bool) {
	w, ok := d.weapons[id]
	return w, ok
}

// Commander looks up a commander profile by id.
func (d *Dataset) Commander(id string) (CommanderProfile, bool) {
	c, ok := d.commanders[id]
	return c, ok
}

// Units returns all units sorted by id, for deterministic iteration.
func (d *Dataset) Units() []UnitRecord {
	units := make([]UnitRecord, 0, len(d.units))
	for _, u := range d.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })
	return units
}

// UnitsFor returns the units owned by one commander, sorted by id.
func (d *Dataset) UnitsFor(commander string) []UnitRecord {
	var units []UnitRecord
	for _, u := range d.units {
		if u.Commander == commander {
			units = append(units, u)
		}
	}
	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })
	return units
}

// Commanders returns all commander profiles sorted by id.
func (d *Dataset) Commanders() []CommanderProfile {
	cms := make([]CommanderProfile, 0, len(d.commanders))
	for _, c := range d.commanders {
		cms = append(cms, c)
	}
	sort.Slice(cms, func(i, j int) bool { return cms[i].ID < cms[j].ID })
	return cms
}
