// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WeaponDefs is a map to hold all weapon definitions, keyed by their ID.
var WeaponDefs map[string]WeaponDefinition

// UnitDefs is a map to hold all unit definitions, keyed by their ID.
var UnitDefs map[string]UnitDefinition

// LoadAll reads every definition catalog from the given data directory.
func LoadAll(dir string) error {
	if err := LoadWeaponDefinitions(filepath.Join(dir, "weapons.json")); err != nil {
		return err
	}
	if err := LoadUnitDefinitions(filepath.Join(dir, "units.json")); err != nil {
		return err
	}
	return nil
}

// LoadWeaponDefinitions reads the weapon configuration file and populates WeaponDefs.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponDefs = make(map[string]WeaponDefinition)
	for _, def := range weaponDefs {
		WeaponDefs[def.ID] = def
	}

	fmt.Printf("Loaded %d weapon definitions\n", len(WeaponDefs))
	return nil
}

// LoadUnitDefinitions reads the unit configuration file and populates UnitDefs.
func LoadUnitDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read unit definitions file: %w", err)
	}

	var unitDefs []UnitDefinition
	if err := json.Unmarshal(file, &unitDefs); err != nil {
		return fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	UnitDefs = make(map[string]UnitDefinition)
	for _, def := range unitDefs {
		UnitDefs[def.ID] = def
	}

	fmt.Printf("Loaded %d unit definitions\n", len(UnitDefs))
	return nil
}
