package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Role tags a specialization's combat role.
type Role string

// The three supported specialization roles.
const (
	RoleTank   Role = "tank"
	RoleHealer Role = "healer"
	RoleDPS    Role = "dps"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTank, RoleHealer, RoleDPS:
		return true
	}
	return false
}

// PassiveEffects holds a specialization's fractional stat multipliers.
// Both bonuses are optional; a nil PassiveEffects block means the
// specialization grants no passive modifiers.
type PassiveEffects struct {
	HealthBonus  float64 `yaml:"health_bonus"`
	DefenseBonus float64 `yaml:"defense_bonus"`
}

// Specialization defines a class specialization. ID is the composite
// table key "{classID}_{spec}".
//
// Precondition: ID and Role must be non-empty after loading.
type Specialization struct {
	ID             string          `yaml:"id"`
	Role           Role            `yaml:"role"`
	Abilities      []string        `yaml:"abilities"`
	PassiveEffects *PassiveEffects `yaml:"passive_effects"`
}

// Validate checks that the specialization satisfies its schema invariants.
//
// Postcondition: Returns nil iff ID is non-empty and Role is a
// supported role tag.
func (s *Specialization) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("specialization: id must not be empty")
	}
	if !s.Role.Valid() {
		return fmt.Errorf("specialization %s: role must be one of [tank, healer, dps], got %q", s.ID, s.Role)
	}
	return nil
}

// LoadSpecializations reads all .yaml files in dir and parses each as a
// Specialization.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed specializations (may be empty slice) or a non-nil error.
func LoadSpecializations(dir string) ([]*Specialization, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	specs := make([]*Specialization, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var s Specialization
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing specialization file %s: %w", path, err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("validating specialization file %s: %w", path, err)
		}
		specs = append(specs, &s)
	}
	return specs, nil
}
