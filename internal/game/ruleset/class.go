// Package ruleset defines the hero-creation content schema (classes,
// specializations, bloodlines, talent trees), the YAML loaders that
// read it, and the Library lookup registry over the loaded tables.
package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ResourceKind identifies the resource pool a class fights with.
type ResourceKind string

// The four supported resource pool kinds.
const (
	ResourceMana   ResourceKind = "mana"
	ResourceEnergy ResourceKind = "energy"
	ResourceRage   ResourceKind = "rage"
	ResourceFocus  ResourceKind = "focus"
)

// Valid reports whether r is one of the supported resource kinds.
func (r ResourceKind) Valid() bool {
	switch r {
	case ResourceMana, ResourceEnergy, ResourceRage, ResourceFocus:
		return true
	}
	return false
}

// Class defines a playable hero class.
//
// Specializations lists the spec suffixes valid for this class; the
// specialization table is keyed "{classID}_{spec}".
//
// Precondition: ID, Name, and Resource must be non-empty after loading.
type Class struct {
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	Description     string       `yaml:"description"`
	Resource        ResourceKind `yaml:"resource"`
	CoreAbilities   []string     `yaml:"core_abilities"`
	Specializations []string     `yaml:"specializations"`
}

// Validate checks that the class satisfies its schema invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty and Resource
// is a supported kind.
func (c *Class) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("class: id must not be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("class %s: name must not be empty", c.ID)
	}
	if !c.Resource.Valid() {
		return fmt.Errorf("class %s: resource must be one of [mana, energy, rage, focus], got %q", c.ID, c.Resource)
	}
	return nil
}

// LoadClasses reads all .yaml files in dir and parses each as a Class.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed classes (may be empty slice) or a non-nil error.
func LoadClasses(dir string) ([]*Class, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	classes := make([]*Class, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var c Class
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing class file %s: %w", path, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("validating class file %s: %w", path, err)
		}
		classes = append(classes, &c)
	}
	return classes, nil
}
