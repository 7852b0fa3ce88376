package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bloodline defines an optional ancestry granting additive stat
// bonuses at creation time. StatBonuses may name stats absent from the
// world default block (e.g. mana, spellPower); those are introduced
// rather than added.
type Bloodline struct {
	ID          string         `yaml:"-"`
	Name        string         `yaml:"name"`
	StatBonuses map[string]int `yaml:"stat_bonuses"`
}

// bloodlineFile is the on-disk table shape: a single document keyed by
// bloodline identifier.
type bloodlineFile struct {
	Bloodlines map[string]*Bloodline `yaml:"bloodlines"`
}

// LoadBloodlines reads the bloodline table from a single YAML file of
// the form {bloodlines: {id: {name, stat_bonuses}}}.
//
// Precondition: path must be a readable file path.
// Postcondition: Returns the table keyed by id (may be empty, never
// nil), with each Bloodline's ID set from its key, or a non-nil error.
func LoadBloodlines(path string) (map[string]*Bloodline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f bloodlineFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing bloodline file %s: %w", path, err)
	}
	table := make(map[string]*Bloodline, len(f.Bloodlines))
	for id, b := range f.Bloodlines {
		if b == nil {
			b = &Bloodline{}
		}
		b.ID = id
		table[id] = b
	}
	return table, nil
}
