package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Talent describes a single talent node's point capacity.
type Talent struct {
	MaxPoints int `yaml:"max_points"`
}

// TalentTree is one named tree of talent nodes.
type TalentTree struct {
	Talents map[string]Talent `yaml:"talents"`
}

// ClassTalents is the full talent schema for one class.
type ClassTalents struct {
	Trees map[string]TalentTree `yaml:"trees"`
}

// LoadTalentTrees reads the talent table from a single YAML file of the
// form {classId: {trees: {treeId: {talents: {talentId: {max_points}}}}}}.
//
// A class absent from the table simply has no talent trees; that is not
// an error.
//
// Precondition: path must be a readable file path.
// Postcondition: Returns the table keyed by class id (may be empty,
// never nil) or a non-nil error.
func LoadTalentTrees(path string) (map[string]*ClassTalents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	table := make(map[string]*ClassTalents)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing talent file %s: %w", path, err)
	}
	return table, nil
}
