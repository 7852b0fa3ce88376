package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// worldFile is the on-disk world config shape. Stat names are
// case-sensitive, so this table is parsed with yaml directly rather
// than through the application config layer.
type worldFile struct {
	Player struct {
		StartingStats map[string]int `yaml:"starting_stats"`
	} `yaml:"player"`
}

// LoadWorldDefaults reads the player starting-stat block from the world
// config file. The file and the block are both optional: a missing file
// or an empty block yields nil, which callers replace with the
// compiled-in fallback stats.
//
// Postcondition: Returns the starting stats (possibly nil) or a
// non-nil error for an unreadable or malformed file.
func LoadWorldDefaults(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f worldFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing world file %s: %w", path, err)
	}
	return f.Player.StartingStats, nil
}
