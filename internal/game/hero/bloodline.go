package hero

import (
	"github.com/cory-johannsen/heroforge/internal/game/dice"
	"github.com/cory-johannsen/heroforge/internal/game/ruleset"
)

// SelectBloodline resolves the bloodline for a new hero. A requested id
// that resolves in the table wins; otherwise one is drawn uniformly at
// random. An empty or absent table yields nil ("no bloodline"), never
// an error.
//
// Random draws index into the sorted id list, so an injected
// deterministic Source produces a deterministic pick.
//
// Precondition: lib and src must be non-nil.
func SelectBloodline(lib *ruleset.Library, src dice.Source, requestedID string) *ruleset.Bloodline {
	if requestedID != "" {
		if b, ok := lib.Bloodline(requestedID); ok {
			return b
		}
	}

	ids := lib.BloodlineIDs()
	if len(ids) == 0 {
		return nil
	}
	b, _ := lib.Bloodline(ids[src.Intn(len(ids))])
	return b
}
