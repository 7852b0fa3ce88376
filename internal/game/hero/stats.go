package hero

import (
	"math"

	"github.com/cory-johannsen/heroforge/internal/game/ruleset"
)

// ComposeStats builds a hero's base stat block. The application order
// is load-bearing: defaults are copied, bloodline bonuses are added
// (introducing any stats missing from the defaults), specialization
// passives scale maxHealth and defense with a floor, and health is
// synced to maxHealth last.
//
// A nil bloodline skips the additive step; a specialization without
// passive effects skips the multiplicative steps. Neither is an error.
//
// Precondition: defaults must be non-nil.
// Postcondition: the returned block is independent of defaults, and
// stats[StatHealth] == stats[StatMaxHealth].
func ComposeStats(defaults StatBlock, bloodline *ruleset.Bloodline, spec *ruleset.Specialization) StatBlock {
	stats := defaults.Clone()

	if bloodline != nil {
		for stat, bonus := range bloodline.StatBonuses {
			stats[stat] += bonus
		}
	}

	if spec != nil && spec.PassiveEffects != nil {
		stats[StatMaxHealth] = scale(stats[StatMaxHealth], spec.PassiveEffects.HealthBonus)
		stats[StatDefense] = scale(stats[StatDefense], spec.PassiveEffects.DefenseBonus)
	}

	stats[StatHealth] = stats[StatMaxHealth]
	return stats
}

// scale applies a fractional bonus multiplier and truncates downward:
// floor(value * (1 + bonus)).
func scale(value int, bonus float64) int {
	return int(math.Floor(float64(value) * (1 + bonus)))
}
