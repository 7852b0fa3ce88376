package hero_test

import (
	"testing"

	"github.com/cory-johannsen/heroforge/internal/game/hero"
	"github.com/cory-johannsen/heroforge/internal/game/ruleset"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func worldDefaults() hero.StatBlock {
	return hero.StatBlock{
		"health": 100, "maxHealth": 100, "attack": 10, "defense": 5, "speed": 50,
	}
}

// TestComposeStats_FullPipeline checks the worked example: defense +5
// bloodline bonus, then 20% health and 10% defense passives.
func TestComposeStats_FullPipeline(t *testing.T) {
	bloodline := &ruleset.Bloodline{
		ID:          "stonekin",
		Name:        "Stonekin",
		StatBonuses: map[string]int{"defense": 5},
	}
	spec := &ruleset.Specialization{
		ID:   "warrior_protection",
		Role: ruleset.RoleTank,
		PassiveEffects: &ruleset.PassiveEffects{
			HealthBonus:  0.2,
			DefenseBonus: 0.1,
		},
	}

	stats := hero.ComposeStats(worldDefaults(), bloodline, spec)

	assert.Equal(t, 120, stats["maxHealth"]) // floor(100 * 1.2)
	assert.Equal(t, 11, stats["defense"])    // floor((5+5) * 1.1)
	assert.Equal(t, 120, stats["health"])    // synced last
	assert.Equal(t, 10, stats["attack"])
	assert.Equal(t, 50, stats["speed"])
}

func TestComposeStats_BloodlineIntroducesNewStats(t *testing.T) {
	bloodline := &ruleset.Bloodline{
		ID:   "highborn",
		Name: "Highborn",
		StatBonuses: map[string]int{
			"mana":       100,
			"spellPower": 20,
		},
	}
	stats := hero.ComposeStats(worldDefaults(), bloodline, nil)

	assert.Equal(t, 100, stats["mana"])
	assert.Equal(t, 20, stats["spellPower"])
	// default keys are all still present
	for _, stat := range []string{"health", "maxHealth", "attack", "defense", "speed"} {
		assert.Contains(t, stats, stat)
	}
}

func TestComposeStats_NoBloodlineNoPassives(t *testing.T) {
	stats := hero.ComposeStats(worldDefaults(), nil, &ruleset.Specialization{ID: "warrior_arms", Role: ruleset.RoleDPS})
	assert.Equal(t, worldDefaults(), stats)
}

func TestComposeStats_DoesNotMutateDefaults(t *testing.T) {
	defaults := worldDefaults()
	bloodline := &ruleset.Bloodline{ID: "stonekin", StatBonuses: map[string]int{"defense": 5}}
	_ = hero.ComposeStats(defaults, bloodline, nil)
	assert.Equal(t, worldDefaults(), defaults)
}

func TestComposeStats_FloorsMultipliedValues(t *testing.T) {
	spec := &ruleset.Specialization{
		ID:   "priest_holy",
		Role: ruleset.RoleHealer,
		PassiveEffects: &ruleset.PassiveEffects{
			HealthBonus:  0.15, // 100 * 1.15 = 115 exactly
			DefenseBonus: 0.15, // 5 * 1.15 = 5.75 -> 5
		},
	}
	stats := hero.ComposeStats(worldDefaults(), nil, spec)
	assert.Equal(t, 115, stats["maxHealth"])
	assert.Equal(t, 5, stats["defense"])
}

// Property: health always equals maxHealth after composition.
func TestComposeStats_HealthAlwaysSynced(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bonus := rapid.IntRange(-50, 200).Draw(rt, "bonus")
		healthBonus := rapid.Float64Range(0, 1).Draw(rt, "healthBonus")
		defenseBonus := rapid.Float64Range(0, 1).Draw(rt, "defenseBonus")

		bloodline := &ruleset.Bloodline{
			ID:          "test",
			StatBonuses: map[string]int{"maxHealth": bonus, "defense": bonus},
		}
		spec := &ruleset.Specialization{
			ID:   "test_spec",
			Role: ruleset.RoleDPS,
			PassiveEffects: &ruleset.PassiveEffects{
				HealthBonus:  healthBonus,
				DefenseBonus: defenseBonus,
			},
		}

		stats := hero.ComposeStats(worldDefaults(), bloodline, spec)
		if stats["health"] != stats["maxHealth"] {
			rt.Fatalf("health %d != maxHealth %d", stats["health"], stats["maxHealth"])
		}
	})
}

// Property: every key in the defaults survives composition.
func TestComposeStats_DefaultKeysPreserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bonuses := rapid.MapOfN(
			rapid.StringMatching(`[a-z]{3,8}`), rapid.IntRange(-10, 10), 1, 6,
		).Draw(rt, "bonuses")

		bloodline := &ruleset.Bloodline{ID: "test", StatBonuses: bonuses}

		defaults := worldDefaults()
		stats := hero.ComposeStats(defaults, bloodline, nil)
		for stat := range defaults {
			if _, ok := stats[stat]; !ok {
				rt.Fatalf("default stat %q missing from composed block", stat)
			}
		}
	})
}
