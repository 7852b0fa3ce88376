// Package hero implements creation-time hero assembly: layered base
// stat composition, bloodline selection, talent tree and equipment
// skeletons, and the factory that combines them into a Hero.
package hero

import "github.com/cory-johannsen/heroforge/internal/game/ruleset"

// Well-known stat names used by the composition formulas. The stat
// block is an open map; bloodlines may introduce names beyond these.
const (
	StatHealth    = "health"
	StatMaxHealth = "maxHealth"
	StatAttack    = "attack"
	StatDefense   = "defense"
	StatSpeed     = "speed"
	StatIntellect = "intellect"
)

// StatBlock is an open string-keyed stat map.
type StatBlock map[string]int

// Clone returns an independent copy of the stat block.
//
// Postcondition: mutating the copy never affects the receiver.
func (s StatBlock) Clone() StatBlock {
	out := make(StatBlock, len(s))
	for stat, value := range s {
		out[stat] = value
	}
	return out
}

// DefaultStartingStats returns the compiled-in fallback stat block used
// when the world config does not supply starting stats.
func DefaultStartingStats() StatBlock {
	return StatBlock{
		StatHealth:    100,
		StatMaxHealth: 100,
		StatAttack:    10,
		StatDefense:   5,
		StatSpeed:     50,
	}
}

// BloodlineRef identifies the bloodline a hero was created with.
type BloodlineRef struct {
	ID   string
	Name string
}

// TalentRank tracks spent points against a single talent's capacity.
type TalentRank struct {
	Points    int
	MaxPoints int
}

// TalentTree maps tree id to talent id to rank. A class with no
// configured trees yields an empty (non-nil) map.
type TalentTree map[string]map[string]TalentRank

// EquippedItem is an item occupying an equipment slot. Slots in a
// freshly created hero are all nil.
type EquippedItem struct {
	ItemID string
}

// equipmentSlots is the fixed 18-slot skeleton every hero carries.
var equipmentSlots = [...]string{
	"head", "neck", "shoulder", "cloak", "chest", "shirt",
	"tabard", "bracer", "hands", "waist", "legs", "boots",
	"ring1", "ring2", "trinket1", "trinket2", "weapon", "offhand",
}

// newEquipmentSkeleton builds the empty slot map.
//
// Postcondition: the map has exactly len(equipmentSlots) keys, all nil.
func newEquipmentSkeleton() map[string]*EquippedItem {
	slots := make(map[string]*EquippedItem, len(equipmentSlots))
	for _, slot := range equipmentSlots {
		slots[slot] = nil
	}
	return slots
}

// Hero is a fully assembled hero entity.
//
// Heroes are immutable once returned by the factory: downstream systems
// (damage, leveling, equipment) own all post-creation mutation.
type Hero struct {
	ID   string // "hero_{n}", unique and ordered per factory
	Name string // generated display name; not unique

	ClassID   string
	SpecID    string        // composite "{classID}_{spec}" key
	Bloodline *BloodlineRef // nil when created without a bloodline
	Role      ruleset.Role

	Level      int
	Experience int

	BaseStats      StatBlock
	EquipmentSlots map[string]*EquippedItem
	TalentTree     TalentTree
	Abilities      []string // class core abilities then spec abilities

	// CurrentStats is a snapshot of BaseStats taken at creation time;
	// it is not a maintained derived view.
	CurrentStats StatBlock

	ResourceType    ruleset.ResourceKind
	CurrentResource int
	MaxResource     int
}
