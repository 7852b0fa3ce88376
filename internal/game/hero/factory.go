package hero

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/heroforge/internal/game/dice"
	"github.com/cory-johannsen/heroforge/internal/game/ruleset"
	"github.com/cory-johannsen/heroforge/internal/observability"
)

// TableSource fetches fresh class and specialization tables for hot
// reload. A fetch failure leaves the factory's previous table in
// effect.
type TableSource interface {
	FetchClasses() ([]*ruleset.Class, error)
	FetchSpecializations() ([]*ruleset.Specialization, error)
}

// Factory assembles heroes from the loaded content tables. It owns the
// hero ordinal counter; creation is the only operation that advances
// it.
//
// All methods are safe for concurrent use.
type Factory struct {
	lib      *ruleset.Library
	src      dice.Source
	reporter *observability.Reporter
	logger   *zap.Logger
	defaults StatBlock
	tables   TableSource

	mu      sync.Mutex
	ordinal uint64 // ordinal of the most recently created hero
}

// NewFactory creates a Factory over the given library.
//
// defaults is the world starting-stat block; nil or empty means the
// compiled-in fallback. A nil logger is replaced with a no-op logger.
//
// Precondition: lib, src, and reporter must be non-nil.
// Postcondition: Returns a Factory whose first created hero is "hero_1".
func NewFactory(lib *ruleset.Library, src dice.Source, reporter *observability.Reporter, logger *zap.Logger, defaults StatBlock) *Factory {
	if lib == nil {
		panic("hero: NewFactory requires a non-nil library")
	}
	if src == nil {
		panic("hero: NewFactory requires a non-nil dice source")
	}
	if reporter == nil {
		panic("hero: NewFactory requires a non-nil reporter")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(defaults) == 0 {
		defaults = DefaultStartingStats()
	}
	return &Factory{
		lib:      lib,
		src:      src,
		reporter: reporter,
		logger:   logger,
		defaults: defaults.Clone(),
	}
}

// SetTableSource attaches the fetcher used by the reload hooks.
func (f *Factory) SetTableSource(ts TableSource) {
	f.tables = ts
}

// CreateEntity assembles a new hero for the given class and
// specialization. level <= 0 is normalized to 1; an empty bloodlineID
// selects a bloodline at random (or none if the table is empty).
//
// On an unknown class or unresolvable "{classID}_{specID}" key, the
// failure is reported exactly once with context "createEntity" and nil
// is returned; partially built heroes never escape.
//
// Postcondition: a non-nil result is fully populated and its ordinal is
// strictly greater than that of every hero previously returned by this
// factory.
func (f *Factory) CreateEntity(classID, specID string, level int, bloodlineID string) *Hero {
	h, err := f.create(classID, specID, level, bloodlineID)
	if err != nil {
		f.reporter.Report(err, "createEntity")
		return nil
	}
	f.logger.Debug("created hero",
		zap.String("id", h.ID),
		zap.String("class", h.ClassID),
		zap.String("spec", h.SpecID),
	)
	return h
}

func (f *Factory) create(classID, specID string, level int, bloodlineID string) (*Hero, error) {
	if level <= 0 {
		level = 1
	}

	class, ok := f.lib.Class(classID)
	if !ok {
		return nil, &ConfigNotFoundError{Table: "classes", Key: classID}
	}
	specKey := classID + "_" + specID
	spec, ok := f.lib.Specialization(specKey)
	if !ok {
		return nil, &ConfigNotFoundError{Table: "specializations", Key: specKey}
	}

	bloodline := SelectBloodline(f.lib, f.src, bloodlineID)
	base := ComposeStats(f.defaults, bloodline, spec)

	// All lookups have succeeded; the ordinal is consumed only now so
	// a failed call never leaves a gap in the sequence.
	id := f.allocateID()

	var ref *BloodlineRef
	if bloodline != nil {
		ref = &BloodlineRef{ID: bloodline.ID, Name: bloodline.Name}
	}

	abilities := make([]string, 0, len(class.CoreAbilities)+len(spec.Abilities))
	abilities = append(abilities, class.CoreAbilities...)
	abilities = append(abilities, spec.Abilities...)

	schema, _ := f.lib.TalentTrees(classID)
	current, maximum := resourcePool(class.Resource, base)

	return &Hero{
		ID:              id,
		Name:            GenerateName(f.src),
		ClassID:         classID,
		SpecID:          specKey,
		Bloodline:       ref,
		Role:            spec.Role,
		Level:           level,
		Experience:      0,
		BaseStats:       base,
		EquipmentSlots:  newEquipmentSkeleton(),
		TalentTree:      buildTalentTree(schema),
		Abilities:       abilities,
		CurrentStats:    base.Clone(),
		ResourceType:    class.Resource,
		CurrentResource: current,
		MaxResource:     maximum,
	}, nil
}

// allocateID advances the counter and returns the next "hero_{n}" id.
func (f *Factory) allocateID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ordinal++
	return fmt.Sprintf("hero_%d", f.ordinal)
}

// buildTalentTree copies the class talent schema with all points
// zeroed. A nil schema (class has no configured trees) yields an empty
// map.
func buildTalentTree(schema *ruleset.ClassTalents) TalentTree {
	tree := make(TalentTree)
	if schema == nil {
		return tree
	}
	for treeID, t := range schema.Trees {
		nodes := make(map[string]TalentRank, len(t.Talents))
		for talentID, talent := range t.Talents {
			nodes[talentID] = TalentRank{Points: 0, MaxPoints: talent.MaxPoints}
		}
		tree[treeID] = nodes
	}
	return tree
}

// resourcePool derives the resource pool for a resource kind. Mana
// scales with intellect (defaulting to 10 when the stat is absent);
// every other kind is a flat 100. Rage starts empty, the rest start
// full.
func resourcePool(kind ruleset.ResourceKind, stats StatBlock) (current, maximum int) {
	maximum = 100
	if kind == ruleset.ResourceMana {
		intellect, ok := stats[StatIntellect]
		if !ok {
			intellect = 10
		}
		maximum = intellect * 15
	}
	if kind == ruleset.ResourceRage {
		return 0, maximum
	}
	return maximum, maximum
}

// ClassesForRole returns the ids of every class with at least one
// specialization of the given role. Classes are visited in sorted id
// order and appear at most once.
func (f *Factory) ClassesForRole(role ruleset.Role) []string {
	var out []string
	for _, classID := range f.lib.ClassIDs() {
		class, ok := f.lib.Class(classID)
		if !ok {
			continue
		}
		for _, suffix := range class.Specializations {
			spec, ok := f.lib.Specialization(classID + "_" + suffix)
			if ok && spec.Role == role {
				out = append(out, classID)
				break
			}
		}
	}
	return out
}

// SpecializationsForClass returns a copy of the class's specialization
// suffix list, or an empty slice for an unknown class.
func (f *Factory) SpecializationsForClass(classID string) []string {
	class, ok := f.lib.Class(classID)
	if !ok {
		return []string{}
	}
	out := make([]string, len(class.Specializations))
	copy(out, class.Specializations)
	return out
}

// ReloadClassTable refetches the class table and swaps it into the
// library. On fetch failure the error is reported with context
// "reloadClassTable" and the previous table stays in effect. Created
// heroes and the ordinal counter are never disturbed.
//
// Idempotent: reloading identical content is a no-op in effect.
func (f *Factory) ReloadClassTable() error {
	if f.tables == nil {
		return nil
	}
	classes, err := f.tables.FetchClasses()
	if err != nil {
		f.reporter.Report(err, "reloadClassTable")
		return fmt.Errorf("reloading class table: %w", err)
	}
	f.lib.SetClasses(classes)
	return nil
}

// ReloadSpecializationTable refetches the specialization table; same
// contract as ReloadClassTable with context "reloadSpecializationTable".
func (f *Factory) ReloadSpecializationTable() error {
	if f.tables == nil {
		return nil
	}
	specs, err := f.tables.FetchSpecializations()
	if err != nil {
		f.reporter.Report(err, "reloadSpecializationTable")
		return fmt.Errorf("reloading specialization table: %w", err)
	}
	f.lib.SetSpecializations(specs)
	return nil
}
