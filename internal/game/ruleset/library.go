package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Library is the read-side registry over the four loaded content
// tables. Lookups are cheap map reads; the Set methods swap an entire
// table reference, which is how hot reload replaces content without
// disturbing concurrent readers.
//
// All methods are safe for concurrent use.
type Library struct {
	mu         sync.RWMutex
	classes    map[string]*Class
	specs      map[string]*Specialization
	bloodlines map[string]*Bloodline
	talents    map[string]*ClassTalents
}

// NewLibrary returns an empty Library.
//
// Postcondition: Returns a non-nil *Library; every lookup misses until
// tables are set.
func NewLibrary() *Library {
	return &Library{
		classes:    make(map[string]*Class),
		specs:      make(map[string]*Specialization),
		bloodlines: make(map[string]*Bloodline),
		talents:    make(map[string]*ClassTalents),
	}
}

// SetClasses replaces the class table with the given definitions.
//
// Postcondition: every class is retrievable by its ID; if two classes
// share an ID, the last one wins.
func (l *Library) SetClasses(classes []*Class) {
	table := make(map[string]*Class, len(classes))
	for _, c := range classes {
		table[c.ID] = c
	}
	l.mu.Lock()
	l.classes = table
	l.mu.Unlock()
}

// SetSpecializations replaces the specialization table.
//
// Postcondition: every specialization is retrievable by its composite
// "{classID}_{spec}" ID; duplicate IDs resolve to the last definition.
func (l *Library) SetSpecializations(specs []*Specialization) {
	table := make(map[string]*Specialization, len(specs))
	for _, s := range specs {
		table[s.ID] = s
	}
	l.mu.Lock()
	l.specs = table
	l.mu.Unlock()
}

// SetBloodlines replaces the bloodline table. A nil table is treated as
// empty.
func (l *Library) SetBloodlines(table map[string]*Bloodline) {
	if table == nil {
		table = make(map[string]*Bloodline)
	}
	l.mu.Lock()
	l.bloodlines = table
	l.mu.Unlock()
}

// SetTalentTrees replaces the talent table. A nil table is treated as
// empty.
func (l *Library) SetTalentTrees(table map[string]*ClassTalents) {
	if table == nil {
		table = make(map[string]*ClassTalents)
	}
	l.mu.Lock()
	l.talents = table
	l.mu.Unlock()
}

// Class returns the class definition for the given ID, if present.
func (l *Library) Class(id string) (*Class, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.classes[id]
	return c, ok
}

// Specialization returns the specialization for the given composite
// key, if present.
func (l *Library) Specialization(key string) (*Specialization, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.specs[key]
	return s, ok
}

// Bloodline returns the bloodline for the given ID, if present.
func (l *Library) Bloodline(id string) (*Bloodline, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.bloodlines[id]
	return b, ok
}

// TalentTrees returns the talent schema for the given class ID, if
// present. A class with no configured trees is an expected miss, not an
// error.
func (l *Library) TalentTrees(classID string) (*ClassTalents, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.talents[classID]
	return t, ok
}

// ClassIDs returns all class identifiers in sorted order.
func (l *Library) ClassIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.classes))
	for id := range l.classes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BloodlineIDs returns all bloodline identifiers in sorted order.
// Random selection indexes into this slice so that an injected
// deterministic Source yields a deterministic pick.
func (l *Library) BloodlineIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.bloodlines))
	for id := range l.bloodlines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
