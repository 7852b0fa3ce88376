package ruleset

// DirSource fetches class and specialization tables from content
// directories on every call. It backs the factory's hot-reload hooks.
type DirSource struct {
	ClassesDir string
	SpecsDir   string
}

// FetchClasses loads the class table from ClassesDir.
func (d DirSource) FetchClasses() ([]*Class, error) {
	return LoadClasses(d.ClassesDir)
}

// FetchSpecializations loads the specialization table from SpecsDir.
func (d DirSource) FetchSpecializations() ([]*Specialization, error) {
	return LoadSpecializations(d.SpecsDir)
}
