package hero

import "fmt"

// ConfigNotFoundError reports a lookup miss against a content table
// that aborts the whole creation call. It never escapes the factory
// boundary; CreateEntity converts it into a reported failure and a nil
// hero.
type ConfigNotFoundError struct {
	Table string // table name, e.g. "classes"
	Key   string // missing identifier
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("%s: no definition for %q", e.Table, e.Key)
}
