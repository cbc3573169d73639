package storage

// Storage persists the list of registered testcase ids for the test harness.
type Storage interface {
	// Save replaces the stored list with ids, in order.
	Save(ids []string) error
	// Load returns the ids currently stored. A missing file yields no ids.
	Load() ([]string, error)
	// Path returns the location of the stored list.
	Path() string
}

// Placeholder is replaced with the testcase id in a registration template
const Placeholder = "$id"
