package discovery

import (
	"fmt"
	"os"
	"sort"

	"procon/internal/domain"
)

// Scanner scans the tests directory for sample cases
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the ids of every "<id>_in.txt" file directly inside dir,
// in natural order: canonical ids by index, then freeform ids by name.
func (s *Scanner) Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat tests path %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tests path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if id, ok := domain.IDFromInputFile(entry.Name()); ok {
			ids = append(ids, id)
		}
	}

	SortIDs(ids)
	return ids, nil
}

// SortIDs sorts ids in place in natural order
func SortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, aok := domain.IndexOf(ids[i])
		b, bok := domain.IndexOf(ids[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return ids[i] < ids[j]
		}
	})
}
