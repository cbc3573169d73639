package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// InputSuffix is appended to a testcase id to form its input file name
	InputSuffix = "_in.txt"
	// OutputSuffix is appended to a testcase id to form its output file name
	OutputSuffix = "_out.txt"
	// DefaultIDPrefix is the prefix of every canonical testcase id
	DefaultIDPrefix = "t"
)

// Testcase represents a sample input/output pair stored in the tests directory
type Testcase struct {
	ID         string // Testcase id, e.g. "t3" or "custom"
	InputPath  string // Path to <id>_in.txt
	OutputPath string // Path to <id>_out.txt
	HasInput   bool   // Whether the input file exists
	HasOutput  bool   // Whether the output file exists
}

// Complete reports whether both files of the pair exist
func (t Testcase) Complete() bool {
	return t.HasInput && t.HasOutput
}

// DefaultID returns the canonical id for the given index.
func DefaultID(index int) string {
	return DefaultIDPrefix + strconv.Itoa(index)
}

// IndexOf returns the index encoded in a canonical id. Only ids that DefaultID
// would produce are recognized, so "t01" and "t-1" are freeform.
func IndexOf(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, DefaultIDPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || DefaultID(n) != id {
		return 0, false
	}
	return n, true
}

// InputFileName returns the input file name for id
func InputFileName(id string) string {
	return id + InputSuffix
}

// OutputFileName returns the output file name for id
func OutputFileName(id string) string {
	return id + OutputSuffix
}

// InputPath returns the input file path for id inside dir
func InputPath(dir, id string) string {
	return filepath.Join(dir, InputFileName(id))
}

// OutputPath returns the output file path for id inside dir
func OutputPath(dir, id string) string {
	return filepath.Join(dir, OutputFileName(id))
}

// IDFromInputFile extracts the id from an input file name.
// It returns false for anything that is not "<id>_in.txt".
func IDFromInputFile(name string) (string, bool) {
	id, ok := strings.CutSuffix(name, InputSuffix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ValidID reports whether id can be used as a file name component.
func ValidID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
