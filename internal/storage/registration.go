package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// RegistrationStorage writes one templated line per testcase id into the
// generated harness file, e.g. "procontest::testcase!(id: t1);".
type RegistrationStorage struct {
	path     string
	template string
}

// NewRegistrationStorage returns a Storage backed by the file at path
func NewRegistrationStorage(path, template string) *RegistrationStorage {
	return &RegistrationStorage{path: path, template: template}
}

// Path returns the registration file path
func (s *RegistrationStorage) Path() string {
	return s.path
}

// Render returns the file content for ids: one newline-terminated line each.
func (s *RegistrationStorage) Render(ids []string) []byte {
	var buf bytes.Buffer
	for _, id := range ids {
		buf.WriteString(strings.ReplaceAll(s.template, Placeholder, id))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save regenerates the registration file from ids
func (s *RegistrationStorage) Save(ids []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create registration dir: %w", err)
	}
	if err := os.WriteFile(s.path, s.Render(ids), 0644); err != nil {
		return fmt.Errorf("write registration file: %w", err)
	}
	return nil
}

// Load parses the ids back out of the registration file. Lines that do not
// match the template are skipped.
func (s *RegistrationStorage) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read registration file: %w", err)
	}

	prefix, suffix, _ := strings.Cut(s.template, Placeholder)
	prefix = strings.TrimLeft(prefix, " \t")
	suffix = strings.TrimRight(suffix, " \t")

	var ids []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		rest, ok := strings.CutPrefix(line, prefix)
		if !ok {
			continue
		}
		id, ok := strings.CutSuffix(rest, suffix)
		if !ok || id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse registration file: %w", err)
	}
	return ids, nil
}
