package testcase

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"procon/internal/config"
	"procon/internal/discovery"
	"procon/internal/domain"
	"procon/internal/storage"
)

// Store manages the sample cases of a project. It keeps no state between
// calls: every operation probes the tests directory again.
type Store struct {
	dir     string
	storage storage.Storage
	scanner *discovery.Scanner
	logger  *zap.Logger
}

// NewStore creates a Store rooted at the config's tests directory
func NewStore(cfg *config.Config, st storage.Storage, scanner *discovery.Scanner, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		dir:     cfg.GetTestsDir(),
		storage: st,
		scanner: scanner,
		logger:  logger,
	}
}

// Dir returns the tests directory
func (s *Store) Dir() string {
	return s.dir
}

// NextID returns the first canonical id, counting from t1, for which neither
// file exists. The tests directory is created if needed.
func (s *Store) NextID() (string, error) {
	const op = "next id"
	if err := s.ensureDir(op); err != nil {
		return "", err
	}

	for i := 1; ; i++ {
		id := domain.DefaultID(i)
		in, out, err := s.pairExists(op, id)
		if err != nil {
			return "", err
		}
		if !in && !out {
			s.logger.Debug("allocated testcase id", zap.String("id", id))
			return id, nil
		}
	}
}

// AddCase writes input and output for id and regenerates the registration
// file. Without force an existing file is a conflict; with force existing
// files are removed first.
func (s *Store) AddCase(id string, force bool, input, output string) error {
	const op = "addcase"
	if !domain.ValidID(id) {
		return newError(op, KindInvalidID, id, nil)
	}
	if err := s.ensureDir(op); err != nil {
		return err
	}

	inPath := domain.InputPath(s.dir, id)
	outPath := domain.OutputPath(s.dir, id)

	if force {
		for _, p := range []string{inPath, outPath} {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return newError(op, KindRemove, p, err)
			}
		}
	}

	for _, p := range []string{inPath, outPath} {
		exists, err := fileExists(p)
		if err != nil {
			return newError(op, KindRead, p, err)
		}
		if exists {
			return newError(op, KindConflict, p, nil)
		}
	}

	if err := writeFile(op, inPath, input); err != nil {
		return err
	}
	if err := writeFile(op, outPath, output); err != nil {
		return err
	}
	s.logger.Debug("added testcase", zap.String("id", id), zap.Bool("force", force))

	return s.sync(op)
}

// DelCase removes both files of id. Deleting a canonical id t<k> shifts every
// following case down by one until the first index with no files, then the
// registration file is regenerated.
func (s *Store) DelCase(id string) error {
	const op = "delcase"
	if !domain.ValidID(id) {
		return newError(op, KindInvalidID, id, nil)
	}

	in, out, err := s.pairExists(op, id)
	if err != nil {
		return err
	}
	if !in && !out {
		return newError(op, KindNotFound, id, nil)
	}

	var errs []error
	for _, p := range []string{domain.InputPath(s.dir, id), domain.OutputPath(s.dir, id)} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, newError(op, KindRemove, p, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Debug("removed testcase", zap.String("id", id))

	if index, ok := domain.IndexOf(id); ok {
		if err := s.shift(op, index); err != nil {
			return err
		}
	}

	return s.sync(op)
}

// Sync regenerates the registration file from the tests directory
func (s *Store) Sync() error {
	const op = "sync"
	if err := s.ensureDir(op); err != nil {
		return err
	}
	return s.sync(op)
}

// List returns every testcase that has an input file, in natural order.
// A missing tests directory yields no testcases.
func (s *Store) List() ([]domain.Testcase, error) {
	const op = "list"
	exists, err := fileExists(s.dir)
	if err != nil {
		return nil, newError(op, KindRead, s.dir, err)
	}
	if !exists {
		return nil, nil
	}

	ids, err := s.scanner.Scan(s.dir)
	if err != nil {
		return nil, newError(op, KindRead, s.dir, err)
	}

	cases := make([]domain.Testcase, 0, len(ids))
	for _, id := range ids {
		in, out, err := s.pairExists(op, id)
		if err != nil {
			return nil, err
		}
		cases = append(cases, domain.Testcase{
			ID:         id,
			InputPath:  domain.InputPath(s.dir, id),
			OutputPath: domain.OutputPath(s.dir, id),
			HasInput:   in,
			HasOutput:  out,
		})
	}
	return cases, nil
}

// Registered returns the ids currently listed in the registration file
func (s *Store) Registered() ([]string, error) {
	ids, err := s.storage.Load()
	if err != nil {
		return nil, newError("list", KindRegistration, s.storage.Path(), err)
	}
	return ids, nil
}

// Read returns the input and output contents of id
func (s *Store) Read(id string) (string, string, error) {
	const op = "read"
	if !domain.ValidID(id) {
		return "", "", newError(op, KindInvalidID, id, nil)
	}
	in, err := os.ReadFile(domain.InputPath(s.dir, id))
	if err != nil {
		return "", "", newError(op, KindRead, domain.InputPath(s.dir, id), err)
	}
	out, err := os.ReadFile(domain.OutputPath(s.dir, id))
	if err != nil {
		return "", "", newError(op, KindRead, domain.OutputPath(s.dir, id), err)
	}
	return string(in), string(out), nil
}

func (s *Store) sync(op string) error {
	ids, err := s.scanner.Scan(s.dir)
	if err != nil {
		return newError(op, KindRegistration, s.dir, err)
	}
	if err := s.storage.Save(ids); err != nil {
		return newError(op, KindRegistration, s.storage.Path(), err)
	}
	s.logger.Debug("registration file updated", zap.String("path", s.storage.Path()), zap.Int("cases", len(ids)))
	return nil
}

func (s *Store) ensureDir(op string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return newError(op, KindCreateDir, s.dir, err)
	}
	return nil
}

func (s *Store) pairExists(op, id string) (bool, bool, error) {
	inPath := domain.InputPath(s.dir, id)
	in, err := fileExists(inPath)
	if err != nil {
		return false, false, newError(op, KindRead, inPath, err)
	}
	outPath := domain.OutputPath(s.dir, id)
	out, err := fileExists(outPath)
	if err != nil {
		return false, false, newError(op, KindRead, outPath, err)
	}
	return in, out, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func writeFile(op, path, data string) error {
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return newError(op, KindWrite, path, err)
	}
	return nil
}
