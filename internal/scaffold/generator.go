package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"procon/internal/config"
)

// ErrToolNotFound is returned when a required executable is not on PATH
var ErrToolNotFound = errors.New("required tool not found")

// Generator creates a new contest project from the configured template
type Generator interface {
	Generate(ctx context.Context, name string) error
}

// New returns the Generator selected by cfg.Generator
func New(cfg *config.Config, logger *zap.Logger) (Generator, error) {
	switch cfg.Generator {
	case config.GeneratorCargo:
		return NewCargoGenerator(cfg, logger), nil
	case config.GeneratorGit:
		return NewGitGenerator(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	}
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid project name %q", name)
	}
	return nil
}
