package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"procon/internal/config"
)

// CargoGenerator runs `cargo generate` against the template repository
type CargoGenerator struct {
	config   *config.Config
	logger   *zap.Logger
	lookPath func(string) (string, error)
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// NewCargoGenerator creates a new CargoGenerator
func NewCargoGenerator(cfg *config.Config, logger *zap.Logger) *CargoGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CargoGenerator{
		config:   cfg,
		logger:   logger,
		lookPath: exec.LookPath,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// Args returns the cargo arguments used to generate project name
func (g *CargoGenerator) Args(name string) []string {
	args := []string{"generate", "-n", name, "--git", g.config.TemplateURL}
	if g.config.TemplateBranch != "" {
		args = append(args, "--branch", g.config.TemplateBranch)
	}
	return args
}

// Generate checks that cargo and cargo-generate are installed, then runs
// cargo-generate in the project directory. Success is its exit status.
func (g *CargoGenerator) Generate(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if _, err := g.lookPath("cargo"); err != nil {
		return fmt.Errorf("%w: failed to find cargo, please install cargo first", ErrToolNotFound)
	}
	if _, err := g.lookPath("cargo-generate"); err != nil {
		return fmt.Errorf("%w: failed to find cargo-generate, run `cargo install cargo-generate` to install it", ErrToolNotFound)
	}

	args := g.Args(name)
	g.logger.Debug("running cargo", zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Dir = g.config.ProjectPath
	cmd.Stdin = g.stdin
	cmd.Stdout = g.stdout
	cmd.Stderr = g.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running cargo-generate failed: %w", err)
	}
	return nil
}
