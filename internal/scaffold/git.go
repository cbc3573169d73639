package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"

	"procon/internal/config"
)

// projectNamePlaceholder is the cargo-generate placeholder substituted in template files
const projectNamePlaceholder = "{{project-name}}"

// GitGenerator clones the template repository without needing cargo-generate.
// The clone's history is dropped and {{project-name}} is substituted.
type GitGenerator struct {
	config *config.Config
	logger *zap.Logger
	// Depth limits the clone history; 0 clones everything
	Depth int
}

// NewGitGenerator creates a new GitGenerator
func NewGitGenerator(cfg *config.Config, logger *zap.Logger) *GitGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitGenerator{
		config: cfg,
		logger: logger,
		Depth:  1,
	}
}

// Generate clones the template into <project>/<name>
func (g *GitGenerator) Generate(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	dest := filepath.Join(g.config.ProjectPath, name)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("destination %s already exists", dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", dest, err)
	}

	opts := &git.CloneOptions{
		URL:          g.config.TemplateURL,
		Depth:        g.Depth,
		SingleBranch: true,
	}
	if g.config.TemplateBranch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(g.config.TemplateBranch)
	}

	g.logger.Debug("cloning template",
		zap.String("url", g.config.TemplateURL),
		zap.String("branch", g.config.TemplateBranch),
		zap.String("dest", dest))

	if _, err := git.PlainCloneContext(ctx, dest, false, opts); err != nil {
		_ = os.RemoveAll(dest)
		return fmt.Errorf("clone %s: %w", g.config.TemplateURL, err)
	}

	if err := os.RemoveAll(filepath.Join(dest, git.GitDirName)); err != nil {
		return fmt.Errorf("remove template history: %w", err)
	}

	return substitutePlaceholders(dest, name)
}

// substitutePlaceholders replaces the project name placeholder in every regular file under root
func substitutePlaceholders(root, name string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !bytes.Contains(data, []byte(projectNamePlaceholder)) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		data = bytes.ReplaceAll(data, []byte(projectNamePlaceholder), []byte(name))
		return os.WriteFile(path, data, info.Mode().Perm())
	})
}
