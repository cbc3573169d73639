package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/google/go-cmp/cmp"

	"procon/internal/config"
)

func TestNew(t *testing.T) {
	cfg := config.New()

	gen, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gen.(*CargoGenerator); !ok {
		t.Errorf("expected cargo generator by default, got %T", gen)
	}

	cfg.Generator = config.GeneratorGit
	gen, err = New(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gen.(*GitGenerator); !ok {
		t.Errorf("expected git generator, got %T", gen)
	}

	cfg.Generator = "svn"
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error for unknown generator")
	}
}

func TestCargoGenerator_Args(t *testing.T) {
	cfg := config.New()
	g := NewCargoGenerator(cfg, nil)

	want := []string{"generate", "-n", "abc123", "--git", config.DefaultTemplateURL, "--branch", "ja"}
	if diff := cmp.Diff(want, g.Args("abc123")); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}

	cfg.TemplateBranch = ""
	want = []string{"generate", "-n", "abc123", "--git", config.DefaultTemplateURL}
	if diff := cmp.Diff(want, g.Args("abc123")); diff != "" {
		t.Errorf("Args() without branch mismatch (-want +got):\n%s", diff)
	}
}

func TestCargoGenerator_MissingTools(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{name: "cargo missing", missing: "cargo"},
		{name: "cargo-generate missing", missing: "cargo-generate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewCargoGenerator(config.New(), nil)
			g.lookPath = func(file string) (string, error) {
				if file == tt.missing {
					return "", errors.New("not found")
				}
				return "/usr/bin/" + file, nil
			}

			err := g.Generate(context.Background(), "abc123")
			if !errors.Is(err, ErrToolNotFound) {
				t.Fatalf("expected ErrToolNotFound, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("error should name %s: %v", tt.missing, err)
			}
		})
	}
}

func TestGenerators_RejectInvalidName(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	for _, gen := range []Generator{NewCargoGenerator(cfg, nil), NewGitGenerator(cfg, nil)} {
		for _, name := range []string{"", "..", "a/b"} {
			if err := gen.Generate(context.Background(), name); err == nil {
				t.Errorf("%T: expected error for name %q", gen, name)
			}
		}
	}
}

// newTemplateRepo creates a local git repository usable as a clone source
func newTemplateRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init template repo: %v", err)
	}
	files := map[string]string{
		"Cargo.toml":           "[package]\nname = \"{{project-name}}\"\n",
		"src/main.rs":          "fn main() {}\n",
		"tests/sample_case.rs": "",
	}
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if err := wt.AddGlob("."); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err = wt.Commit("template", &git.CommitOptions{
		Author: &object.Signature{Name: "procon", Email: "procon@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return dir
}

func TestGitGenerator_Generate(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	cfg.TemplateURL = newTemplateRepo(t)
	cfg.TemplateBranch = ""

	g := NewGitGenerator(cfg, nil)
	g.Depth = 0

	if err := g.Generate(context.Background(), "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dest := filepath.Join(cfg.ProjectPath, "abc123")
	data, err := os.ReadFile(filepath.Join(dest, "Cargo.toml"))
	if err != nil {
		t.Fatalf("read Cargo.toml: %v", err)
	}
	if !strings.Contains(string(data), `name = "abc123"`) {
		t.Errorf("placeholder not substituted:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dest, "src", "main.rs")); err != nil {
		t.Errorf("expected template file to be cloned: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, ".git")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected .git to be removed, stat err = %v", err)
	}

	t.Run("refuses existing destination", func(t *testing.T) {
		if err := g.Generate(context.Background(), "abc123"); err == nil {
			t.Error("expected error for existing destination")
		}
	})
}
