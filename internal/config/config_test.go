package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetTestsDir(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   &Config{ProjectPath: ".", TestsDir: "tests"},
			expected: "tests",
		},
		{
			name:     "project path",
			config:   &Config{ProjectPath: "/project", TestsDir: "tests"},
			expected: "/project/tests",
		},
		{
			name:     "absolute tests dir",
			config:   &Config{ProjectPath: "/project", TestsDir: "/absolute/path"},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestsDir()
			if result != filepath.FromSlash(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.GetRegistrationPath() != filepath.Join("tests", "sample_case.rs") {
		t.Errorf("unexpected registration path %s", cfg.GetRegistrationPath())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Layers(t *testing.T) {
	dir := t.TempDir()

	yamlContent := "tests_dir: samples\ngenerator: git\ntemplate_branch: main\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	envContent := "PROCON_TEMPLATE_BRANCH=from-env-file\nPROCON_TEMPLATE_URL=https://example.com/tpl\n"
	if err := os.WriteFile(filepath.Join(dir, EnvFileName), []byte(envContent), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv(EnvTemplateURL, "https://example.com/process")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetTestsDir() != filepath.Join(dir, "samples") {
		t.Errorf("tests dir from yaml not applied: %s", cfg.GetTestsDir())
	}
	if cfg.Generator != GeneratorGit {
		t.Errorf("expected generator %s, got %s", GeneratorGit, cfg.Generator)
	}
	if cfg.TemplateBranch != "from-env-file" {
		t.Errorf("env file should override yaml, got %s", cfg.TemplateBranch)
	}
	if cfg.TemplateURL != "https://example.com/process" {
		t.Errorf("process env should override env file, got %s", cfg.TemplateURL)
	}
	if cfg.RegistrationTemplate != DefaultRegistrationTemplate {
		t.Errorf("unset values should keep defaults, got %s", cfg.RegistrationTemplate)
	}
}

func TestLoad_MissingFiles(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TestsDir != DefaultTestsDir {
		t.Errorf("expected default tests dir, got %s", cfg.TestsDir)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("tests_dir: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("unknown generator", func(t *testing.T) {
		cfg := New()
		cfg.Generator = "make"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unknown generator")
		}
	})

	t.Run("template without placeholder", func(t *testing.T) {
		cfg := New()
		cfg.RegistrationTemplate = "testcase!();"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for template without $id")
		}
	})
}

func TestConfig_ApplyFlags(t *testing.T) {
	cfg := New()
	err := cfg.ApplyFlags(Flags{Generator: GeneratorGit, Branch: "en", Force: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Generator != GeneratorGit || cfg.TemplateBranch != "en" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.TemplateURL != DefaultTemplateURL {
		t.Errorf("empty flag should keep template url, got %s", cfg.TemplateURL)
	}
	if !cfg.Flags.Force {
		t.Error("expected Flags to be stored")
	}
}
