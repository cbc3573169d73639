package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Testcase layout
	TestsDir             string
	RegistrationFile     string
	RegistrationTemplate string

	// Scaffolding settings
	TemplateURL    string
	TemplateBranch string
	Generator      string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Verbose    bool
	Force      bool
	InputFile  string
	OutputFile string
	NameFilter string
	Watch      bool
	Generator  string
	Template   string
	Branch     string
}

// fileConfig mirrors procon.yaml. Empty fields leave defaults untouched.
type fileConfig struct {
	TestsDir             string `yaml:"tests_dir"`
	RegistrationFile     string `yaml:"registration_file"`
	RegistrationTemplate string `yaml:"registration_template"`
	TemplateURL          string `yaml:"template_url"`
	TemplateBranch       string `yaml:"template_branch"`
	Generator            string `yaml:"generator"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:          DefaultProjectPath,
		TestsDir:             DefaultTestsDir,
		RegistrationFile:     DefaultRegistrationFile,
		RegistrationTemplate: DefaultRegistrationTemplate,
		TemplateURL:          DefaultTemplateURL,
		TemplateBranch:       DefaultTemplateBranch,
		Generator:            DefaultGenerator,
	}
}

// Load creates a config for the project at projectPath. Values are layered:
// defaults, then procon.yaml, then the project's .env file, then the process
// environment.
func Load(projectPath string) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}

	if err := cfg.loadFile(filepath.Join(cfg.ProjectPath, ConfigFileName)); err != nil {
		return nil, err
	}

	env, err := readEnvFile(filepath.Join(cfg.ProjectPath, EnvFileName))
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIfNotEmpty(&c.TestsDir, fc.TestsDir)
	setIfNotEmpty(&c.RegistrationFile, fc.RegistrationFile)
	setIfNotEmpty(&c.RegistrationTemplate, fc.RegistrationTemplate)
	setIfNotEmpty(&c.TemplateURL, fc.TemplateURL)
	setIfNotEmpty(&c.TemplateBranch, fc.TemplateBranch)
	setIfNotEmpty(&c.Generator, fc.Generator)
	return nil
}

// readEnvFile reads KEY=VALUE pairs from path. A missing file is not an error.
func readEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return env, nil
}

// applyEnv overlays the env file values, with the process environment taking precedence
func (c *Config) applyEnv(env map[string]string) {
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return env[key]
	}

	setIfNotEmpty(&c.TestsDir, lookup(EnvTestsDir))
	setIfNotEmpty(&c.RegistrationFile, lookup(EnvRegistrationFile))
	setIfNotEmpty(&c.RegistrationTemplate, lookup(EnvRegistrationTemplate))
	setIfNotEmpty(&c.TemplateURL, lookup(EnvTemplateURL))
	setIfNotEmpty(&c.TemplateBranch, lookup(EnvTemplateBranch))
	setIfNotEmpty(&c.Generator, lookup(EnvGenerator))
}

// ApplyFlags stores parsed flags and lets them override file settings
func (c *Config) ApplyFlags(flags Flags) error {
	c.Flags = flags
	setIfNotEmpty(&c.Generator, flags.Generator)
	setIfNotEmpty(&c.TemplateURL, flags.Template)
	setIfNotEmpty(&c.TemplateBranch, flags.Branch)
	return c.Validate()
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.Generator {
	case GeneratorCargo, GeneratorGit:
	default:
		return fmt.Errorf("unknown generator %q (want %q or %q)", c.Generator, GeneratorCargo, GeneratorGit)
	}
	if !strings.Contains(c.RegistrationTemplate, "$id") {
		return fmt.Errorf("registration template %q does not contain $id", c.RegistrationTemplate)
	}
	if strings.Contains(c.RegistrationTemplate, "\n") {
		return fmt.Errorf("registration template must be a single line")
	}
	return nil
}

// GetTestsDir returns the directory holding the sample cases
func (c *Config) GetTestsDir() string {
	return c.resolve(c.TestsDir)
}

// GetRegistrationPath returns the path of the generated registration file
func (c *Config) GetRegistrationPath() string {
	return c.resolve(c.RegistrationFile)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectPath, p)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
