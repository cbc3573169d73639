package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestsDir is the directory holding sample cases, relative to the project
	DefaultTestsDir = "tests"
	// DefaultRegistrationFile is the generated harness file, relative to the project
	DefaultRegistrationFile = "tests/sample_case.rs"
	// DefaultRegistrationTemplate is the line emitted per testcase; $id is replaced
	DefaultRegistrationTemplate = "procontest::testcase!(id: $id);"
	// DefaultTemplateURL is the repository new projects are generated from
	DefaultTemplateURL = "https://github.com/rust-lang-ja/atcoder-rust-base"
	// DefaultTemplateBranch is the branch of DefaultTemplateURL to use
	DefaultTemplateBranch = "ja"
	// DefaultGenerator is the project generator backend
	DefaultGenerator = GeneratorCargo
	// ConfigFileName is the optional per-project configuration file
	ConfigFileName = "procon.yaml"
	// EnvFileName is the optional per-project environment file
	EnvFileName = ".env"
)

const (
	// GeneratorCargo runs `cargo generate` as a subprocess
	GeneratorCargo = "cargo"
	// GeneratorGit clones the template repository directly
	GeneratorGit = "git"
)

// Environment variables that override file configuration
const (
	EnvTestsDir             = "PROCON_TESTS_DIR"
	EnvRegistrationFile     = "PROCON_REGISTRATION_FILE"
	EnvRegistrationTemplate = "PROCON_REGISTRATION_TEMPLATE"
	EnvTemplateURL          = "PROCON_TEMPLATE_URL"
	EnvTemplateBranch       = "PROCON_TEMPLATE_BRANCH"
	EnvGenerator            = "PROCON_GENERATOR"
)
