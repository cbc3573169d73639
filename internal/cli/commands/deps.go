package commands

import (
	"go.uber.org/zap"

	"procon/internal/config"
	"procon/internal/discovery"
	"procon/internal/scaffold"
	"procon/internal/storage"
	"procon/internal/testcase"
	"procon/internal/ui"
)

// Deps builds the services shared by commands. Construction is deferred
// until the configuration has been loaded for the selected project.
type Deps struct {
	config *config.Config
	logger *zap.Logger
}

// NewDeps creates Deps over cfg with a no-op logger
func NewDeps(cfg *config.Config) *Deps {
	return &Deps{config: cfg, logger: zap.NewNop()}
}

// SetLogger replaces the logger used by new services
func (d *Deps) SetLogger(logger *zap.Logger) {
	d.logger = logger
}

// Logger returns the current logger
func (d *Deps) Logger() *zap.Logger {
	return d.logger
}

// Store returns a testcase store for the configured project
func (d *Deps) Store() *testcase.Store {
	st := storage.NewRegistrationStorage(d.config.GetRegistrationPath(), d.config.RegistrationTemplate)
	return testcase.NewStore(d.config, st, discovery.NewScanner(), d.logger)
}

// Formatter returns a stdout formatter
func (d *Deps) Formatter() *ui.Formatter {
	return ui.NewFormatter(d.config)
}

// Generator returns the configured project generator
func (d *Deps) Generator() (scaffold.Generator, error) {
	return scaffold.New(d.config, d.logger)
}
