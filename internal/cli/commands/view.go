package commands

import (
	"github.com/spf13/cobra"

	"procon/internal/config"
	"procon/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	deps   *Deps
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, deps *Deps) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		deps:   deps,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	var viewer ui.Viewer = ui.NewBrowser(vc.config, vc.deps.Store())
	return viewer.View()
}
