package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"procon/internal/config"
)

// DelCaseCommand handles the delcase command
type DelCaseCommand struct {
	config *config.Config
	deps   *Deps
}

// NewDelCaseCommand creates a new DelCaseCommand
func NewDelCaseCommand(cfg *config.Config, deps *Deps) *DelCaseCommand {
	return &DelCaseCommand{
		config: cfg,
		deps:   deps,
	}
}

// Execute runs the command
func (dc *DelCaseCommand) Execute(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := dc.deps.Store().DelCase(id); err != nil {
		return fmt.Errorf("delete testcase: %w", err)
	}

	formatter := dc.deps.Formatter()
	formatter.SetOutput(cmd.OutOrStdout())
	formatter.PrintDeleted(id)
	return nil
}
