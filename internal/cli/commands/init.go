package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"procon/internal/config"
	"procon/internal/ui"
)

// InitCommand handles the init command
type InitCommand struct {
	config *config.Config
	deps   *Deps
}

// NewInitCommand creates a new InitCommand
func NewInitCommand(cfg *config.Config, deps *Deps) *InitCommand {
	return &InitCommand{
		config: cfg,
		deps:   deps,
	}
}

// Execute runs the command
func (ic *InitCommand) Execute(cmd *cobra.Command, args []string) error {
	name := args[0]

	generator, err := ic.deps.Generator()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// cargo-generate draws its own progress and may prompt, so only the
	// in-process clone gets a spinner
	if ic.config.Generator == config.GeneratorGit {
		spinner := ui.NewSpinner(fmt.Sprintf("Cloning %s", ic.config.TemplateURL))
		err = generator.Generate(ctx, name)
		spinner.Finish()
	} else {
		err = generator.Generate(ctx, name)
	}
	if err != nil {
		return fmt.Errorf("create project %s: %w", name, err)
	}

	color.Green("✓ Created project %s", name)
	return nil
}
