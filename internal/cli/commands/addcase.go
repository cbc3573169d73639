package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"procon/internal/config"
	"procon/internal/domain"
)

// AddCaseCommand handles the addcase command
type AddCaseCommand struct {
	config *config.Config
	deps   *Deps
}

// NewAddCaseCommand creates a new AddCaseCommand
func NewAddCaseCommand(cfg *config.Config, deps *Deps) *AddCaseCommand {
	return &AddCaseCommand{
		config: cfg,
		deps:   deps,
	}
}

// Execute runs the command
func (ac *AddCaseCommand) Execute(cmd *cobra.Command, args []string) error {
	store := ac.deps.Store()
	formatter := ac.deps.Formatter()
	formatter.SetOutput(cmd.OutOrStdout())

	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		next, err := store.NextID()
		if err != nil {
			return fmt.Errorf("allocate testcase id: %w", err)
		}
		id = next
	}

	stdin := cmd.InOrStdin()
	prompt := isTerminal(stdin)

	input, err := readSample(stdin, ac.config.Flags.InputFile, prompt, func() { formatter.Prompt("input") })
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	output, err := readSample(stdin, ac.config.Flags.OutputFile, prompt, func() { formatter.Prompt("output") })
	if err != nil {
		return fmt.Errorf("read output: %w", err)
	}

	if err := store.AddCase(id, ac.config.Flags.Force, input, output); err != nil {
		return fmt.Errorf("add testcase: %w", err)
	}

	formatter.PrintAdded(domain.Testcase{
		ID:         id,
		InputPath:  domain.InputPath(store.Dir(), id),
		OutputPath: domain.OutputPath(store.Dir(), id),
		HasInput:   true,
		HasOutput:  true,
	})
	return nil
}

// readSample reads a sample from path, or from stdin until EOF when path is empty
func readSample(stdin io.Reader, path string, prompt bool, showPrompt func()) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if prompt {
		showPrompt()
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// isTerminal reports whether r is an interactive terminal
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
