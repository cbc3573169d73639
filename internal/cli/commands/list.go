package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"procon/internal/config"
	"procon/internal/discovery"
	"procon/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	deps   *Deps
	filter *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, deps *Deps) *ListCommand {
	return &ListCommand{
		config: cfg,
		deps:   deps,
		filter: discovery.NewFilter(),
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	store := lc.deps.Store()

	cases, err := store.List()
	if err != nil {
		return fmt.Errorf("list testcases: %w", err)
	}
	registered, err := store.Registered()
	if err != nil {
		return fmt.Errorf("list testcases: %w", err)
	}

	// Filter cases by id
	if pattern := lc.config.Flags.NameFilter; pattern != "" {
		ids := make([]string, 0, len(cases))
		for _, tc := range cases {
			ids = append(ids, tc.ID)
		}
		keep := make(map[string]bool)
		for _, id := range lc.filter.FilterByName(ids, pattern) {
			keep[id] = true
		}
		filtered := make([]domain.Testcase, 0, len(keep))
		for _, tc := range cases {
			if keep[tc.ID] {
				filtered = append(filtered, tc)
			}
		}
		cases = filtered
		registered = lc.filter.FilterByName(registered, pattern)
	}

	formatter := lc.deps.Formatter()
	formatter.SetOutput(cmd.OutOrStdout())
	formatter.PrintCaseList(cases, registered)
	return nil
}
