package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"procon/internal/config"
	"procon/internal/watch"
)

// SyncCommand handles the sync command
type SyncCommand struct {
	config *config.Config
	deps   *Deps
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(cfg *config.Config, deps *Deps) *SyncCommand {
	return &SyncCommand{
		config: cfg,
		deps:   deps,
	}
}

// Execute runs the command
func (sc *SyncCommand) Execute(cmd *cobra.Command, args []string) error {
	store := sc.deps.Store()
	formatter := sc.deps.Formatter()
	formatter.SetOutput(cmd.OutOrStdout())

	if err := store.Sync(); err != nil {
		return fmt.Errorf("sync registration file: %w", err)
	}
	cases, err := store.List()
	if err != nil {
		return fmt.Errorf("sync registration file: %w", err)
	}
	formatter.PrintSynced(len(cases))

	if !sc.config.Flags.Watch {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := watch.New(store.Dir(), store, sc.deps.Logger())
	if err != nil {
		return err
	}
	w.OnSync(func(err error) {
		if err != nil {
			color.Red("✗ %v", err)
			return
		}
		cases, err := store.List()
		if err != nil {
			color.Red("✗ %v", err)
			return
		}
		formatter.PrintSynced(len(cases))
	})

	color.Cyan("Watching %s for changes, press Ctrl+C to stop", store.Dir())
	return w.Run(ctx)
}
