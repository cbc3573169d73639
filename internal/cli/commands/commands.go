package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"procon/internal/cli"
	"procon/internal/config"
	"procon/internal/logging"
)

// Commands holds all CLI commands
type Commands struct {
	config  *config.Config
	deps    *Deps
	Init    *InitCommand
	AddCase *AddCaseCommand
	DelCase *DelCaseCommand
	List    *ListCommand
	Sync    *SyncCommand
	View    *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	deps := NewDeps(cfg)

	return &Commands{
		config:  cfg,
		deps:    deps,
		Init:    NewInitCommand(cfg, deps),
		AddCase: NewAddCaseCommand(cfg, deps),
		DelCase: NewDelCaseCommand(cfg, deps),
		List:    NewListCommand(cfg, deps),
		Sync:    NewSyncCommand(cfg, deps),
		View:    NewViewCommand(cfg, deps),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.ProjectPath, "project", "C", config.DefaultProjectPath, "Project directory to operate in")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Load configuration for the selected project before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ProjectPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		*cfg = *loaded
		if err := cfg.ApplyFlags(flags.ToConfigFlags()); err != nil {
			return err
		}

		logger, err := logging.New(flags.Verbose)
		if err != nil {
			return err
		}
		c.deps.SetLogger(logger)
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = c.deps.Logger().Sync()
	}

	// Init command
	initCmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new contest project from the template",
		Long:  "Generate a new project directory from the template repository, either with cargo-generate or by cloning it directly",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Init.Execute,
	}
	addInitFlags(initCmd, flags)
	rootCmd.AddCommand(initCmd)

	// Create command, one subcommand per contest site
	createCmd := &cobra.Command{
		Use:   "create <site> <name>",
		Short: "Create a new project for a contest site",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown contest site %q (available: atcoder)", args[0])
		},
	}
	atcoderCmd := &cobra.Command{
		Use:   "atcoder <name>",
		Short: "Create a new AtCoder project from the template",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Init.Execute,
	}
	addInitFlags(atcoderCmd, flags)
	createCmd.AddCommand(atcoderCmd)
	rootCmd.AddCommand(createCmd)

	// Addcase command
	addCmd := &cobra.Command{
		Use:   "addcase [name]",
		Short: "Add a sample testcase",
		Long:  "Read a sample input and output and store them as a testcase. Without a name the next free t<N> id is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.AddCase.Execute,
	}
	addCmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Overwrite an existing testcase")
	addCmd.Flags().StringVarP(&flags.InputFile, "input", "i", "", "Read the sample input from a file instead of stdin")
	addCmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Read the sample output from a file instead of stdin")
	rootCmd.AddCommand(addCmd)

	// Delcase command
	delCmd := &cobra.Command{
		Use:   "delcase <name>",
		Short: "Delete a sample testcase",
		Long:  "Delete a testcase. Deleting t<N> renumbers the following testcases so numbering stays contiguous.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.DelCase.Execute,
	}
	rootCmd.AddCommand(delCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sample testcases",
		Long:  "List the testcases in the tests directory and flag incomplete or unregistered ones",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter testcases by name pattern (supports wildcards, e.g. 't1*' or '*edge*')")
	rootCmd.AddCommand(listCmd)

	// Sync command
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Regenerate the testcase registration file",
		Long:  "Rewrite the registration file from the testcases found in the tests directory",
		Args:  cobra.NoArgs,
		RunE:  c.Sync.Execute,
	}
	syncCmd.Flags().BoolVarP(&flags.Watch, "watch", "w", false, "Keep running and resync whenever testcases change")
	rootCmd.AddCommand(syncCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse sample testcases interactively",
		Long:  "Display the testcases in an interactive TUI where they can be inspected and deleted",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}

func addInitFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.Generator, "generator", "g", "", "Project generator to use: cargo or git")
	cmd.Flags().StringVar(&flags.Template, "template", "", "Template repository URL")
	cmd.Flags().StringVar(&flags.Branch, "branch", "", "Template repository branch")
}
