package main

import (
	"fmt"
	"os"

	"procon/internal/cli"
	"procon/internal/cli/commands"
	"procon/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "procon",
		Short:         "Competitive programming project helper",
		Long:          `Scaffold contest projects from a template and manage their sample testcases. Testcases live as <id>_in.txt / <id>_out.txt pairs and are registered in a generated Rust source file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}
