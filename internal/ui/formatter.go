package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"procon/internal/config"
	"procon/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    os.Stdout,
	}
}

// SetOutput redirects the formatter's output
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// PrintCaseList prints the testcases as a tree. Cases missing a file or
// missing from the registration file are flagged.
func (f *Formatter) PrintCaseList(cases []domain.Testcase, registered []string) {
	if len(cases) == 0 {
		fmt.Fprintln(f.out, color.YellowString("No testcases found"))
		return
	}

	isRegistered := make(map[string]bool, len(registered))
	for _, id := range registered {
		isRegistered[id] = true
	}

	fmt.Fprintln(f.out, color.GreenString("Found %d testcase(s) in %s:", len(cases), f.relPath(f.config.GetTestsDir())))

	for i, tc := range cases {
		connector := "├── "
		if i == len(cases)-1 {
			connector = "└── "
		}

		var markers []string
		if !tc.HasOutput {
			markers = append(markers, color.RedString("[missing output]"))
		}
		if !isRegistered[tc.ID] {
			markers = append(markers, color.YellowString("[unregistered]"))
		}

		line := connector + color.CyanString(tc.ID)
		if len(markers) > 0 {
			line += " " + strings.Join(markers, " ")
		}
		fmt.Fprintln(f.out, line)
	}

	if stale := staleIDs(cases, registered); len(stale) > 0 {
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, color.YellowString("Registered but missing on disk: %s (run `procon sync`)", strings.Join(stale, ", ")))
	}
}

// PrintAdded reports a newly written testcase
func (f *Formatter) PrintAdded(tc domain.Testcase) {
	fmt.Fprintln(f.out, color.GreenString("✓ Added %s", tc.ID))
	fmt.Fprintf(f.out, "  %s\n  %s\n", f.relPath(tc.InputPath), f.relPath(tc.OutputPath))
}

// PrintDeleted reports a removed testcase
func (f *Formatter) PrintDeleted(id string) {
	fmt.Fprintln(f.out, color.GreenString("✓ Deleted %s", id))
}

// PrintSynced reports a regenerated registration file
func (f *Formatter) PrintSynced(count int) {
	fmt.Fprintln(f.out, color.GreenString("✓ Registered %d testcase(s) in %s", count, f.relPath(f.config.GetRegistrationPath())))
}

// Prompt prints a prompt line for interactive input
func (f *Formatter) Prompt(label string) {
	fmt.Fprintln(f.out, color.CyanString("%s:", label))
}

// relPath returns path relative to the project for cleaner display
func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.ProjectPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

func staleIDs(cases []domain.Testcase, registered []string) []string {
	onDisk := make(map[string]bool, len(cases))
	for _, tc := range cases {
		onDisk[tc.ID] = true
	}
	var stale []string
	for _, id := range registered {
		if !onDisk[id] {
			stale = append(stale, id)
		}
	}
	return stale
}
