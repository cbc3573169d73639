package cli

import "procon/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	Verbose     bool
	Force       bool
	InputFile   string
	OutputFile  string
	NameFilter  string
	Watch       bool
	Generator   string
	Template    string
	Branch      string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Verbose:    f.Verbose,
		Force:      f.Force,
		InputFile:  f.InputFile,
		OutputFile: f.OutputFile,
		NameFilter: f.NameFilter,
		Watch:      f.Watch,
		Generator:  f.Generator,
		Template:   f.Template,
		Branch:     f.Branch,
	}
}
