// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds global common flags across all commands.
type Flags struct {
	Output  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	flags.register(cmd.PersistentFlags())
	return flags
}

// register binds the flag fields to a flag set.
func (f *Flags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Output, "output", "o", "",
		"Output format: table, json, yaml, markdown")
	fs.StringVar(&f.Output, "format", "", "")
	_ = fs.MarkHidden("format") // Hidden but functional

	fs.BoolVarP(&f.Quiet, "quiet", "q", false,
		"Minimal output")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false,
		"Verbose output")
	fs.BoolVar(&f.NoColor, "no-color", false,
		"Disable colored output")
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) (*Flags, error) {
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}
	return parse(root.PersistentFlags())
}

func parse(fs *pflag.FlagSet) (*Flags, error) {
	output, _ := fs.GetString("output")
	quiet, _ := fs.GetBool("quiet")
	verbose, _ := fs.GetBool("verbose")
	noColor, _ := fs.GetBool("no-color")

	return &Flags{
		Output:  output,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}, nil
}
