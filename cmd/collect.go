package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/autofin/autofin/collect"
	"github.com/google/subcommands"
)

// collectCmd concatenates source files into one context document.
type collectCmd struct {
	ext     string
	exclude string
	label   string
	ignore  multiFlag
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint([]string(*m)) }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func (*collectCmd) Name() string     { return "collect" }
func (*collectCmd) Synopsis() string { return "concatenate source files into one output file" }
func (*collectCmd) Usage() string {
	return `autofin collect [-ext <suffix>] [-exclude <name>] [-ignore <glob>]... <directory> <output>

  Walks the directory tree and appends every matching source file to
  the output file: its path, a separator line and its verbatim
  contents. By default Python files are collected and __init__.py is
  skipped.

Usage Examples:
$ autofin collect ./myproject sources.txt
$ autofin collect -ext .go -exclude doc.go -ignore 'vendor/**' . sources.txt
`
}

func (c *collectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ext, "ext", ".py", "Suffix of the files to collect.")
	f.StringVar(&c.exclude, "exclude", "__init__.py", "File name to skip entirely.")
	f.StringVar(&c.label, "label", "Python files", "Label used in the output header.")
	f.Var(&c.ignore, "ignore", "Glob pattern of relative paths to skip, repeatable.")
}

func (c *collectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: autofin collect <directory> <output>")
		return subcommands.ExitUsageError
	}
	dir, out := f.Arg(0), f.Arg(1)

	count, err := collect.Run(collect.Options{
		Dir:     dir,
		Out:     out,
		Ext:     c.ext,
		Exclude: c.exclude,
		Label:   c.label,
		Ignore:  c.ignore,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if count == 0 {
		fmt.Printf("No %s found in the directory %s (including subdirectories).\n", c.label, dir)
	} else {
		fmt.Printf("All %s contents have been saved to %s\n", c.label, out)
	}
	return subcommands.ExitSuccess
}
