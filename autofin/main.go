package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/autofin/autofin/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs before flag parsing and exits on its own
	// when invoked by the shell.
	sub := make(map[string]*complete.Command, len(cmd.Names()))
	for _, name := range cmd.Names() {
		sub[name] = &complete.Command{Args: predict.Files("*")}
	}
	complete.Complete(path.Base(os.Args[0]), &complete.Command{Sub: sub})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
