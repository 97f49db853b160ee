package main

import (
	"context"
	"flag"
	"os/user"

	"github.com/google/subcommands"

	"github.com/taulang/tau/repl"
)

// replCmd starts the interactive bubbletea-based REPL.
type replCmd struct {
	debug   bool
	noColor bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start the interactive tau REPL" }
func (*replCmd) Usage() string {
	return `repl:
  Start the interactive read-eval-print loop.
`
}

func (r *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.debug, "debug", false, "enable verbose timing and type output")
	f.BoolVar(&r.noColor, "no-color", false, "disable syntax highlighting and colored output")
}

func (r *replCmd) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	username := "unknown"
	if usr, err := user.Current(); err == nil {
		username = usr.Username
	}

	repl.Start(username, repl.Options{Debug: r.debug, NoColor: r.noColor})
	return subcommands.ExitSuccess
}
