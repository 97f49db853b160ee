package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// versionCmd prints the compiler/VM version.
type versionCmd struct{}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "print the tau compiler version" }
func (*versionCmd) Usage() string {
	return `version:
  Print the tau compiler version.
`
}

func (*versionCmd) SetFlags(*flag.FlagSet) {}

func (*versionCmd) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	fmt.Printf("tau %s\n", version)
	return subcommands.ExitSuccess
}
