package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/taulang/tau/compiler"
	"github.com/taulang/tau/lexer"
	"github.com/taulang/tau/parser"
	"github.com/taulang/tau/vm"
)

// evalCmd compiles and runs a single tau expression passed on the command line.
type evalCmd struct{}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "evaluate a tau expression and print the result" }
func (*evalCmd) Usage() string {
	return `eval <code>:
  Compile and run a single tau expression, printing the value left on the stack.
`
}

func (*evalCmd) SetFlags(*flag.FlagSet) {}

func (*evalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "eval: missing expression")
		return subcommands.ExitUsageError
	}

	l := lexer.New(args[0])
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		printParserErrors(p.Errors())
		return subcommands.ExitFailure
	}

	comp := compiler.New()
	if err := comp.Compile(program); err != nil {
		fmt.Fprintf(os.Stderr, "compilation error: %s\n", err)
		return subcommands.ExitFailure
	}

	machine := vm.New(comp.Bytecode())
	if err := machine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vm error: %s\n", err)
		return subcommands.ExitFailure
	}

	if top := machine.LastPoppedStackItem(); top != nil {
		fmt.Println(top.Inspect())
	}

	return subcommands.ExitSuccess
}
