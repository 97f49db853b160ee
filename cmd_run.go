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

// runCmd compiles a tau source file and runs it on the virtual machine.
type runCmd struct {
	debug bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "compile and run a tau source file" }
func (*runCmd) Usage() string {
	return `run <file>:
  Compile a tau source file to bytecode and execute it on the VM.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.debug, "debug", false, "print the value left on top of the stack after execution")
}

func (r *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "run: missing source file")
		return subcommands.ExitUsageError
	}

	//nolint:gosec
	content, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: reading %s: %s\n", args[0], err)
		return subcommands.ExitFailure
	}

	l := lexer.New(string(content))
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

	if r.debug {
		if top := machine.LastPoppedStackItem(); top != nil {
			fmt.Println(top.Inspect())
		}
	}

	return subcommands.ExitSuccess
}

// printParserErrors prints parser errors to stderr.
func printParserErrors(errors []string) {
	fmt.Fprintln(os.Stderr, "parser errors:")
	for _, msg := range errors {
		fmt.Fprintln(os.Stderr, "\t"+msg)
	}
}
