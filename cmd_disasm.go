package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/taulang/tau/compiler"
	"github.com/taulang/tau/lexer"
	"github.com/taulang/tau/object"
	"github.com/taulang/tau/parser"
)

// disasmCmd compiles a tau source file and prints its disassembled bytecode
// and constant pool without running it.
type disasmCmd struct {
	builtins bool
}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "compile a tau source file and print its bytecode" }
func (*disasmCmd) Usage() string {
	return `disasm <file>:
  Compile a tau source file and print the disassembled instruction stream
  and constant pool, without running it.

disasm -builtins:
  Print the registered builtin name/index table instead.
`
}

func (d *disasmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&d.builtins, "builtins", false, "list the registered builtin name/index table instead of compiling a file")
}

func (d *disasmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if d.builtins {
		for _, def := range object.Builtins {
			fmt.Printf("BUILTIN %d %s\n", object.GetBuiltinByName(def.Name).Index, def.Name)
		}
		return subcommands.ExitSuccess
	}

	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "disasm: missing source file")
		return subcommands.ExitUsageError
	}

	//nolint:gosec
	content, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "disasm: reading %s: %s\n", args[0], err)
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

	bc := comp.Bytecode()
	fmt.Print(bc.Instructions.String())

	for i, c := range bc.Constants {
		fmt.Printf("CONSTANT %d %T: %s\n", i, c, c.Inspect())
	}

	return subcommands.ExitSuccess
}
