package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"

	"github.com/go-librian/librian/evaluator/script"
	"github.com/google/subcommands"
)

type bytecodeCmd struct {
}

//
// Glue
//
func (*bytecodeCmd) Name() string     { return "bytecode" }
func (*bytecodeCmd) Synopsis() string { return "Show the bytecode for an embedded-code snippet." }
func (*bytecodeCmd) Usage() string {
	return `bytecode script1 script2 .. [scriptN]:
  Show the constants and bytecode compiled from an embedded-code snippet.
`
}

//
// Flag setup
//
func (p *bytecodeCmd) SetFlags(f *flag.FlagSet) {
}

// Run shows the bytecode for the given script.
func (p *bytecodeCmd) Run(file string) {

	//
	// Read the file contents.
	//
	dat, err := ioutil.ReadFile(file)
	if err != nil {
		fmt.Printf("Error reading file %s - %s\n", file, err.Error())
		return
	}

	s, err := script.New(string(dat))
	if err != nil {
		fmt.Printf("Error compiling %s: %s\n", file, err.Error())
		return
	}

	fmt.Print(s.Disassemble())
}

//
// Entry-point.
//
func (p *bytecodeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {

	//
	// For each file we've been passed; run it.
	//
	for _, file := range f.Args() {
		p.Run(file)
	}

	return subcommands.ExitSuccess

}
