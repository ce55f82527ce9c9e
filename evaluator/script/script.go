// Package script implements the default embedded-code scripting language
// used to evaluate `embeddedCode` nodes (spec.md §4.4).
//
// A snippet of embedded code is lexed, parsed to an AST, compiled to a
// small bytecode program and executed on a stack machine - the same
// pipeline the original filter-language used, repurposed here to expose
// the five instruction-emitting primitives a VN script is allowed to call
// (fusion, goto, call, choice, adv_end) as ordinary builtin functions.
package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-librian/librian/evaluator/script/code"
	"github.com/go-librian/librian/evaluator/script/lexer"
	"github.com/go-librian/librian/evaluator/script/object"
	"github.com/go-librian/librian/evaluator/script/parser"
	"github.com/go-librian/librian/evaluator/script/scriptenv"
	"github.com/go-librian/librian/evaluator/script/scriptvm"
)

// Script is a single compiled embedded-code snippet, ready to run.
//
// Each embedded-code instruction gets its own Script: constants and
// bytecode offsets are not shared across snippets, so there is no
// benefit to caching one across calls.
type Script struct {
	// Source holds the raw text of the snippet.
	Source string

	// environment holds the builtins registered for this run, plus
	// any variables the snippet sets along the way.
	environment *scriptenv.Environment

	// constants compiled from the snippet.
	constants []object.Object

	// instructions is the bytecode generated from the snippet.
	instructions code.Instructions

	// Debug enables per-opcode tracing of Run to Trace, following the
	// teacher's Evaluator.Debug/EVAL_FILTER_DEBUG pattern (eval.go).
	// Defaults from the LIBRIAN_DEBUG environment variable.
	Debug bool

	// Trace is where opcode tracing is written when Debug is set.
	// Defaults to os.Stderr.
	Trace io.Writer
}

// New parses and compiles source into a runnable Script.
//
// Builtins must be registered on the returned Script's Environment
// (via AddFunction) before calling Run.
func New(source string) (*Script, error) {
	s := &Script{
		Source:      source,
		environment: scriptenv.New(),
		Debug:       os.Getenv("LIBRIAN_DEBUG") != "",
		Trace:       os.Stderr,
	}

	l := lexer.New(source)
	p := parser.New(l)

	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		return nil, fmt.Errorf("errors parsing embedded code:\n%s",
			strings.Join(p.Errors(), "\n"))
	}

	if err := s.compile(program); err != nil {
		return nil, err
	}

	return s, nil
}

// AddFunction exposes a golang function from the host to the script.
func (s *Script) AddFunction(name string, fn interface{}) {
	s.environment.SetFunction(name, fn)
}

// SetVariable adds, or updates, a variable visible to the script.
func (s *Script) SetVariable(name string, value object.Object) {
	s.environment.Set(name, value)
}

// Disassemble renders the compiled constants and bytecode in a
// human-readable form, for debugging tools such as cmd/librian's
// bytecode subcommand.
func (s *Script) Disassemble() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Constants (%d):\n", len(s.constants))
	for i, c := range s.constants {
		fmt.Fprintf(&b, "  %4d %s %s\n", i, c.Type(), c.Inspect())
	}

	fmt.Fprintf(&b, "\nInstructions (%d bytes):\n", len(s.instructions))
	ip := 0
	for ip < len(s.instructions) {
		op := code.Opcode(s.instructions[ip])
		length := code.Length(op)

		if length == 3 {
			arg := code.ReadUint16(s.instructions[ip+1 : ip+3])
			fmt.Fprintf(&b, "  %04d %-16s %d\n", ip, code.String(op), arg)
		} else {
			fmt.Fprintf(&b, "  %04d %-16s\n", ip, code.String(op))
		}

		ip += length
	}

	return b.String()
}

// Run executes the compiled snippet against the given host object and
// returns the value the snippet finished with.
func (s *Script) Run(obj interface{}) (object.Object, error) {
	machine := scriptvm.New(s.constants, s.instructions, s.environment)
	machine.Debug = s.Debug
	machine.Trace = s.Trace

	out, err := machine.Run(obj)
	if err != nil {
		return &object.Null{}, err
	}
	return out, nil
}
