package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-librian/librian/compiler"
	"github.com/go-librian/librian/environment"
	"github.com/go-librian/librian/evaluator"
	"github.com/go-librian/librian/instr"
	"github.com/go-librian/librian/module"
	"github.com/go-librian/librian/vm"
	"github.com/google/subcommands"
)

// Structure for our options and state.
type runCmd struct {
	// start names the module to begin execution at.
	start string

	// debug forces step-by-step instruction tracing on, in addition
	// to the LIBRIAN_DEBUG environment variable.
	debug bool
}

//
// Glue
//
func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Drive a compiled script on the terminal." }
func (*runCmd) Usage() string {
	return `run dir:
  Run the script found in dir, a directory of "<module path>.json" files
  (see cmd/librian/nodes.go for the node shape each file holds).

Example:

  $ librian run -start main ./script

`
}

//
// Flag setup
//
func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.start, "start", "main", "The module to begin execution at.")
	f.BoolVar(&r.debug, "debug", false, "Trace each instruction step to stderr (also set via LIBRIAN_DEBUG).")
}

// jsonModuleLoader compiles every "<path>.json" file under dir into a
// *module.Module up front, keyed by its filename (minus extension).
type jsonModuleLoader struct {
	modules map[string]*module.Module
}

func loadModuleDir(dir string) (*jsonModuleLoader, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	l := &jsonModuleLoader{modules: make(map[string]*module.Module)}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		path := strings.TrimSuffix(entry.Name(), ".json")
		data, err := ioutil.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		nodes, err := decodeNodes(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", entry.Name(), err)
		}

		l.modules[path] = module.New(path, compiler.Compile(nodes, false))
	}
	return l, nil
}

func (l *jsonModuleLoader) Load(target, currentPath string) (*module.Module, error) {
	mod, ok := l.modules[target]
	if !ok {
		return nil, fmt.Errorf("no module named %q", target)
	}
	return mod, nil
}

// jsonFusionCompiler backs the embedded-code bridge's fusion()
// primitive: the "source" a script hands it is, in this reference
// host, the same JSON node-array shape a module file uses.
type jsonFusionCompiler struct{}

func (jsonFusionCompiler) Compile(source string) ([]instr.Instruction, error) {
	nodes, err := decodeNodes([]byte(source))
	if err != nil {
		return nil, err
	}
	return compiler.Compile(nodes, true), nil
}

// render prints one Output's pause point and accumulated side
// effects to stdout.
func render(out *vm.Output) {
	if out.Scene != nil {
		fmt.Printf("[scene %s %s]\n", out.Scene.SceneOperator, out.Scene.Content)
	}
	if out.RoleOperation != nil {
		fmt.Printf("[role %s %s %s]\n", out.RoleOperation.RoleName, out.RoleOperation.Operator, out.RoleOperation.Target)
	}
	if out.RoleExpression != nil {
		fmt.Printf("[expression %s: %s]\n", out.RoleExpression.Name, out.RoleExpression.Expression)
	}
	for name := range out.FunctionCallings {
		fmt.Printf("[call %s]\n", name)
	}

	switch out.PausePoint.Kind {
	case vm.PauseAside:
		fmt.Printf("(%s)\n", out.PausePoint.Aside.Aside)
	case vm.PauseRoleDialog:
		d := out.PausePoint.RoleDialog
		fmt.Printf("%s: %s\n", d.Name, d.Dialog)
	case vm.PauseInsertedImage:
		fmt.Printf("[image %s]\n", out.PausePoint.InsertedImage.InsertedImage)
	case vm.PauseOptions:
		for i, name := range out.PausePoint.OptionNames {
			fmt.Printf("  %d) %s\n", i, name)
		}
	}
}

// Run drives the VM over the module graph found in dir, from r.start,
// printing pause points and reading option choices from stdin.
func (r *runCmd) Run(dir string) {
	loader, err := loadModuleDir(dir)
	if err != nil {
		fmt.Printf("Error loading %s: %s\n", dir, err.Error())
		return
	}

	start, ok := loader.modules[r.start]
	if !ok {
		fmt.Printf("No module named %q in %s\n", r.start, dir)
		return
	}

	defaultEvaluator := evaluator.NewDefaultEvaluator()
	if r.debug {
		defaultEvaluator.Debug = true
	}

	env := environment.New(loader.Load)
	machine := vm.New(start, jsonFusionCompiler{}, env, defaultEvaluator)
	if r.debug {
		machine.Debug = true
	}

	in := bufio.NewReader(os.Stdin)
	var input *vm.Input

	for {
		out, err := machine.NextOutput(input)
		if err != nil {
			fmt.Printf("Error: %s\n", err.Error())
			return
		}
		if out == nil {
			fmt.Println("-- end of script --")
			return
		}

		render(out)
		input = nil

		if out.PausePoint.Kind == vm.PauseOptions {
			fmt.Print("> ")
			line, _ := in.ReadString('\n')
			idx, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				fmt.Printf("Not a number: %s\n", line)
				return
			}
			input = &vm.Input{OptionIndex: &idx}
		}
	}
}

// Execute is invoked if the user specifies `run` as the subcommand.
func (r *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, dir := range f.Args() {
		r.Run(dir)
	}
	return subcommands.ExitSuccess
}
