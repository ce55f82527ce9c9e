package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/go-librian/librian/environment"
	"github.com/go-librian/librian/evaluator"
	"github.com/go-librian/librian/instr"
	"github.com/go-librian/librian/module"
	"github.com/go-librian/librian/node"
)

// Compiler compiles host script source - the text a script's
// embedded-code `fusion(source)` primitive is handed - into
// instructions. Producing that source's Nodes is the external
// parser's job (spec §6, out of core scope); Compiler is the seam a
// host plugs its parser-plus-compiler.Compile pipeline into.
type Compiler interface {
	Compile(source string) ([]instr.Instruction, error)
}

// VM steps a compiled script one Output at a time (spec §4.3). It is
// not safe for concurrent use: the host must serialise calls to
// NextOutput.
type VM struct {
	compiler  Compiler
	env       environment.Environment
	evaluator evaluator.Evaluator

	frames  []*Frame
	pending *instr.Choice

	// Debug enables step-by-step instruction tracing to Trace,
	// following the teacher's Evaluator.Debug/EVAL_FILTER_DEBUG
	// pattern (eval.go). Defaults from the LIBRIAN_DEBUG environment
	// variable; a host can also flip it directly or wire a CLI flag
	// to it.
	Debug bool

	// Trace is where instruction tracing is written when Debug is
	// set. Defaults to os.Stderr so it doesn't interleave with a
	// host's own rendered narration on stdout.
	Trace io.Writer
}

// New builds a VM over start, ready to run from its first
// instruction. evaluator runs embeddedCode nodes; compiler backs the
// embedded code's fusion() primitive.
func New(start *module.Module, compiler Compiler, env environment.Environment, ev evaluator.Evaluator) *VM {
	return &VM{
		compiler:  compiler,
		env:       env,
		evaluator: ev,
		frames:    []*Frame{NewFrame(start)},
		Debug:     os.Getenv("LIBRIAN_DEBUG") != "",
		Trace:     os.Stderr,
	}
}

// tracef writes a trace line when Debug is set; a no-op otherwise.
func (vm *VM) tracef(format string, args ...interface{}) {
	if !vm.Debug {
		return
	}
	fmt.Fprintf(vm.Trace, format, args...)
}

// Input is the single piece of data a host can feed into NextOutput:
// the index of the option chosen in response to a prior Options pause
// point. It is nil when no choice is pending.
type Input struct {
	OptionIndex *int
}

// NextOutput produces the next Output, or nil if the script has ended
// (the frame stack is empty). It implements spec §4.3's two phases.
func (vm *VM) NextOutput(input *Input) (*Output, error) {
	if err := vm.consumePendingChoice(input); err != nil {
		return nil, err
	}

	vm.popEndedFrames()
	if len(vm.frames) == 0 {
		return nil, nil
	}

	return vm.stepUntilPause()
}

// consumePendingChoice implements Phase I.
func (vm *VM) consumePendingChoice(input *Input) error {
	if vm.pending == nil {
		return nil
	}

	if input == nil {
		return newError(MissingInput, "a choice is pending but no input was given")
	}
	if input.OptionIndex == nil {
		return newError(NullOptionIndex, "input was given without an optionIndex")
	}
	idx := *input.OptionIndex
	if idx < 0 || idx >= len(vm.pending.Options) {
		return newErrorf(OptionIndexOutOfRange, "optionIndex %d out of range [0,%d)", idx, len(vm.pending.Options))
	}

	option := vm.pending.Options[idx]
	frame := vm.currentFrame()
	frame.Insert([]instr.Instruction{&instr.Call{Path: option.Path, Tag: option.Tag, Disposable: true}})

	vm.pending = nil
	return nil
}

// stepUntilPause implements Phase II.
func (vm *VM) stepUntilPause() (*Output, error) {
	output := newOutput()

	for {
		vm.popEndedFrames()
		if len(vm.frames) == 0 {
			if output.PausePoint == nil {
				return nil, nil
			}
			return output, nil
		}

		frame := vm.currentFrame()
		current := frame.Current()
		frame.Advance()

		if err := vm.dispatch(current, output); err != nil {
			return nil, err
		}

		if output.PausePoint != nil {
			return output, nil
		}
	}
}

func (vm *VM) dispatch(instruction instr.Instruction, output *Output) error {
	vm.tracef("[librian] module %q step %T\n", vm.currentFrame().ModulePath, instruction)

	switch typed := instruction.(type) {
	case *instr.NodeInstr:
		return vm.dispatchNode(typed, output)
	case *instr.Choice:
		names := make([]string, len(typed.Options))
		for i, opt := range typed.Options {
			names[i] = opt.Name
		}
		output.PausePoint = &PausePoint{Kind: PauseOptions, OptionNames: names}
		vm.pending = typed
		return nil
	case *instr.Call:
		return vm.doCall(typed.Path, typed.Tag)
	case *instr.Goto:
		return vm.doGoto(typed.Path, typed.Tag)
	case *instr.AdvEnd:
		vm.frames = nil
		return nil
	default:
		return newErrorf(UnknownInstruction, "unrecognised instruction %T", instruction)
	}
}

func (vm *VM) dispatchNode(ni *instr.NodeInstr, output *Output) error {
	switch n := ni.Node.(type) {
	case *node.AsideNode:
		output.PausePoint = &PausePoint{Kind: PauseAside, Aside: n}
	case *node.RoleDialogNode:
		output.PausePoint = &PausePoint{Kind: PauseRoleDialog, RoleDialog: n}
	case *node.InsertedImageNode:
		output.PausePoint = &PausePoint{Kind: PauseInsertedImage, InsertedImage: n}
	case *node.RoleOperationNode:
		output.RoleOperation = n
	case *node.RoleExpressionNode:
		output.RoleExpression = n
	case *node.SceneNode:
		output.Scene = n
	case *node.FunctionCallingNode:
		output.FunctionCallings[n.Function] = n
	case *node.JumpPointNode:
		// Labels are inert during linear execution.
	case *node.EmbeddedCodeNode:
		return vm.runEmbeddedCode(n)
	default:
		return newErrorf(UnknownInstruction, "unrecognised node type %T", n)
	}
	return nil
}

// runEmbeddedCode implements §4.4: the evaluator runs codeContent with
// the five primitives injected, each appending to generated; generated
// is then spliced into the current frame at PC.
func (vm *VM) runEmbeddedCode(n *node.EmbeddedCodeNode) error {
	vm.tracef("[librian] embeddedCode (%s): %s\n", n.CodeType, n.CodeContent)

	var generated []instr.Instruction

	primitives := evaluator.Primitives{
		Fusion: func(source string) error {
			compiled, err := vm.compiler.Compile(source)
			if err != nil {
				return err
			}
			generated = append(generated, compiled...)
			return nil
		},
		Goto: func(path, tag string) {
			generated = append(generated, &instr.Goto{Path: path, Tag: tag, Disposable: true})
		},
		Call: func(path, tag string) {
			generated = append(generated, &instr.Call{Path: path, Tag: tag, Disposable: true})
		},
		Choice: func(options ...evaluator.ChoiceOption) {
			opts := make([]instr.Option, len(options))
			for i, o := range options {
				opts[i] = instr.Option{Name: o.Name, Path: o.Content, Tag: o.Type}
			}
			generated = append(generated, &instr.Choice{Options: opts, Disposable: true, IsEmbeddedCode: true})
		},
		AdvEnd: func() {
			generated = append(generated, &instr.AdvEnd{Disposable: true})
		},
	}

	if err := vm.evaluator.Eval(n.CodeContent, primitives); err != nil {
		return err
	}

	vm.currentFrame().Insert(generated)
	return nil
}

// doCall implements the Call half of spec §4.5.
func (vm *VM) doCall(path, tag string) error {
	vm.tracef("[librian] call path=%q tag=%q\n", path, tag)

	current := vm.currentFrame()

	var next *Frame
	if vm.sameModule(path, current.ModulePath) {
		next = FrameFromSameModule(current)
	} else {
		mod, err := vm.env.LoadModule(path, current.ModulePath)
		if err != nil {
			return err
		}
		next = NewFrame(mod)
	}

	vm.frames = append(vm.frames, next)
	return next.Jump(tag)
}

// doGoto implements the Goto half of spec §4.5.
func (vm *VM) doGoto(path, tag string) error {
	vm.tracef("[librian] goto path=%q tag=%q\n", path, tag)

	current := vm.currentFrame()

	if vm.sameModule(path, current.ModulePath) {
		return current.Jump(tag)
	}

	mod, err := vm.env.LoadModule(path, current.ModulePath)
	if err != nil {
		return err
	}

	next := NewFrame(mod)
	vm.frames[len(vm.frames)-1] = next
	return next.Jump(tag)
}

// sameModule implements the sameModule predicate from spec §4.5: an
// empty path always means "this module".
func (vm *VM) sameModule(path, currentPath string) bool {
	if path == "" {
		return true
	}
	return vm.env.ModulePathEquals(path, currentPath)
}

func (vm *VM) currentFrame() *Frame {
	return vm.frames[len(vm.frames)-1]
}

func (vm *VM) popEndedFrames() {
	for len(vm.frames) > 0 && vm.currentFrame().IsEnded() {
		vm.frames = vm.frames[:len(vm.frames)-1]
	}
}
