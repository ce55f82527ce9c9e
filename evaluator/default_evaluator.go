package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/go-librian/librian/evaluator/script"
	"github.com/go-librian/librian/evaluator/script/object"
)

// DefaultEvaluator runs embedded code through the bundled filter
// language (evaluator/script), wiring the five primitives in as host
// functions a snippet can call by name.
type DefaultEvaluator struct {
	// Debug enables per-opcode tracing of every snippet this
	// evaluator runs, following the teacher's Evaluator.Debug/
	// EVAL_FILTER_DEBUG pattern (eval.go). Defaults from the
	// LIBRIAN_DEBUG environment variable.
	Debug bool

	// Trace is where opcode tracing is written when Debug is set.
	Trace io.Writer
}

// NewDefaultEvaluator returns the stock Evaluator used when a host
// doesn't supply its own scripting language.
func NewDefaultEvaluator() *DefaultEvaluator {
	return &DefaultEvaluator{
		Debug: os.Getenv("LIBRIAN_DEBUG") != "",
		Trace: os.Stderr,
	}
}

// Eval implements Evaluator.
func (de *DefaultEvaluator) Eval(codeContent string, primitives Primitives) error {
	s, err := script.New(codeContent)
	if err != nil {
		return err
	}
	if de.Debug {
		s.Debug = true
		if de.Trace != nil {
			s.Trace = de.Trace
		}
	}

	var callErr error
	fail := func(err error) object.Object {
		if callErr == nil {
			callErr = err
		}
		return &object.Null{}
	}

	s.AddFunction("fusion", func(args []object.Object) object.Object {
		if len(args) != 1 {
			return fail(fmt.Errorf("fusion() takes exactly one argument, got %d", len(args)))
		}
		if err := primitives.Fusion(args[0].Inspect()); err != nil {
			return fail(err)
		}
		return &object.Null{}
	})

	s.AddFunction("goto", func(args []object.Object) object.Object {
		path, tag, ok := pathTagArgs(args)
		if !ok {
			return fail(fmt.Errorf("goto() takes at most two string arguments, path and tag"))
		}
		primitives.Goto(path, tag)
		return &object.Null{}
	})

	s.AddFunction("call", func(args []object.Object) object.Object {
		path, tag, ok := pathTagArgs(args)
		if !ok {
			return fail(fmt.Errorf("call() takes at most two string arguments, path and tag"))
		}
		primitives.Call(path, tag)
		return &object.Null{}
	})

	s.AddFunction("choice", func(args []object.Object) object.Object {
		if len(args)%3 != 0 {
			return fail(fmt.Errorf("choice() takes its arguments in (name, content, type) triples, got %d", len(args)))
		}
		options := make([]ChoiceOption, 0, len(args)/3)
		for i := 0; i < len(args); i += 3 {
			options = append(options, ChoiceOption{
				Name:    args[i].Inspect(),
				Content: args[i+1].Inspect(),
				Type:    args[i+2].Inspect(),
			})
		}
		primitives.Choice(options...)
		return &object.Null{}
	})

	s.AddFunction("adv_end", func(args []object.Object) object.Object {
		primitives.AdvEnd()
		return &object.Null{}
	})

	if _, err := s.Run(nil); err != nil {
		return err
	}
	return callErr
}

// pathTagArgs validates the (path, tag) calling convention shared by
// goto() and call(): both arguments are optional (spec §4.4 - "goto(path?,
// tag?)"/"call(path?, tag?)") and a missing one means "null", same as an
// explicit empty string (spec §4.5 - same-module, module start).
func pathTagArgs(args []object.Object) (path, tag string, ok bool) {
	if len(args) > 2 {
		return "", "", false
	}
	if len(args) > 0 {
		path = args[0].Inspect()
	}
	if len(args) > 1 {
		tag = args[1].Inspect()
	}
	return path, tag, true
}
