// Table-driven tests for exercising the different OpCode handlers
// individually.

package scriptvm

import (
	"strings"
	"testing"

	"github.com/go-librian/librian/evaluator/script/code"
	"github.com/go-librian/librian/evaluator/script/object"
	"github.com/go-librian/librian/evaluator/script/scriptenv"
)

// testCase describes one bytecode program and its expected result.
type testCase struct {
	// constants used by the program.
	constants []object.Object

	// program is the bytecode we execute.
	program code.Instructions

	// result is the expected Inspect() output of the returned object.
	result string

	// error, if true, means result is a substring of the error message
	// instead of a successful return value.
	error bool
}

func runTestCases(t *testing.T, tests []testCase) {
	for i, test := range tests {
		env := scriptenv.New()
		vm := New(test.constants, test.program, env)

		out, err := vm.Run(nil)
		if test.error {
			if err == nil {
				t.Fatalf("test %d: expected error, got none", i)
			}
			if !strings.Contains(err.Error(), test.result) {
				t.Fatalf("test %d: error %q does not contain %q", i, err.Error(), test.result)
			}
			continue
		}

		if err != nil {
			t.Fatalf("test %d: unexpected error: %s", i, err)
		}
		if out.Inspect() != test.result {
			t.Fatalf("test %d: got %q, wanted %q", i, out.Inspect(), test.result)
		}
	}
}

func TestBool(t *testing.T) {
	vm := New(nil, nil, scriptenv.New())

	tb := vm.nativeBoolToBooleanObject(true)
	fb := vm.nativeBoolToBooleanObject(false)

	if tb != True {
		t.Fatalf("bool mismatch")
	}
	if fb != False {
		t.Fatalf("bool mismatch")
	}
}

func TestEmptyProgram(t *testing.T) {
	vm := New(nil, code.Instructions{}, scriptenv.New())

	_, err := vm.Run(nil)
	if err == nil {
		t.Fatalf("expected an error running an empty program")
	}
}

func TestMissingReturn(t *testing.T) {
	constants := []object.Object{&object.Integer{Value: 3}}

	program := code.Instructions{byte(code.OpConstant), 0, 0}

	runTestCases(t, []testCase{
		{constants: constants, program: program, result: "missing return", error: true},
	})
}

func TestArithmetic(t *testing.T) {
	constants := []object.Object{
		&object.Integer{Value: 2},
		&object.Integer{Value: 3},
	}

	tests := []testCase{
		{
			// 2 + 3 -> 5
			constants: constants,
			program: code.Instructions{
				byte(code.OpConstant), 0, 0,
				byte(code.OpConstant), 0, 1,
				byte(code.OpAdd),
				byte(code.OpReturn),
			},
			result: "5",
		},
		{
			// 2 * 3 -> 6
			constants: constants,
			program: code.Instructions{
				byte(code.OpConstant), 0, 0,
				byte(code.OpConstant), 0, 1,
				byte(code.OpMul),
				byte(code.OpReturn),
			},
			result: "6",
		},
		{
			// 2 < 3 -> true
			constants: constants,
			program: code.Instructions{
				byte(code.OpConstant), 0, 0,
				byte(code.OpConstant), 0, 1,
				byte(code.OpLess),
				byte(code.OpReturn),
			},
			result: "true",
		},
	}

	runTestCases(t, tests)
}

func TestBangAndMinus(t *testing.T) {
	tests := []testCase{
		{
			program: code.Instructions{byte(code.OpTrue), byte(code.OpBang), byte(code.OpReturn)},
			result:  "false",
		},
		{
			program: code.Instructions{byte(code.OpFalse), byte(code.OpBang), byte(code.OpReturn)},
			result:  "true",
		},
		{
			constants: []object.Object{&object.Integer{Value: 9}},
			program: code.Instructions{
				byte(code.OpConstant), 0, 0,
				byte(code.OpMinus),
				byte(code.OpReturn),
			},
			result: "-9",
		},
		{
			constants: []object.Object{&object.Integer{Value: 9}},
			program: code.Instructions{
				byte(code.OpConstant), 0, 0,
				byte(code.OpRoot),
				byte(code.OpReturn),
			},
			result: "3",
		},
	}

	runTestCases(t, tests)
}

func TestJump(t *testing.T) {
	// if (false) { return 1 } ; return 2
	constants := []object.Object{
		&object.Integer{Value: 1},
		&object.Integer{Value: 2},
	}

	program := code.Instructions{
		byte(code.OpFalse),              // 0
		byte(code.OpJumpIfFalse), 0, 11, // 1: jump to offset 11 if false
		byte(code.OpConstant), 0, 0, // 4
		byte(code.OpReturn),         // 7
		byte(code.OpJump), 0, 0,     // unreachable filler (never executed)
		byte(code.OpConstant), 0, 1, // 11
		byte(code.OpReturn),
	}

	runTestCases(t, []testCase{
		{constants: constants, program: program, result: "2"},
	})
}

func TestSetAndLookup(t *testing.T) {
	// name = "count" ; count = 42 ; return count
	nameConst := &object.String{Value: "count"}
	valConst := &object.Integer{Value: 42}

	env := scriptenv.New()

	program := code.Instructions{
		byte(code.OpConstant), 0, 1, // push value
		byte(code.OpConstant), 0, 0, // push name
		byte(code.OpSet),
		byte(code.OpLookup), 0, 0,
		byte(code.OpReturn),
	}

	vm := New([]object.Object{nameConst, valConst}, program, env)
	out, err := vm.Run(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out.Inspect() != "42" {
		t.Fatalf("got %s, wanted 42", out.Inspect())
	}

	if val, ok := env.Get("count"); !ok || val.Inspect() != "42" {
		t.Fatalf("variable was not persisted in the environment")
	}
}

func TestCall(t *testing.T) {
	env := scriptenv.New()
	env.SetFunction("double", func(args []object.Object) object.Object {
		n := args[0].(*object.Integer)
		return &object.Integer{Value: n.Value * 2}
	})

	constants := []object.Object{
		&object.Integer{Value: 21},
		&object.String{Value: "double"},
	}

	program := code.Instructions{
		byte(code.OpConstant), 0, 0,
		byte(code.OpConstant), 0, 1,
		byte(code.OpCall), 0, 1,
		byte(code.OpReturn),
	}

	vm := New(constants, program, env)
	out, err := vm.Run(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out.Inspect() != "42" {
		t.Fatalf("got %s, wanted 42", out.Inspect())
	}
}

func TestUnknownFunction(t *testing.T) {
	constants := []object.Object{&object.String{Value: "missing"}}

	program := code.Instructions{
		byte(code.OpConstant), 0, 0,
		byte(code.OpCall), 0, 0,
		byte(code.OpReturn),
	}

	runTestCases(t, []testCase{
		{constants: constants, program: program, result: "does not exist", error: true},
	})
}

func TestFieldLookup(t *testing.T) {
	type host struct {
		Name string
		Age  int64
	}

	nameConst := &object.String{Value: "Name"}

	env := scriptenv.New()
	program := code.Instructions{
		byte(code.OpLookup), 0, 0,
		byte(code.OpReturn),
	}

	vm := New([]object.Object{nameConst}, program, env)
	out, err := vm.Run(&host{Name: "Steve", Age: 42})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out.Inspect() != "Steve" {
		t.Fatalf("got %q, wanted %q", out.Inspect(), "Steve")
	}
}
