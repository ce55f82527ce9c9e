// Package module defines the compiled-script unit the VM executes:
// an immutable instruction list paired with a host-opaque path.
package module

import "github.com/go-librian/librian/instr"

// Module is a compiled script, identified by Path. The Environment
// interprets Path; the VM never inspects it beyond equality checks
// delegated to the Environment.
type Module struct {
	// Instructions is the module's immutable instruction list. A
	// Frame clones this into its own working copy on construction;
	// the slice here is never mutated.
	Instructions []instr.Instruction

	// Path identifies this module to the Environment.
	Path string
}

// New builds a Module from a path and its compiled instructions.
func New(path string, instructions []instr.Instruction) *Module {
	return &Module{Path: path, Instructions: instructions}
}
