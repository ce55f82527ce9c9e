// Package instr defines the tagged-variant Instruction model the VM
// executes. An Instruction is either a wrapped Node, or one of the
// control forms the compiler or embedded code synthesises directly:
// Choice, Call, Goto, AdvEnd.
package instr

// Instruction is any VM-executable unit.
type Instruction interface {
	// IsDisposable reports whether this instruction is removed from
	// its frame's working list immediately after it executes once.
	IsDisposable() bool
}
