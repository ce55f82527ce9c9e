package instr

import "github.com/go-librian/librian/node"

// NodeInstr wraps a parsed node whose type is one of the non-control
// statement types (aside, roleDialog, roleExpression, roleOperation,
// scene, insertedImage, functionCalling, embeddedCode, jumpPoint).
type NodeInstr struct {
	// Node is the wrapped, immutable node.
	Node node.Node

	// Disposable marks this instruction for single execution.
	Disposable bool
}

// IsDisposable reports whether this instruction is single-shot.
func (i *NodeInstr) IsDisposable() bool { return i.Disposable }

// Itype returns the discriminator the VM dispatches on, which is
// always equal to the wrapped node's own type.
func (i *NodeInstr) Itype() node.Type { return i.Node.Type() }
