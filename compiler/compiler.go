// Package compiler folds a sequence of parsed nodes into a sequence
// of instructions, fusing consecutive option nodes into a single
// choice point (spec §4.1). The compiler never errors: unrecognised
// node types are simply wrapped as Node instructions and left for
// the VM to reject at dispatch time.
package compiler

import (
	"github.com/go-librian/librian/instr"
	"github.com/go-librian/librian/node"
)

// Compile folds nodes into instructions. disposable is propagated to
// every instruction this call emits - a true value marks the whole
// run as single-shot, which is how the embedded-code bridge injects
// one-off, computed control flow (see the evaluator package).
func Compile(nodes []node.Node, disposable bool) []instr.Instruction {
	var out []instr.Instruction
	var pending []*node.OptionNode

	flush := func() {
		if len(pending) == 0 {
			return
		}

		options := make([]instr.Option, 0, len(pending))
		for _, opt := range pending {
			options = append(options, instr.Option{
				Name: opt.OptionName,
				Path: opt.File,
				Tag:  opt.Location,
			})
		}

		out = append(out, &instr.Choice{
			Options:        options,
			Disposable:     disposable,
			IsEmbeddedCode: false,
		})
		pending = nil
	}

	for _, n := range nodes {
		switch typed := n.(type) {

		case *node.OptionNode:
			pending = append(pending, typed)

		case *node.CommentNode:
			// A comment ends a run of options without itself
			// producing output; outside a run it is dropped
			// silently either way.
			flush()

		default:
			flush()
			out = append(out, &instr.NodeInstr{Node: n, Disposable: disposable})
		}
	}

	flush()

	return out
}
