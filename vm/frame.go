package vm

import (
	"github.com/go-librian/librian/instr"
	"github.com/go-librian/librian/module"
	"github.com/go-librian/librian/node"
)

// Frame is one activation of a module: a mutable working instruction
// list, a program counter, and a pristine copy of the module's list
// used to re-seed a same-module Call (§4.5). The pristine copy is
// never mutated.
type Frame struct {
	// ModulePath identifies the module this frame is an activation of.
	ModulePath string

	// PC is the index of the next instruction to execute in working.
	PC int

	working  []instr.Instruction
	pristine []instr.Instruction
}

// NewFrame builds a fresh Frame over mod's instructions, PC at zero.
func NewFrame(mod *module.Module) *Frame {
	return &Frame{
		ModulePath: mod.Path,
		working:    cloneInstructions(mod.Instructions),
		pristine:   cloneInstructions(mod.Instructions),
	}
}

// FrameFromSameModule builds a new Frame over other's pristine list
// and path, not other's possibly-mutated working list. This gives a
// same-module Call a fresh program, per spec §4.5.
func FrameFromSameModule(other *Frame) *Frame {
	return &Frame{
		ModulePath: other.ModulePath,
		working:    cloneInstructions(other.pristine),
		pristine:   cloneInstructions(other.pristine),
	}
}

func cloneInstructions(in []instr.Instruction) []instr.Instruction {
	out := make([]instr.Instruction, len(in))
	copy(out, in)
	return out
}

// Jump sets PC to the index of the jumpPoint instruction in the
// working list whose label equals tag, or to zero if tag is empty
// ("null" in spec terms, meaning "module start"). The scan is linear
// and always re-resolves against the current working list, because
// prior disposable removals and embedded-code splices may have moved
// everything around since the last jump.
func (f *Frame) Jump(tag string) error {
	if tag == "" {
		f.PC = 0
		return nil
	}

	for i, instruction := range f.working {
		ni, ok := instruction.(*instr.NodeInstr)
		if !ok {
			continue
		}
		jp, ok := ni.Node.(*node.JumpPointNode)
		if !ok {
			continue
		}
		if jp.JumpPoint == tag {
			f.PC = i
			return nil
		}
	}

	return newErrorf(JumpNotFound, "no jump point named %q in module %q", tag, f.ModulePath)
}

// Insert splices instructions into the working list at PC, shifting
// everything from PC onward to the right. Used by Choice resolution
// and embedded-code execution.
func (f *Frame) Insert(instructions []instr.Instruction) {
	if len(instructions) == 0 {
		return
	}

	merged := make([]instr.Instruction, 0, len(f.working)+len(instructions))
	merged = append(merged, f.working[:f.PC]...)
	merged = append(merged, instructions...)
	merged = append(merged, f.working[f.PC:]...)
	f.working = merged
}

// IsEnded reports whether PC has run past the end of the working list.
func (f *Frame) IsEnded() bool {
	return f.PC >= len(f.working)
}

// Current returns the instruction at PC. Callers must check IsEnded
// first.
func (f *Frame) Current() instr.Instruction {
	return f.working[f.PC]
}

// Advance moves past the current instruction: if it is disposable it
// is removed at PC (PC stays put, now pointing at the next
// instruction); otherwise PC is incremented. Disposable instructions
// never persist past their single execution; non-disposable ones
// stay at their original positions and re-execute on re-entry.
func (f *Frame) Advance() {
	if f.IsEnded() {
		return
	}

	if f.working[f.PC].IsDisposable() {
		f.working = append(f.working[:f.PC], f.working[f.PC+1:]...)
		return
	}

	f.PC++
}
