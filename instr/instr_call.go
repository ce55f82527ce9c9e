package instr

// Call pushes a new frame for (Path, Tag) and jumps into it, leaving
// the caller's frame on the stack beneath it.
type Call struct {
	// Path is the target module identifier; empty/null means the
	// current module.
	Path string

	// Tag is the target label within Path; empty/null means the
	// target module's start.
	Tag string

	// Disposable marks this instruction for single execution.
	Disposable bool
}

// IsDisposable reports whether this instruction is single-shot.
func (c *Call) IsDisposable() bool { return c.Disposable }
