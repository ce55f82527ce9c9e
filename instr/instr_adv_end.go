package instr

// AdvEnd terminates the entire script: every frame is popped off the
// VM's stack when it executes.
type AdvEnd struct {
	// Disposable marks this instruction for single execution.
	Disposable bool
}

// IsDisposable reports whether this instruction is single-shot.
func (a *AdvEnd) IsDisposable() bool { return a.Disposable }
