package instr

// Option is one branch of a Choice.
//
// In the ordinary, compiler-fused case Path/Tag name a target module
// and label. When the owning Choice has IsEmbeddedCode set, the same
// two fields are reused by position to carry raw embedded-code
// content and its code-type instead of a jump target (see the
// `choice(...)` primitive in the evaluator package).
type Option struct {
	// Name is the label shown to the user.
	Name string

	// Path is the target module identifier, or the option's raw
	// embedded-code content when IsEmbeddedCode is set.
	Path string

	// Tag is the target label within Path, or the option's
	// embedded-code type when IsEmbeddedCode is set.
	Tag string
}

// Choice is a user-decision point: the VM pauses until the host
// supplies the index of the option the user picked.
type Choice struct {
	// Options are the branches offered to the user, in order.
	Options []Option

	// Disposable marks this instruction for single execution.
	Disposable bool

	// IsEmbeddedCode records whether this Choice was synthesised by
	// the embedded-code bridge's `choice(...)` primitive rather than
	// by ordinary option fusion. Never consulted by core dispatch;
	// preserved for renderers that want to tell the two apart.
	IsEmbeddedCode bool
}

// IsDisposable reports whether this instruction is single-shot.
func (c *Choice) IsDisposable() bool { return c.Disposable }
