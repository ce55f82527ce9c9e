package vm

import "github.com/pkg/errors"

// Reason is the discriminator for the single error kind the VM ever
// raises (spec §7).
type Reason string

// The closed set of conditions the VM can fail with.
const (
	// MissingInput: a choice was pending but nextOutput was called
	// without input.
	MissingInput Reason = "MissingInput"

	// NullOptionIndex: input was provided without an optionIndex.
	NullOptionIndex Reason = "NullOptionIndex"

	// OptionIndexOutOfRange: optionIndex did not index into the
	// pending choice's options.
	OptionIndexOutOfRange Reason = "OptionIndexOutOfRange"

	// JumpNotFound: jump(tag) with a non-null tag matched nothing in
	// the current frame's working list.
	JumpNotFound Reason = "JumpNotFound"

	// UnknownInstruction: dispatch hit an itype not in the table.
	UnknownInstruction Reason = "UnknownInstruction"
)

// Error is the single error kind all core VM failures surface as. It
// carries a Reason sentinel plus the underlying cause, wrapped with
// github.com/pkg/errors so callers can still recover a stack trace
// and the original cause via errors.Cause.
type Error struct {
	// Reason identifies which of the closed set of failure
	// conditions this error represents.
	Reason Reason

	cause error
}

// newError builds an Error for reason, wrapping msg with a stack
// trace via pkg/errors.
func newError(reason Reason, msg string) *Error {
	return &Error{Reason: reason, cause: errors.New(msg)}
}

// newErrorf is newError with fmt-style formatting.
func newErrorf(reason Reason, format string, args ...interface{}) *Error {
	return &Error{Reason: reason, cause: errors.Errorf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.cause.Error()
}

// Cause returns the wrapped error, satisfying the informal
// `Cause() error` interface github.com/pkg/errors.Cause looks for.
func (e *Error) Cause() error {
	return e.cause
}
