package vm

import "github.com/go-librian/librian/node"

// PausePointKind discriminates the reason nextOutput returned to the
// host.
type PausePointKind string

// The closed set of reasons a step can pause.
const (
	PauseAside         PausePointKind = "aside"
	PauseRoleDialog    PausePointKind = "roleDialog"
	PauseInsertedImage PausePointKind = "insertedImage"
	PauseOptions       PausePointKind = "options"
)

// PausePoint is the reason a single nextOutput call stopped stepping.
type PausePoint struct {
	Kind PausePointKind

	// Aside is set when Kind == PauseAside.
	Aside *node.AsideNode

	// RoleDialog is set when Kind == PauseRoleDialog.
	RoleDialog *node.RoleDialogNode

	// InsertedImage is set when Kind == PauseInsertedImage.
	InsertedImage *node.InsertedImageNode

	// OptionNames is set when Kind == PauseOptions, one name per
	// offered branch, in order.
	OptionNames []string
}

// Output is the record returned from one nextOutput call. A nil
// *Output (pausePoint == nil in spec terms) signals end-of-script;
// every non-nil Output carries exactly one PausePoint.
type Output struct {
	// PausePoint is the reason this step returned.
	PausePoint *PausePoint

	// FunctionCallings maps function name to its call record,
	// overwriting on duplicate name within this step.
	FunctionCallings map[string]*node.FunctionCallingNode

	// RoleOperation is the latest occurrence within this step, or nil.
	RoleOperation *node.RoleOperationNode

	// RoleExpression is the latest occurrence within this step, or nil.
	RoleExpression *node.RoleExpressionNode

	// Scene is the latest occurrence within this step, or nil.
	Scene *node.SceneNode
}

// newOutput returns an empty builder for one step.
func newOutput() *Output {
	return &Output{FunctionCallings: make(map[string]*node.FunctionCallingNode)}
}
