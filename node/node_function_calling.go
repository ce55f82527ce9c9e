package node

// Parameter is one positional argument to a function-calling node.
type Parameter struct {
	// A holds the raw argument text.
	A string
}

// FunctionCallingNode invokes a host-provided function by name.
type FunctionCallingNode struct {
	// OriginalText is the unparsed source of the call, kept for
	// diagnostics and for hosts that want to re-render it verbatim.
	OriginalText string

	// Function is the name of the function to invoke.
	Function string

	// ParameterList holds the call's positional arguments.
	ParameterList []Parameter
}

// Type returns this node's discriminator.
func (n *FunctionCallingNode) Type() Type { return FunctionCalling }
