package node

// CommentNode carries no payload the VM consumes. It exists only to
// terminate a run of option nodes during compilation (§4.1); the
// compiler always discards it.
type CommentNode struct{}

// Type returns this node's discriminator.
func (n *CommentNode) Type() Type { return Comment }
