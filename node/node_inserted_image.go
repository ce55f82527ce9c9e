package node

// InsertedImageNode displays a standalone image, outside the role system.
type InsertedImageNode struct {
	// InsertedImage names the image asset to display.
	InsertedImage string
}

// Type returns this node's discriminator.
func (n *InsertedImageNode) Type() Type { return InsertedImage }
