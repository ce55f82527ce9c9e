package node

import "testing"

func TestTypes(t *testing.T) {
	tests := []struct {
		node Node
		want Type
	}{
		{&AsideNode{Aside: "hi"}, Aside},
		{&RoleDialogNode{Name: "steve"}, RoleDialog},
		{&RoleExpressionNode{Name: "steve"}, RoleExpression},
		{&RoleOperationNode{RoleName: "steve", Operator: "+"}, RoleOperation},
		{&SceneNode{SceneOperator: "+", Content: "beach"}, Scene},
		{&InsertedImageNode{InsertedImage: "logo.png"}, InsertedImage},
		{&FunctionCallingNode{Function: "shake"}, FunctionCalling},
		{&EmbeddedCodeNode{CodeType: "lua"}, EmbeddedCode},
		{&OptionNode{OptionName: "Go north"}, Option},
		{&CommentNode{}, Comment},
		{&JumpPointNode{JumpPoint: "t1"}, JumpPoint},
	}

	for _, test := range tests {
		if got := test.node.Type(); got != test.want {
			t.Errorf("got %s, wanted %s", got, test.want)
		}
	}
}
