package main

import (
	"encoding/json"
	"fmt"

	"github.com/go-librian/librian/node"
)

// rawNode is the on-disk shape this reference host reads a module
// from: a JSON array of attribute maps matching spec.md §6's
// Parser-to-Compiler node contract. There is no spec-mandated file
// format (spec.md §6: "there is no CLI, no file format"); this is
// this host's own pragmatic choice of how to feed already-parsed
// nodes in, standing in for the external parser this repo does not
// implement.
type rawNode struct {
	Type string `json:"type"`

	Aside string `json:"aside"`

	Name       string `json:"name"`
	Alias      string `json:"alias"`
	Effect     string `json:"effect"`
	Expression string `json:"expression"`
	Dialog     string `json:"dialog"`

	RoleName string `json:"roleName"`
	Operator string `json:"operator"`
	Target   string `json:"target"`

	SceneOperator string `json:"sceneOperator"`
	Content       string `json:"content"`

	InsertedImage string `json:"insertedImage"`

	OriginalText  string `json:"originalText"`
	Function      string `json:"function"`
	ParameterList []struct {
		A string `json:"a"`
	} `json:"parameterList"`

	CodeType    string `json:"codeType"`
	CodeContent string `json:"codeContent"`

	OptionName string `json:"optionName"`
	File       string `json:"file"`
	Location   string `json:"location"`

	JumpPoint string `json:"jumpPoint"`
}

// toNode converts one decoded rawNode into the corresponding closed-
// sum node.Node, per the attribute table in spec.md §6.
func toNode(r rawNode) (node.Node, error) {
	switch r.Type {
	case "aside":
		return &node.AsideNode{Aside: r.Aside}, nil
	case "roleDialog":
		return &node.RoleDialogNode{Name: r.Name, Alias: r.Alias, Effect: r.Effect, Expression: r.Expression, Dialog: r.Dialog}, nil
	case "roleExpression":
		return &node.RoleExpressionNode{Name: r.Name, Alias: r.Alias, Effect: r.Effect, Expression: r.Expression}, nil
	case "roleOperation":
		return &node.RoleOperationNode{RoleName: r.RoleName, Operator: r.Operator, Target: r.Target}, nil
	case "scene":
		return &node.SceneNode{SceneOperator: r.SceneOperator, Content: r.Content}, nil
	case "insertedImage":
		return &node.InsertedImageNode{InsertedImage: r.InsertedImage}, nil
	case "functionCalling":
		params := make([]node.Parameter, len(r.ParameterList))
		for i, p := range r.ParameterList {
			params[i] = node.Parameter{A: p.A}
		}
		return &node.FunctionCallingNode{OriginalText: r.OriginalText, Function: r.Function, ParameterList: params}, nil
	case "embeddedCode":
		return &node.EmbeddedCodeNode{CodeType: r.CodeType, CodeContent: r.CodeContent}, nil
	case "option":
		return &node.OptionNode{OptionName: r.OptionName, File: r.File, Location: r.Location}, nil
	case "comment":
		return &node.CommentNode{}, nil
	case "jumpPoint":
		return &node.JumpPointNode{JumpPoint: r.JumpPoint}, nil
	default:
		return nil, fmt.Errorf("unrecognised node type %q", r.Type)
	}
}

// decodeNodes parses a JSON array of raw nodes into node.Node values,
// in file order.
func decodeNodes(data []byte) ([]node.Node, error) {
	var raw []rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	nodes := make([]node.Node, 0, len(raw))
	for _, r := range raw {
		n, err := toNode(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
