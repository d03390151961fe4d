package ast

import (
	"encoding/json"
	"io"

	"github.com/kolkov/uexpr/token"
)

// jsonVisitor converts nodes into a json.Marshal-friendly value tree.
// It doubles as the reference implementation of the Visitor contract.
type jsonVisitor struct{}

var _ Visitor[any] = jsonVisitor{}

func jsonPos(p token.Position) map[string]int {
	return map[string]int{"line": p.Line, "column": p.Column}
}

func (v jsonVisitor) VisitProgram(n *Program) any {
	stmts := make([]any, 0, len(n.Exprs))
	for _, e := range n.Exprs {
		stmts = append(stmts, Accept[any](e, v))
	}
	return map[string]any{
		"node":       "program",
		"statements": stmts,
	}
}

func (v jsonVisitor) VisitNumLit(n *NumLit) any {
	return map[string]any{
		"node": "literal",
		"text": n.Text,
		"pos":  jsonPos(n.StartPos),
	}
}

func (v jsonVisitor) VisitIdent(n *Ident) any {
	return map[string]any{
		"node": "identifier",
		"name": n.Name,
		"pos":  jsonPos(n.StartPos),
	}
}

func (v jsonVisitor) VisitBinaryExpr(n *BinaryExpr) any {
	return map[string]any{
		"node":  "binary",
		"op":    n.Op.String(),
		"left":  Accept[any](n.Left, v),
		"right": Accept[any](n.Right, v),
		"pos":   jsonPos(n.StartPos),
	}
}

func (v jsonVisitor) VisitUnaryExpr(n *UnaryExpr) any {
	return map[string]any{
		"node":    "unary",
		"op":      n.Op.String(),
		"operand": Accept[any](n.Expr, v),
		"pos":     jsonPos(n.StartPos),
	}
}

func (v jsonVisitor) VisitAssignExpr(n *AssignExpr) any {
	return map[string]any{
		"node":   "assignment",
		"target": Accept[any](n.Target, v),
		"value":  Accept[any](n.Value, v),
		"pos":    jsonPos(n.StartPos),
	}
}

func (v jsonVisitor) VisitCallExpr(n *CallExpr) any {
	args := make([]any, 0, len(n.Args))
	for _, arg := range n.Args {
		args = append(args, Accept[any](arg, v))
	}
	return map[string]any{
		"node":      "call",
		"name":      n.Name,
		"arguments": args,
		"pos":       jsonPos(n.StartPos),
	}
}

func (v jsonVisitor) VisitGroupExpr(n *GroupExpr) any {
	return map[string]any{
		"node":  "group",
		"inner": Accept[any](n.Expr, v),
		"pos":   jsonPos(n.StartPos),
	}
}

// MarshalJSON returns an indented JSON representation of the node.
func MarshalJSON(node Node) ([]byte, error) {
	return json.MarshalIndent(Accept[any](node, jsonVisitor{}), "", "  ")
}

// EncodeJSON writes the JSON representation of the node to w.
func EncodeJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Accept[any](node, jsonVisitor{}))
}
