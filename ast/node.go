// Package ast defines the abstract syntax tree for uexpr expressions.
//
// The AST is a closed set of immutable expression variants built
// bottom-up by the parser and never mutated afterwards. Ownership is a
// strict tree: no shared nodes, no back references.
//
// Node hierarchy:
//
//	Node (interface)
//	└── Expr (interface) - expressions that produce values
//	    ├── NumLit, Ident - atoms
//	    ├── BinaryExpr, UnaryExpr, AssignExpr - operations
//	    ├── CallExpr, GroupExpr - grouping and calls
//	    └── Program - sequence of statements, itself an Expr
//
// External code consumes the tree through the generic visitor contract
// (see Visitor and Accept) or the Walk/Inspect traversal helpers.
package ast

import "github.com/kolkov/uexpr/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the node's leading token. For
	// operator nodes this is the operator itself: an assignment sits
	// at its '=', a binary or unary expression at its operator, and a
	// parenthesized group at its opening paren.
	Pos() token.Position

	// End returns the position of the first character immediately
	// after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// BaseExpr provides common position fields for expression nodes.
// Embedded in every concrete expression type.
type BaseExpr struct {
	StartPos token.Position // Position of the leading token
	EndPos   token.Position // Position after the last token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) exprNode()           {}

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end}
}
