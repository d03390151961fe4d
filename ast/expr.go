package ast

import "github.com/kolkov/uexpr/token"

// -----------------------------------------------------------------------------
// Atoms
// -----------------------------------------------------------------------------

// NumLit represents a numeric literal.
// The original lexeme is preserved verbatim; no numeric conversion is
// performed, so evaluators can pick their own representation without
// precision loss.
// Examples: 42, 3.14
type NumLit struct {
	BaseExpr
	Text string // Original source text of the number
}

// Ident represents an identifier (variable or function name).
// Examples: x, total, _tmp1
type Ident struct {
	BaseExpr
	Name string // Identifier name
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// BinaryExpr represents a binary arithmetic operation.
// Both children are owned exclusively by the node. Its position is the
// operator's position.
// Examples: a + b, 2 ^ 10
type BinaryExpr struct {
	BaseExpr
	Left  Expr       // Left operand
	Op    token.Kind // Operator kind (ADD..POW)
	Right Expr       // Right operand
}

// UnaryExpr represents unary minus. Its position is the minus sign.
// Unary minus self-nests, so --5 is UnaryExpr(UnaryExpr(NumLit)).
type UnaryExpr struct {
	BaseExpr
	Op   token.Kind // Always SUB in this grammar
	Expr Expr       // Operand
}

// AssignExpr represents an assignment. The target is typed as *Ident so
// an invalid assignment target is unrepresentable; the parser enforces
// this at construction time. Its position is the '=' sign. Assignment
// chains right-associatively: a = b = 5 is AssignExpr(a, AssignExpr(b, 5)).
type AssignExpr struct {
	BaseExpr
	Target *Ident // Assignment target, always an identifier
	Value  Expr   // Value expression
}

// -----------------------------------------------------------------------------
// Calls and grouping
// -----------------------------------------------------------------------------

// CallExpr represents a function call. The grammar accepts zero or one
// argument expression.
// Examples: rand(), sin(x + 1)
type CallExpr struct {
	BaseExpr
	Name string // Function name
	Args []Expr // Argument expressions (empty or one element)
}

// GroupExpr represents a parenthesized expression. Kept explicit in the
// tree so source grouping survives re-stringification. Its position is
// the opening paren.
// Example: (a + b)
type GroupExpr struct {
	BaseExpr
	Expr Expr // Inner expression
}

// Program is the root node for multi-statement input: an ordered
// sequence of expression statements. It implements Expr so it can stand
// wherever a single expression is expected.
type Program struct {
	BaseExpr
	Exprs []Expr // Statements in source order
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all expression types implement the Expr interface.
var (
	_ Expr = (*NumLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*AssignExpr)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*GroupExpr)(nil)
	_ Expr = (*Program)(nil)
)
