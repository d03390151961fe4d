package ast

// Visitor defines the generic visitor pattern for AST traversal.
// Type parameter T is the return type of visit methods: one method per
// expression variant plus one for Program.
//
// Example usage for a line counter:
//
//	type depth struct{}
//	func (depth) VisitNumLit(*ast.NumLit) int { return 1 }
//	func (d depth) VisitBinaryExpr(n *ast.BinaryExpr) int {
//	    return 1 + max(ast.Accept[int](n.Left, d), ast.Accept[int](n.Right, d))
//	}
//	// ... other methods
type Visitor[T any] interface {
	VisitProgram(*Program) T

	VisitNumLit(*NumLit) T
	VisitIdent(*Ident) T

	VisitBinaryExpr(*BinaryExpr) T
	VisitUnaryExpr(*UnaryExpr) T
	VisitAssignExpr(*AssignExpr) T

	VisitCallExpr(*CallExpr) T
	VisitGroupExpr(*GroupExpr) T
}

// Accept dispatches to the appropriate visitor method based on node
// type, implementing the double-dispatch half of the visitor contract.
//
// Example:
//
//	result := ast.Accept[int](node, myVisitor)
func Accept[T any](node Node, v Visitor[T]) T {
	switch n := node.(type) {
	case *Program:
		return v.VisitProgram(n)
	case *NumLit:
		return v.VisitNumLit(n)
	case *Ident:
		return v.VisitIdent(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)
	case *UnaryExpr:
		return v.VisitUnaryExpr(n)
	case *AssignExpr:
		return v.VisitAssignExpr(n)
	case *CallExpr:
		return v.VisitCallExpr(n)
	case *GroupExpr:
		return v.VisitGroupExpr(n)
	default:
		var zero T
		return zero
	}
}

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false, the children
// of that node are not visited.
//
// Example: count all identifiers
//
//	count := 0
//	ast.Walk(root, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, e := range n.Exprs {
			Walk(e, fn)
		}

	case *NumLit, *Ident:
		// no children

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *UnaryExpr:
		Walk(n.Expr, fn)

	case *AssignExpr:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *CallExpr:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *GroupExpr:
		Walk(n.Expr, fn)
	}
}

// Inspect traverses an AST with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the
// root node. If fn returns false, the children are not visited.
func Inspect(node Node, fn func(node, parent Node) bool) {
	inspect(node, nil, fn)
}

func inspect(node, parent Node, fn func(node, parent Node) bool) {
	if node == nil || !fn(node, parent) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, e := range n.Exprs {
			inspect(e, n, fn)
		}

	case *NumLit, *Ident:
		// no children

	case *BinaryExpr:
		inspect(n.Left, n, fn)
		inspect(n.Right, n, fn)

	case *UnaryExpr:
		inspect(n.Expr, n, fn)

	case *AssignExpr:
		inspect(n.Target, n, fn)
		inspect(n.Value, n, fn)

	case *CallExpr:
		for _, arg := range n.Args {
			inspect(arg, n, fn)
		}

	case *GroupExpr:
		inspect(n.Expr, n, fn)
	}
}

// WalkFunc is a convenience type for walk callbacks.
type WalkFunc func(Node) bool

// InspectFunc is a convenience type for inspect callbacks.
type InspectFunc func(node, parent Node) bool
