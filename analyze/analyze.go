// Package analyze provides aggregate helpers over parsed expression
// trees: node counts, a complexity score, and identifier extraction.
package analyze

import (
	"github.com/coregx/coregex"

	"github.com/kolkov/uexpr/ast"
)

// NodeCount returns the total number of nodes in the tree.
func NodeCount(root ast.Node) int {
	count := 0
	ast.Walk(root, func(ast.Node) bool {
		count++
		return true
	})
	return count
}

// CountByKind returns node counts keyed by variant name.
func CountByKind(root ast.Node) map[string]int {
	counts := make(map[string]int)
	ast.Walk(root, func(n ast.Node) bool {
		counts[kindName(n)]++
		return true
	})
	return counts
}

func kindName(n ast.Node) string {
	switch n.(type) {
	case *ast.Program:
		return "program"
	case *ast.NumLit:
		return "literal"
	case *ast.Ident:
		return "identifier"
	case *ast.BinaryExpr:
		return "binary"
	case *ast.UnaryExpr:
		return "unary"
	case *ast.AssignExpr:
		return "assignment"
	case *ast.CallExpr:
		return "call"
	case *ast.GroupExpr:
		return "group"
	default:
		return "unknown"
	}
}

// Complexity returns a weighted score for the tree: operations and
// assignments cost 1, calls cost 2, atoms and grouping are free.
func Complexity(root ast.Node) int {
	score := 0
	ast.Walk(root, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.BinaryExpr, *ast.UnaryExpr, *ast.AssignExpr:
			score++
		case *ast.CallExpr:
			score += 2
		}
		return true
	})
	return score
}

// Identifiers returns every distinct identifier in the tree, in first
// appearance order. Function call names are included.
func Identifiers(root ast.Node) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	ast.Walk(root, func(n ast.Node) bool {
		switch e := n.(type) {
		case *ast.Ident:
			add(e.Name)
		case *ast.CallExpr:
			add(e.Name)
		}
		return true
	})
	return names
}

// MatchIdentifiers returns the distinct identifiers whose name matches
// the given regex pattern, in first appearance order.
func MatchIdentifiers(root ast.Node, pattern string) ([]string, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	var matched []string
	for _, name := range Identifiers(root) {
		if re.MatchString(name) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}
