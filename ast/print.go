package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes expressions back out as source text.
//
// The output is faithful: because explicit parentheses survive parsing
// as GroupExpr nodes, a parser-produced tree re-stringified by the
// Printer parses back into a structurally equal tree (for input free of
// comments and malformed lexemes).
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the source form of the node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		p.printf("<nil>")
		return
	}

	switch n := node.(type) {
	case *Program:
		for i, e := range n.Exprs {
			if i > 0 {
				p.printf("\n")
			}
			p.printNode(e)
		}

	case *NumLit:
		p.printf("%s", n.Text)

	case *Ident:
		p.printf("%s", n.Name)

	case *BinaryExpr:
		p.printNode(n.Left)
		p.printf(" %s ", n.Op)
		p.printNode(n.Right)

	case *UnaryExpr:
		p.printf("%s", n.Op)
		p.printNode(n.Expr)

	case *AssignExpr:
		p.printNode(n.Target)
		p.printf(" = ")
		p.printNode(n.Value)

	case *CallExpr:
		p.printf("%s(", n.Name)
		for i, arg := range n.Args {
			if i > 0 {
				p.printf(", ")
			}
			p.printNode(arg)
		}
		p.printf(")")

	case *GroupExpr:
		p.printf("(")
		p.printNode(n.Expr)
		p.printf(")")

	default:
		p.printf("<%T>", node)
	}
}

// String returns the source form of the node.
func String(node Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	p.Print(node)
	return sb.String()
}

// Dump returns an indented structural representation of the node,
// useful for debugging and CLI output.
func Dump(node Node) string {
	var sb strings.Builder
	dump(&sb, node, 0)
	return sb.String()
}

func dump(sb *strings.Builder, node Node, indent int) {
	pad := strings.Repeat("  ", indent)
	if node == nil {
		fmt.Fprintf(sb, "%s<nil>\n", pad)
		return
	}

	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(sb, "%sProgram\n", pad)
		for _, e := range n.Exprs {
			dump(sb, e, indent+1)
		}

	case *NumLit:
		fmt.Fprintf(sb, "%sNumLit %s @%s\n", pad, n.Text, n.StartPos)

	case *Ident:
		fmt.Fprintf(sb, "%sIdent %s @%s\n", pad, n.Name, n.StartPos)

	case *BinaryExpr:
		fmt.Fprintf(sb, "%sBinaryExpr %s @%s\n", pad, n.Op, n.StartPos)
		dump(sb, n.Left, indent+1)
		dump(sb, n.Right, indent+1)

	case *UnaryExpr:
		fmt.Fprintf(sb, "%sUnaryExpr %s @%s\n", pad, n.Op, n.StartPos)
		dump(sb, n.Expr, indent+1)

	case *AssignExpr:
		fmt.Fprintf(sb, "%sAssignExpr @%s\n", pad, n.StartPos)
		dump(sb, n.Target, indent+1)
		dump(sb, n.Value, indent+1)

	case *CallExpr:
		fmt.Fprintf(sb, "%sCallExpr %s @%s\n", pad, n.Name, n.StartPos)
		for _, arg := range n.Args {
			dump(sb, arg, indent+1)
		}

	case *GroupExpr:
		fmt.Fprintf(sb, "%sGroupExpr @%s\n", pad, n.StartPos)
		dump(sb, n.Expr, indent+1)

	default:
		fmt.Fprintf(sb, "%s<%T>\n", pad, node)
	}
}
