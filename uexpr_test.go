package uexpr

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/kolkov/uexpr/ast"
	"github.com/kolkov/uexpr/parser"
	"github.com/kolkov/uexpr/token"
)

var ignorePos = cmpopts.IgnoreTypes(token.Position{})

func TestTokenize(t *testing.T) {
	toks := Tokenize("x = 5")
	kinds := []token.Kind{token.NAME, token.ASSIGN, token.NUMBER, token.EOF}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(kinds))
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestParse(t *testing.T) {
	expr, err := Parse("rate = base * 1.05")
	if err != nil {
		t.Fatal(err)
	}
	root, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("root is %T, want *ast.AssignExpr", expr)
	}
	if root.Target.Name != "rate" {
		t.Errorf("target = %q, want %q", root.Target.Name, "rate")
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("5 = x")
	pe, ok := AsParseError(err)
	if !ok {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if pe.Kind != parser.InvalidAssignmentTarget {
		t.Errorf("kind = %v, want InvalidAssignmentTarget", pe.Kind)
	}

	pos, ok := ErrorPosition(err)
	if !ok {
		t.Fatal("no position on parse error")
	}
	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("pos = %s, want 1:1", pos)
	}
}

func TestErrorPositionMiss(t *testing.T) {
	if _, ok := ErrorPosition(errors.New("boom")); ok {
		t.Error("unrelated error reported a position")
	}
}

func TestParseProgramAPI(t *testing.T) {
	prog, err := ParseProgram("x = 1 // seed\ny = x ^ 2")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Exprs) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Exprs))
	}
}

func TestParseWithConfig(t *testing.T) {
	t.Run("depth ceiling", func(t *testing.T) {
		src := strings.Repeat("(", 30) + "1" + strings.Repeat(")", 30)
		_, err := ParseWith(src, &Config{MaxDepth: 10})
		pe, ok := AsParseError(err)
		if !ok || pe.Kind != parser.NestingTooDeep {
			t.Errorf("got %v, want NestingTooDeep", err)
		}
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		if _, err := ParseWith("1 + 2", nil); err != nil {
			t.Errorf("nil config: %v", err)
		}
	})

	t.Run("tracer is invoked", func(t *testing.T) {
		var sb strings.Builder
		_, err := ParseWith("1 + 2", &Config{Trace: parser.NewWriterTracer(&sb)})
		if err != nil {
			t.Fatal(err)
		}
		if sb.Len() == 0 {
			t.Error("tracer produced no output")
		}
	})
}

func TestParseWithRecoveryAPI(t *testing.T) {
	expr, errs := ParseWithRecovery("x = 1 5 = y", nil)
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}
	if expr == nil {
		t.Fatal("partial AST discarded")
	}
	if _, ok := expr.(*ast.AssignExpr); !ok {
		t.Errorf("partial AST is %T, want *ast.AssignExpr", expr)
	}
}

func TestMustParse(t *testing.T) {
	expr := MustParse("2 + 3")
	if _, ok := expr.(*ast.BinaryExpr); !ok {
		t.Errorf("got %T, want *ast.BinaryExpr", expr)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse on bad input did not panic")
		}
	}()
	MustParse("5 = x")
}

// Parsing the printed form of any parseable expression yields a
// structurally equal tree.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		"42",
		"3.14",
		"x",
		"2 + 3 * 4",
		"2 ^ 3 ^ 4",
		"10 - 5 - 2",
		"a = b = 5",
		"(2 + 3) * 4",
		"sin(x + 1)",
		"rand()",
		"--x",
		"-(a + b) ^ 2 % c",
		"x = sin(y) * (1 - cos(y))",
	}
	for _, src := range sources {
		first, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		printed := ast.String(first)
		second, err := Parse(printed)
		if err != nil {
			t.Fatalf("reparse of %q (from %q): %v", printed, src, err)
		}
		if diff := cmp.Diff(first, second, ignorePos); diff != "" {
			t.Errorf("round trip of %q changed the tree (-first +second):\n%s", src, diff)
		}
	}
}

func TestProgramRoundTrip(t *testing.T) {
	src := "x = 1\ny = x + 2\nsin(y)"
	first, err := ParseProgram(src)
	if err != nil {
		t.Fatal(err)
	}
	printed := ast.String(first)
	second, err := ParseProgram(printed)
	if err != nil {
		t.Fatalf("reparse of %q: %v", printed, err)
	}
	if diff := cmp.Diff(first, second, ignorePos); diff != "" {
		t.Errorf("program round trip changed the tree (-first +second):\n%s", diff)
	}
}
