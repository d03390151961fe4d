package analyze

import (
	"testing"

	"github.com/kolkov/uexpr/ast"
	"github.com/kolkov/uexpr/parser"
)

func mustParse(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return expr
}

func TestNodeCount(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"42", 1},
		{"1 + 2", 3},
		{"x = 5", 3},
		{"-x", 2},
		{"(1)", 2},
		{"sin(x)", 2},
		{"x = sin(y + 1) * 2", 8},
	}
	for _, tt := range tests {
		if got := NodeCount(mustParse(t, tt.src)); got != tt.want {
			t.Errorf("NodeCount(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestCountByKind(t *testing.T) {
	counts := CountByKind(mustParse(t, "x = sin(y + 1) * -(2 ^ z)"))

	want := map[string]int{
		"assignment": 1,
		"identifier": 3, // x, y, z
		"binary":     3, // *, +, ^
		"unary":      1,
		"call":       1,
		"group":      1,
		"literal":    2, // 1, 2
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("counts[%q] = %d, want %d", kind, counts[kind], n)
		}
	}
	if counts["program"] != 0 {
		t.Errorf("counts[program] = %d for a single expression", counts["program"])
	}
}

func TestCountByKindProgram(t *testing.T) {
	prog, err := parser.ParseProgram("x = 1\ny = 2")
	if err != nil {
		t.Fatal(err)
	}
	counts := CountByKind(prog)
	if counts["program"] != 1 {
		t.Errorf("counts[program] = %d, want 1", counts["program"])
	}
	if counts["assignment"] != 2 {
		t.Errorf("counts[assignment] = %d, want 2", counts["assignment"])
	}
}

func TestComplexity(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"42", 0},
		{"(42)", 0},
		{"1 + 2", 1},
		{"-x", 1},
		{"x = 5", 1},
		{"sin(x)", 2},
		{"x = sin(y + 1) * 2", 5}, // assign + mul + call*2 + add
	}
	for _, tt := range tests {
		if got := Complexity(mustParse(t, tt.src)); got != tt.want {
			t.Errorf("Complexity(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"none", "1 + 2", nil},
		{"single", "x", []string{"x"}},
		{"first appearance order", "b + a + b + c", []string{"b", "a", "c"}},
		{"call names included", "sin(x) + sin(y)", []string{"sin", "x", "y"}},
		{"assignment target included", "total = rate * base", []string{"total", "rate", "base"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identifiers(mustParse(t, tt.src))
			if len(got) != len(tt.want) {
				t.Fatalf("Identifiers(%q) = %v, want %v", tt.src, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Identifiers(%q)[%d] = %q, want %q", tt.src, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatchIdentifiers(t *testing.T) {
	root := mustParse(t, "rate_a = rate_b + total + sin(rate_c)")

	t.Run("prefix pattern", func(t *testing.T) {
		got, err := MatchIdentifiers(root, "^rate_")
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"rate_a", "rate_b", "rate_c"}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("match %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := MatchIdentifiers(root, "^z")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
	})

	t.Run("bad pattern", func(t *testing.T) {
		if _, err := MatchIdentifiers(root, "("); err == nil {
			t.Error("invalid pattern did not error")
		}
	})
}
