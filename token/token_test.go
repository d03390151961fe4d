package token

import "testing"

func TestIsOperator(t *testing.T) {
	operators := []Kind{ADD, SUB, MUL, DIV, MOD, POW}
	for _, k := range operators {
		if !k.IsOperator() {
			t.Errorf("%v.IsOperator() = false, want true", k)
		}
	}
	others := []Kind{ILLEGAL, EOF, COMMENT, ASSIGN, LPAREN, RPAREN, NAME, NUMBER}
	for _, k := range others {
		if k.IsOperator() {
			t.Errorf("%v.IsOperator() = true, want false", k)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	if !NAME.IsLiteral() || !NUMBER.IsLiteral() {
		t.Error("NAME and NUMBER must be literals")
	}
	if ADD.IsLiteral() || EOF.IsLiteral() {
		t.Error("ADD and EOF must not be literals")
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{ADD, PrecAdd},
		{SUB, PrecAdd},
		{MUL, PrecMul},
		{DIV, PrecMul},
		{MOD, PrecMul},
		{POW, PrecPow},
		{ASSIGN, 0},
		{NAME, 0},
		{EOF, 0},
	}
	for _, tt := range tests {
		if got := tt.kind.Precedence(); got != tt.want {
			t.Errorf("%v.Precedence() = %d, want %d", tt.kind, got, tt.want)
		}
	}

	// Ordering: ^ binds tighter than * / %, which bind tighter than + -.
	if !(POW.Precedence() > MUL.Precedence() && MUL.Precedence() > ADD.Precedence()) {
		t.Error("precedence ordering broken")
	}
}

func TestAssociativity(t *testing.T) {
	for _, k := range []Kind{ADD, SUB, MUL, DIV, MOD} {
		if k.Associativity() != LeftAssoc {
			t.Errorf("%v should be left-associative", k)
		}
	}
	if POW.Associativity() != RightAssoc {
		t.Error("POW should be right-associative")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{ADD, "+"},
		{POW, "^"},
		{ASSIGN, "="},
		{LPAREN, "("},
		{NAME, "name"},
		{NUMBER, "number"},
		{EOF, "end of file"},
		{ILLEGAL, "illegal"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	if got := p.String(); got != "3:7" {
		t.Errorf("String() = %q, want %q", got, "3:7")
	}
}

func TestPositionValidity(t *testing.T) {
	if NoPos.IsValid() {
		t.Error("NoPos must be invalid")
	}
	if !(Position{Line: 1, Column: 1}).IsValid() {
		t.Error("1:1 must be valid")
	}
}

func TestPositionOrdering(t *testing.T) {
	a := Position{Line: 1, Column: 5, Offset: 4}
	b := Position{Line: 2, Column: 1, Offset: 6}
	c := Position{Line: 2, Column: 3, Offset: 8}

	if !a.Before(b) || !b.Before(c) {
		t.Error("Before ordering broken")
	}
	if !c.After(b) || !b.After(a) {
		t.Error("After ordering broken")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a position must not order before or after itself")
	}
}
