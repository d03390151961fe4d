// Package token defines lexical tokens for the uexpr expression language.
package token

// Kind represents a lexical token kind.
type Kind uint8

const (
	// Special tokens
	ILLEGAL Kind = iota // <illegal>
	EOF                 // EOF
	COMMENT             // comment

	// Binary operators
	operatorStart
	ADD // +
	SUB // -
	MUL // *
	DIV // /
	MOD // %
	POW // ^
	operatorEnd

	// Delimiters
	ASSIGN // =
	LPAREN // (
	RPAREN // )

	// Literals
	NAME   // name
	NUMBER // number
)

// IsOperator returns true if the kind is a binary arithmetic operator.
func (k Kind) IsOperator() bool {
	return k > operatorStart && k < operatorEnd
}

// IsLiteral returns true if the kind is a literal (name or number).
func (k Kind) IsLiteral() bool {
	return k == NAME || k == NUMBER
}

// String returns the display name of the kind, suitable for diagnostics.
func (k Kind) String() string {
	switch k {
	case ILLEGAL:
		return "illegal"
	case EOF:
		return "end of file"
	case COMMENT:
		return "comment"
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case MOD:
		return "%"
	case POW:
		return "^"
	case ASSIGN:
		return "="
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case NAME:
		return "name"
	case NUMBER:
		return "number"
	default:
		return "unknown"
	}
}

// Assoc describes binary operator associativity.
type Assoc uint8

const (
	LeftAssoc Assoc = iota
	RightAssoc
)

// Precedence levels for binary operators. Higher binds tighter.
// Assignment sits below all of them and is parsed as its own
// right-recursive layer by the parser.
const (
	PrecAdd = 2 // + -
	PrecMul = 3 // * / %
	PrecPow = 4 // ^
)

// precedences is the static operator lookup table. Initialized once,
// read-only thereafter.
var precedences = [...]struct {
	prec  int
	assoc Assoc
}{
	ADD: {PrecAdd, LeftAssoc},
	SUB: {PrecAdd, LeftAssoc},
	MUL: {PrecMul, LeftAssoc},
	DIV: {PrecMul, LeftAssoc},
	MOD: {PrecMul, LeftAssoc},
	POW: {PrecPow, RightAssoc},
}

// Precedence returns the binding strength of a binary operator,
// or 0 if the kind is not a binary operator.
func (k Kind) Precedence() int {
	if !k.IsOperator() {
		return 0
	}
	return precedences[k].prec
}

// Associativity returns the associativity of a binary operator.
// Non-operators report LeftAssoc.
func (k Kind) Associativity() Assoc {
	if !k.IsOperator() {
		return LeftAssoc
	}
	return precedences[k].assoc
}
