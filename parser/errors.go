// Package parser provides a recursive descent parser for uexpr
// expressions, with precedence climbing for binary operators and
// panic-mode error recovery.
package parser

import (
	"fmt"
	"strings"

	"github.com/kolkov/uexpr/lexer"
	"github.com/kolkov/uexpr/token"
)

// ErrKind classifies parse errors.
type ErrKind uint8

const (
	// UnexpectedToken reports a token that cannot appear at the
	// current point of the grammar. Expected lists the kinds that
	// would have been accepted.
	UnexpectedToken ErrKind = iota
	// UnexpectedEndOfInput reports a token stream that ran out
	// mid-expression, or one missing its terminal EOF token.
	UnexpectedEndOfInput
	// InvalidAssignmentTarget reports an '=' whose left side is not
	// an identifier.
	InvalidAssignmentTarget
	// UnmatchedParenthesis reports a group whose closing ')' never
	// arrived. Pos is the opening paren.
	UnmatchedParenthesis
	// TokenizeError wraps a lexical error surfaced through an ILLEGAL
	// token the parser ran into.
	TokenizeError
	// NestingTooDeep reports input whose nesting exceeds the parser's
	// configured recursion ceiling.
	NestingTooDeep
)

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and always carries a source
// position; UnexpectedToken errors additionally carry the set of token
// kinds that would have been accepted, so callers can build actionable
// diagnostics without re-deriving them from the grammar.
type ParseError struct {
	Kind     ErrKind        // Error classification
	Pos      token.Position // Position where the error occurred
	Token    lexer.Token    // Offending token, if any
	Expected []token.Kind   // Kinds that would have been accepted (UnexpectedToken)
	Cause    *lexer.Error   // Wrapped lexical error (TokenizeError)
	Message  string         // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped lexical error, if any.
func (e *ParseError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return nil
}

// ErrorList is a list of parse errors, as accumulated by recovery mode.
type ErrorList []*ParseError

// Error returns a combined error message for all errors.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
	}
}

// Err returns an error if there are any errors, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// kindList renders a set of token kinds for error messages.
func kindList(kinds []token.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, " or ")
}

// unexpectedError creates a ParseError for an unexpected token.
func unexpectedError(got lexer.Token, expected ...token.Kind) *ParseError {
	return &ParseError{
		Kind:     UnexpectedToken,
		Pos:      got.Pos,
		Token:    got,
		Expected: expected,
		Message:  fmt.Sprintf("expected %s, got %s", kindList(expected), tokenDesc(got)),
	}
}

// tokenDesc returns a description of a token for error messages.
func tokenDesc(tok lexer.Token) string {
	switch tok.Kind {
	case token.NAME, token.NUMBER, token.ILLEGAL:
		return fmt.Sprintf("%q", tok.Value)
	default:
		return tok.Kind.String()
	}
}
