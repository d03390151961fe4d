package lexer

import (
	"fmt"

	"github.com/kolkov/uexpr/token"
)

// ErrorKind classifies lexical errors.
type ErrorKind uint8

const (
	// InvalidCharacter reports a character with no place in the language.
	InvalidCharacter ErrorKind = iota
	// MalformedNumber reports a numeric lexeme with more than one
	// decimal point, e.g. "3.14.15".
	MalformedNumber
	// UnexpectedEndOfInput reports source that ended mid-lexeme.
	UnexpectedEndOfInput
)

// Error describes a lexical error. The lexer never returns one directly;
// it is attached to the ILLEGAL token produced in place of the bad
// lexeme, so downstream code can recover the structured cause instead of
// re-deriving it from the lexeme text.
type Error struct {
	Kind   ErrorKind      // What went wrong
	Lexeme string         // The offending source substring
	Pos    token.Position // Where it starts
}

// Error returns a formatted message with position information.
func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("%s: invalid character %q", e.Pos, e.Lexeme)
	case MalformedNumber:
		return fmt.Sprintf("%s: malformed number %q", e.Pos, e.Lexeme)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("%s: unexpected end of input", e.Pos)
	default:
		return fmt.Sprintf("%s: lexical error %q", e.Pos, e.Lexeme)
	}
}
