package uexpr

import (
	"errors"

	"github.com/kolkov/uexpr/lexer"
	"github.com/kolkov/uexpr/parser"
	"github.com/kolkov/uexpr/token"
)

// ParseError is the syntax error type returned by Parse, ParseProgram
// and accumulated by ParseWithRecovery.
type ParseError = parser.ParseError

// ErrorList is a list of parse errors.
type ErrorList = parser.ErrorList

// TokenizeError is the structured lexical error carried by ILLEGAL
// tokens and wrapped by TokenizeError-kind parse errors.
type TokenizeError = lexer.Error

// AsParseError reports whether err is (or wraps) a *ParseError and
// returns it.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ErrorPosition returns the source position carried by err, if any.
func ErrorPosition(err error) (token.Position, bool) {
	if pe, ok := AsParseError(err); ok {
		return pe.Pos, true
	}
	var le *lexer.Error
	if errors.As(err, &le) {
		return le.Pos, true
	}
	return token.NoPos, false
}
