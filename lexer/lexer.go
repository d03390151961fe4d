// Package lexer provides uexpr source text tokenization.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/kolkov/uexpr/token"
)

// eof is the sentinel rune reported once the source is exhausted.
const eof = -1

// Token represents a scanned token with its kind, raw lexeme and position.
type Token struct {
	Kind token.Kind
	Pos  token.Position
	// Value is the raw lexeme, the exact substring of source text the
	// token was derived from. Empty for EOF.
	Value string
	// Err carries the structured cause for ILLEGAL tokens produced by
	// the lexer. Nil for all other kinds.
	Err *Error
}

// Lexer tokenizes uexpr source text.
//
// Malformed input never stops a scan; it degrades into ILLEGAL tokens
// carrying the offending lexeme, and the caller decides how to react.
type Lexer struct {
	src     []byte         // Source text
	ch      rune           // Current rune (eof at end of input)
	offset  int            // Byte offset just past the current rune
	pos     token.Position // Position of the current rune
	nextPos token.Position // Position of the following rune
}

// New creates a new Lexer for the given source text.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first rune
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Tokenize scans the entire source and returns every token, ending with
// exactly one EOF token. It never fails: malformed lexemes come back as
// ILLEGAL tokens in place.
func Tokenize(src string) []Token {
	l := NewFromString(src)
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Scan scans and returns the next token. After the source is exhausted
// it keeps returning EOF tokens.
func (l *Lexer) Scan() Token {
	l.skipWhitespace()

	// Record position before scanning
	pos := l.pos

	if l.ch == eof {
		return Token{Kind: token.EOF, Pos: pos}
	}

	switch {
	case isDigit(l.ch):
		tok, lerr := l.scanNumber(pos)
		if lerr != nil {
			// The malformed-number path is caught here so that the
			// lexer, observed externally, never raises.
			return errorToken(lerr)
		}
		return tok

	case isIdentStart(l.ch):
		return l.scanIdent(pos)
	}

	switch l.ch {
	case '/':
		if l.peek() == '/' {
			return l.scanComment(pos)
		}
		l.next()
		return Token{Kind: token.DIV, Pos: pos, Value: "/"}

	case '+':
		l.next()
		return Token{Kind: token.ADD, Pos: pos, Value: "+"}
	case '-':
		l.next()
		return Token{Kind: token.SUB, Pos: pos, Value: "-"}
	case '*':
		l.next()
		return Token{Kind: token.MUL, Pos: pos, Value: "*"}
	case '%':
		l.next()
		return Token{Kind: token.MOD, Pos: pos, Value: "%"}
	case '^':
		l.next()
		return Token{Kind: token.POW, Pos: pos, Value: "^"}
	case '=':
		l.next()
		return Token{Kind: token.ASSIGN, Pos: pos, Value: "="}
	case '(':
		l.next()
		return Token{Kind: token.LPAREN, Pos: pos, Value: "("}
	case ')':
		l.next()
		return Token{Kind: token.RPAREN, Pos: pos, Value: ")"}

	default:
		ch := l.ch
		l.next()
		return errorToken(&Error{
			Kind:   InvalidCharacter,
			Lexeme: string(ch),
			Pos:    pos,
		})
	}
}

// scanNumber scans a number token: a maximal digit run with an optional
// decimal part. The decimal part is consumed only if at least one digit
// follows the dot, so "3." stops at "3" and leaves the dot for the next
// scan. A second dot directly after the decimal part makes the whole
// greedy digit/dot run malformed, reported via the returned *Error.
func (l *Lexer) scanNumber(pos token.Position) (Token, *Error) {
	start := pos.Offset

	for isDigit(l.ch) {
		l.next()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		l.next() // consume '.'
		for isDigit(l.ch) {
			l.next()
		}
		if l.ch == '.' {
			for l.ch == '.' || isDigit(l.ch) {
				l.next()
			}
			return Token{}, &Error{
				Kind:   MalformedNumber,
				Lexeme: string(l.src[start:l.pos.Offset]),
				Pos:    pos,
			}
		}
	}

	return Token{
		Kind:  token.NUMBER,
		Pos:   pos,
		Value: string(l.src[start:l.pos.Offset]),
	}, nil
}

// scanIdent scans an identifier: a letter or underscore followed by
// letters, digits and underscores. There are no reserved words.
func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for isIdentContinue(l.ch) {
		l.next()
	}
	return Token{
		Kind:  token.NAME,
		Pos:   pos,
		Value: string(l.src[start:l.pos.Offset]),
	}
}

// scanComment scans a // line comment up to (and excluding) the end of
// line. The lexeme keeps the full //... text.
func (l *Lexer) scanComment(pos token.Position) Token {
	start := pos.Offset
	for l.ch != eof && l.ch != '\n' {
		l.next()
	}
	return Token{
		Kind:  token.COMMENT,
		Pos:   pos,
		Value: string(l.src[start:l.pos.Offset]),
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch != eof && unicode.IsSpace(l.ch) {
		l.next()
	}
}

// next advances the cursor by one rune, maintaining line and column.
// A newline bumps the line and resets the column to 1.
func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.ch = eof
		l.pos = l.nextPos
		return
	}

	l.pos = l.nextPos

	r, size := utf8.DecodeRune(l.src[l.offset:])
	l.ch = r
	l.offset += size
	l.nextPos.Offset = l.offset
	l.nextPos.Column++
	if r == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// peek returns the rune after the current one without consuming it.
func (l *Lexer) peek() rune {
	if l.offset >= len(l.src) {
		return eof
	}
	r, _ := utf8.DecodeRune(l.src[l.offset:])
	return r
}

func errorToken(lerr *Error) Token {
	return Token{
		Kind:  token.ILLEGAL,
		Pos:   lerr.Pos,
		Value: lerr.Lexeme,
		Err:   lerr,
	}
}

// Helper functions

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentContinue(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
