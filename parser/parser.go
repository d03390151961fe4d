package parser

import (
	"fmt"
	"strings"

	"github.com/kolkov/uexpr/ast"
	"github.com/kolkov/uexpr/lexer"
	"github.com/kolkov/uexpr/token"
)

// DefaultMaxDepth is the default recursion ceiling. Expression nesting
// deeper than this is reported as a NestingTooDeep error instead of
// exhausting the call stack.
const DefaultMaxDepth = 200

// Parser is a recursive descent parser over a completed token stream.
// The stream must end in exactly one EOF token.
type Parser struct {
	tokens []lexer.Token // Input tokens
	idx    int           // Index of the current token
	tok    lexer.Token   // Current token (tokens[idx])

	maxDepth int    // Recursion ceiling
	depth    int    // Current rule nesting
	tracer   Tracer // Optional operation observer, may be nil
}

// New creates a Parser for the given token stream.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
	}
	p.tok = p.at(0)
	return p
}

// SetMaxDepth overrides the recursion ceiling. Values < 1 are ignored.
func (p *Parser) SetMaxDepth(n int) {
	if n >= 1 {
		p.maxDepth = n
	}
}

// SetTracer installs an observer for rule entry/exit hooks.
func (p *Parser) SetTracer(t Tracer) {
	p.tracer = t
}

// Parse parses a full expression from source text.
// Convenience wrapper over tokenizing and New(...).Parse.
func Parse(src string) (ast.Expr, error) {
	return New(lexer.Tokenize(src)).Parse()
}

// ParseProgram parses a multi-statement program from source text.
func ParseProgram(src string) (*ast.Program, error) {
	return New(lexer.Tokenize(src)).ParseProgram()
}

// -----------------------------------------------------------------------------
// Entry points
// -----------------------------------------------------------------------------

// Parse parses exactly one expression and requires the entire stream
// (except the trailing EOF) to be consumed by it. It fails fast on the
// first syntax error.
func (p *Parser) Parse() (ast.Expr, error) {
	if err := p.verifyStream(); err != nil {
		return nil, err
	}
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != token.EOF {
		return nil, unexpectedError(p.tok, token.EOF)
	}
	return expr, nil
}

// ParseProgram parses a sequence of expression statements until EOF.
// COMMENT tokens are skippable separators between statements. It fails
// fast on the first syntax error.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	if err := p.verifyStream(); err != nil {
		return nil, err
	}

	p.skipSeparators()
	prog := &ast.Program{
		BaseExpr: ast.MakeBaseExpr(p.tok.Pos, p.tok.Pos),
	}
	for p.tok.Kind != token.EOF {
		expr, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		prog.Exprs = append(prog.Exprs, expr)
		p.skipSeparators()
	}
	prog.EndPos = p.tok.Pos
	return prog, nil
}

// verifyStream checks that the token stream is non-empty and terminated
// by an EOF token.
func (p *Parser) verifyStream() *ParseError {
	n := len(p.tokens)
	if n == 0 || p.tokens[n-1].Kind != token.EOF {
		pos := token.NoPos
		if n > 0 {
			pos = p.tokens[n-1].Pos
		}
		return &ParseError{
			Kind:    UnexpectedEndOfInput,
			Pos:     pos,
			Message: "token stream is missing its EOF terminator",
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// at returns the token at index i, clamped to the last token.
func (p *Parser) at(i int) lexer.Token {
	if n := len(p.tokens); i >= n {
		i = n - 1
	}
	if i < 0 {
		return lexer.Token{Kind: token.EOF}
	}
	return p.tokens[i]
}

// next advances to the next token. The cursor never moves past the
// terminal EOF token.
func (p *Parser) next() {
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	p.tok = p.at(p.idx)
}

// seek repositions the cursor at index i (used by error recovery).
func (p *Parser) seek(i int) {
	if max := len(p.tokens) - 1; i > max {
		i = max
	}
	p.idx = i
	p.tok = p.at(i)
}

// skipSeparators skips tokens with no content between statements.
func (p *Parser) skipSeparators() {
	for p.tok.Kind == token.COMMENT {
		p.next()
	}
}

// enter pushes one rule level, enforcing the recursion ceiling and
// notifying the tracer. On success the caller must pair it with leave.
func (p *Parser) enter(rule string) *ParseError {
	if p.depth >= p.maxDepth {
		return &ParseError{
			Kind:    NestingTooDeep,
			Pos:     p.tok.Pos,
			Token:   p.tok,
			Message: fmt.Sprintf("expression nested deeper than %d levels", p.maxDepth),
		}
	}
	p.depth++
	if p.tracer != nil {
		p.tracer.Enter(rule, p.tok)
	}
	return nil
}

func (p *Parser) leave(rule string, err error) {
	p.depth--
	if p.tracer != nil {
		p.tracer.Exit(rule, err)
	}
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

// parseAssignment parses the lowest-binding layer of the grammar.
// Assignment is right-recursive: after the binary layer returns, an '='
// lookahead turns the parsed expression into an assignment target,
// which must be an identifier.
func (p *Parser) parseAssignment() (expr ast.Expr, err error) {
	if derr := p.enter("assignment"); derr != nil {
		return nil, derr
	}
	defer func() { p.leave("assignment", err) }()

	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != token.ASSIGN {
		return left, nil
	}

	assign := p.tok
	target, ok := left.(*ast.Ident)
	if !ok {
		return nil, &ParseError{
			Kind:    InvalidAssignmentTarget,
			Pos:     left.Pos(),
			Token:   assign,
			Message: "left side of assignment must be an identifier",
		}
	}
	p.next() // consume '='

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	return &ast.AssignExpr{
		BaseExpr: ast.MakeBaseExpr(assign.Pos, value.End()),
		Target:   target,
		Value:    value,
	}, nil
}

// parseBinary implements precedence climbing. It parses one
// unary-or-higher operand, then folds binary operators whose table
// precedence is at least minPrec. Left-associative operators recurse
// with prec+1, right-associative ones with prec, which bounds how much
// the right operand may absorb.
func (p *Parser) parseBinary(minPrec int) (expr ast.Expr, err error) {
	if derr := p.enter("binary"); derr != nil {
		return nil, derr
	}
	defer func() { p.leave("binary", err) }()

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind.IsOperator() && p.tok.Kind.Precedence() >= minPrec {
		op := p.tok
		p.next()

		nextMin := op.Kind.Precedence()
		if op.Kind.Associativity() == token.LeftAssoc {
			nextMin++
		}
		right, err := p.parseBinary(nextMin)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(op.Pos, right.End()),
			Left:     left,
			Op:       op.Kind,
			Right:    right,
		}
	}
	return left, nil
}

// parseUnary parses unary minus, which self-nests so --5 works.
func (p *Parser) parseUnary() (expr ast.Expr, err error) {
	if derr := p.enter("unary"); derr != nil {
		return nil, derr
	}
	defer func() { p.leave("unary", err) }()

	if p.tok.Kind != token.SUB {
		return p.parsePrimary()
	}

	minus := p.tok
	p.next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{
		BaseExpr: ast.MakeBaseExpr(minus.Pos, operand.End()),
		Op:       token.SUB,
		Expr:     operand,
	}, nil
}

// primaryStart lists the kinds that may begin a primary expression,
// used both for diagnostics and targeted recovery.
var primaryStart = []token.Kind{token.NUMBER, token.NAME, token.LPAREN, token.SUB}

// parsePrimary parses primary expressions: literals, identifiers,
// function calls and parenthesized groups.
func (p *Parser) parsePrimary() (expr ast.Expr, err error) {
	if derr := p.enter("primary"); derr != nil {
		return nil, derr
	}
	defer func() { p.leave("primary", err) }()

	switch p.tok.Kind {
	case token.NUMBER:
		tok := p.tok
		p.next()
		return &ast.NumLit{
			BaseExpr: ast.MakeBaseExpr(tok.Pos, p.tok.Pos),
			Text:     tok.Value,
		}, nil

	case token.NAME:
		name := p.tok
		p.next()
		// A '(' glued to the identifier makes it a call; with space
		// between them it is a plain identifier followed by a group.
		if p.tok.Kind == token.LPAREN && adjacent(name, p.tok) {
			return p.parseCall(name)
		}
		return &ast.Ident{
			BaseExpr: ast.MakeBaseExpr(name.Pos, p.tok.Pos),
			Name:     name.Value,
		}, nil

	case token.LPAREN:
		return p.parseGroup()

	case token.ILLEGAL:
		return nil, p.tokenizeError(p.tok)

	case token.EOF:
		return nil, &ParseError{
			Kind:    UnexpectedEndOfInput,
			Pos:     p.tok.Pos,
			Token:   p.tok,
			Message: "unexpected end of input, expected an expression",
		}

	default:
		return nil, unexpectedError(p.tok, primaryStart...)
	}
}

// parseGroup parses a parenthesized expression. A missing closer is an
// UnmatchedParenthesis error at the opening paren's position.
func (p *Parser) parseGroup() (ast.Expr, error) {
	lparen := p.tok
	p.next() // consume '('

	inner, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != token.RPAREN {
		return nil, &ParseError{
			Kind:    UnmatchedParenthesis,
			Pos:     lparen.Pos,
			Token:   lparen,
			Message: fmt.Sprintf("parenthesis opened at %s is never closed", lparen.Pos),
		}
	}
	p.next() // consume ')'

	return &ast.GroupExpr{
		BaseExpr: ast.MakeBaseExpr(lparen.Pos, p.tok.Pos),
		Expr:     inner,
	}, nil
}

// parseCall parses a function call with zero or one argument.
func (p *Parser) parseCall(name lexer.Token) (ast.Expr, error) {
	p.next() // consume '('

	var args []ast.Expr
	if p.tok.Kind != token.RPAREN {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if p.tok.Kind != token.RPAREN {
		return nil, unexpectedError(p.tok, token.RPAREN)
	}
	p.next() // consume ')'

	return &ast.CallExpr{
		BaseExpr: ast.MakeBaseExpr(name.Pos, p.tok.Pos),
		Name:     name.Value,
		Args:     args,
	}, nil
}

// tokenizeError converts an ILLEGAL token into a TokenizeError. The
// structured cause attached by the lexer is used when present; tokens
// built by hand fall back to inspecting the lexeme text (two or more
// dots means a malformed number, anything else an invalid character).
func (p *Parser) tokenizeError(tok lexer.Token) *ParseError {
	cause := tok.Err
	if cause == nil {
		cause = inferLexError(tok)
	}
	return &ParseError{
		Kind:    TokenizeError,
		Pos:     tok.Pos,
		Token:   tok,
		Cause:   cause,
		Message: cause.Error(),
	}
}

// inferLexError is the lexeme-text heuristic for ILLEGAL tokens that
// carry no structured cause. Best-effort: inputs that merely resemble a
// malformed number are classified as one.
func inferLexError(tok lexer.Token) *lexer.Error {
	if strings.Count(tok.Value, ".") >= 2 {
		return &lexer.Error{
			Kind:   lexer.MalformedNumber,
			Lexeme: tok.Value,
			Pos:    tok.Pos,
		}
	}
	lexeme := tok.Value
	if lexeme != "" {
		lexeme = string([]rune(lexeme)[0])
	}
	return &lexer.Error{
		Kind:   lexer.InvalidCharacter,
		Lexeme: lexeme,
		Pos:    tok.Pos,
	}
}

// adjacent reports whether b starts at the byte immediately after a.
func adjacent(a, b lexer.Token) bool {
	return b.Pos.Offset == a.Pos.Offset+len(a.Value)
}
