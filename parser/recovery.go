package parser

import (
	"github.com/kolkov/uexpr/ast"
	"github.com/kolkov/uexpr/token"
)

// ParseWithRecovery attempts the same grammar as Parse, but instead of
// aborting on the first syntax error it records the error, resynchronizes
// the cursor, and keeps going, so a single pass can report every error in
// the input. It returns whatever partial AST was still derivable (nil if
// none) along with all accumulated errors.
func (p *Parser) ParseWithRecovery() (ast.Expr, ErrorList) {
	if err := p.verifyStream(); err != nil {
		return nil, ErrorList{err}
	}

	var errs ErrorList
	var result ast.Expr

	for {
		expr, err := p.parseAssignment()
		if err == nil {
			if result == nil {
				result = expr
			}
			if p.tok.Kind == token.EOF {
				break
			}
			// Leftover input after a complete expression.
			err = unexpectedError(p.tok, token.EOF)
		}

		perr := toParseError(err)
		errs = append(errs, perr)

		if !p.recoverFrom(perr, p.idx) {
			break
		}
		if p.tok.Kind == token.EOF {
			break
		}
	}

	return result, errs
}

// recoverFrom repositions the cursor after an error. Targeted recovery
// keyed by the error kind runs first; panic mode is the fallback. Either
// way the recovered position must be at EOF or strictly past the index
// where the error was raised; anything else is rejected so recovery can
// never loop in place.
func (p *Parser) recoverFrom(perr *ParseError, failIdx int) bool {
	if idx, ok := p.targetedRecovery(perr, failIdx); ok {
		if p.at(idx).Kind == token.EOF || idx > failIdx {
			p.seek(idx)
			return true
		}
	}

	// Panic mode: advance past the offending token, then discard
	// tokens until a synchronization point.
	idx := failIdx + 1
	for idx < len(p.tokens)-1 && !isSyncPoint(p.at(idx).Kind) {
		idx++
	}
	if p.at(idx).Kind == token.EOF || idx > failIdx {
		p.seek(idx)
		return true
	}
	return false
}

// targetedRecovery picks a resynchronization index based on what kind
// of error occurred. Returns false when no target exists, leaving the
// decision to panic mode.
func (p *Parser) targetedRecovery(perr *ParseError, failIdx int) (int, bool) {
	switch perr.Kind {
	case UnmatchedParenthesis:
		// Seek the closer that balances the open paren: depth starts
		// at 1, '(' increments, ')' decrements, depth 0 wins.
		depth := 1
		for i := failIdx; i < len(p.tokens); i++ {
			switch p.at(i).Kind {
			case token.LPAREN:
				depth++
			case token.RPAREN:
				depth--
				if depth == 0 {
					return i + 1, true
				}
			case token.EOF:
				return 0, false
			}
		}
		return 0, false

	case InvalidAssignmentTarget:
		// Seek the offending '=' (the cursor is on it) and resume with
		// its right-hand side, or failing that any synchronization point.
		for i := failIdx; i < len(p.tokens); i++ {
			k := p.at(i).Kind
			if k == token.ASSIGN {
				return i + 1, true
			}
			if isSyncPoint(k) {
				return i, true
			}
		}
		return len(p.tokens) - 1, true

	case UnexpectedToken:
		switch {
		case containsKind(perr.Expected, token.RPAREN):
			for i := failIdx; i < len(p.tokens); i++ {
				switch p.at(i).Kind {
				case token.RPAREN:
					return i + 1, true
				case token.EOF:
					return 0, false
				}
			}
			return 0, false

		case containsKind(perr.Expected, token.NUMBER):
			// A primary was expected: resume at the next token that
			// can start an operand.
			for i := failIdx + 1; i < len(p.tokens); i++ {
				k := p.at(i).Kind
				if canStartOperand(k) {
					return i, true
				}
				if k == token.EOF {
					return 0, false
				}
			}
			return 0, false
		}
	}

	return 0, false
}

// isSyncPoint reports whether a token kind is safe to resume parsing
// from after an error.
func isSyncPoint(k token.Kind) bool {
	switch k {
	case token.ASSIGN, token.LPAREN, token.RPAREN, token.EOF:
		return true
	default:
		return false
	}
}

// canStartOperand reports whether a token kind can begin an operand
// (a primary expression or unary minus).
func canStartOperand(k token.Kind) bool {
	switch k {
	case token.NUMBER, token.NAME, token.LPAREN, token.SUB:
		return true
	default:
		return false
	}
}

func containsKind(kinds []token.Kind, k token.Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

func toParseError(err error) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return &ParseError{Message: err.Error()}
}
