package uexpr

import (
	"github.com/kolkov/uexpr/ast"
	"github.com/kolkov/uexpr/lexer"
	"github.com/kolkov/uexpr/parser"
)

// Version is the uexpr version string.
const Version = "0.1.0"

// Tokenize scans source text into tokens. The result always ends with
// exactly one EOF token; malformed lexemes come back as ILLEGAL tokens
// rather than errors.
func Tokenize(src string) []lexer.Token {
	return lexer.Tokenize(src)
}

// Parse parses source text as a single expression, failing fast on the
// first syntax error.
//
// Example:
//
//	expr, err := uexpr.Parse("a = sin(x + 1) * 2")
func Parse(src string) (ast.Expr, error) {
	return ParseWith(src, nil)
}

// ParseWith is Parse with an explicit configuration (nil for defaults).
func ParseWith(src string, config *Config) (ast.Expr, error) {
	return newParser(src, config).Parse()
}

// ParseProgram parses source text as a sequence of expression
// statements, failing fast on the first syntax error.
//
// Example:
//
//	prog, err := uexpr.ParseProgram("x = 1\ny = x * 2 // doubled")
func ParseProgram(src string) (*ast.Program, error) {
	return ParseProgramWith(src, nil)
}

// ParseProgramWith is ParseProgram with an explicit configuration.
func ParseProgramWith(src string, config *Config) (*ast.Program, error) {
	return newParser(src, config).ParseProgram()
}

// ParseWithRecovery parses a single expression but keeps going after
// syntax errors, accumulating every error found in one pass. The
// returned expression is whatever partial AST was derivable, possibly
// nil.
func ParseWithRecovery(src string, config *Config) (ast.Expr, parser.ErrorList) {
	return newParser(src, config).ParseWithRecovery()
}

// MustParse is like Parse but panics on error. It simplifies
// initialization of global expression variables.
func MustParse(src string) ast.Expr {
	expr, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return expr
}

func newParser(src string, config *Config) *parser.Parser {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	p := parser.New(lexer.Tokenize(src))
	p.SetMaxDepth(config.MaxDepth)
	if config.Trace != nil {
		p.SetTracer(config.Trace)
	}
	return p
}
