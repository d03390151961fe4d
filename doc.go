// Package uexpr provides a lexer and recursive descent parser for a
// small arithmetic/assignment expression language.
//
// The language has numbers, identifiers, six binary operators
// (+ - * / % ^), unary minus, single-argument function calls,
// parenthesized groups, right-associative assignment, // line comments
// and multi-statement programs.
//
// # Quick Start
//
// For a single expression:
//
//	expr, err := uexpr.Parse("a = sin(x + 1) * 2")
//
// For multi-statement input:
//
//	prog, err := uexpr.ParseProgram("x = 1\ny = x ^ 2")
//
// To collect every syntax error in one pass instead of stopping at the
// first:
//
//	expr, errs := uexpr.ParseWithRecovery(src, nil)
//	for _, e := range errs {
//	    fmt.Println(e)
//	}
//
// # Pipeline
//
// Source text flows through [Tokenize] into positioned tokens, then
// through the parser into a strongly typed AST. The tokenizer never
// fails: malformed lexemes become ILLEGAL tokens in place, and the
// parser decides how to react.
//
// # Consuming the AST
//
// External code traverses the tree through the generic visitor
// contract in the ast package ([ast.Visitor], [ast.Accept]) or the
// [ast.Walk] and [ast.Inspect] helpers. The ast package also ships a
// faithful re-stringifier ([ast.String]), a structural dump
// ([ast.Dump]) and JSON encoding ([ast.MarshalJSON]); the analyze
// package provides aggregate helpers.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ParseError]: syntax errors, classified by kind, always carrying
//     a source position and, where applicable, the set of token kinds
//     that would have been accepted
//   - [TokenizeError]: structured lexical errors, wrapped by
//     TokenizeError-kind parse errors
//
// # Thread Safety
//
// Parsing is a pure function of its input; parsed trees are immutable
// and safe for concurrent reads.
package uexpr
