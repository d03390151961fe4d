package uexpr

import "github.com/kolkov/uexpr/parser"

// Config holds configuration options for parsing.
type Config struct {
	// MaxDepth is the parser's recursion ceiling. Nesting deeper than
	// this is reported as an error instead of exhausting the call
	// stack. Zero means parser.DefaultMaxDepth.
	MaxDepth int

	// Trace receives rule entry/exit notifications during parsing.
	// If nil, tracing is disabled.
	Trace parser.Tracer
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.MaxDepth == 0 {
		c.MaxDepth = parser.DefaultMaxDepth
	}
}
