package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/uexpr/lexer"
)

// Tracer observes parser operations. The parser calls it at rule entry
// and exit; implementations can build operation histories, timings or
// diagnostics. A nil tracer costs nothing.
//
// Tracers are injected per Parser instance, never global state.
type Tracer interface {
	// Enter is called when the parser enters a grammar rule, with the
	// lookahead token at that point.
	Enter(rule string, tok lexer.Token)

	// Exit is called when the rule returns. err is nil on success.
	Exit(rule string, err error)
}

// WriterTracer renders an indented rule trace to a writer.
//
//	> assignment at 1:1 (name "x")
//	  > binary at 1:1 (name "x")
//	    ...
type WriterTracer struct {
	w     io.Writer
	depth int
}

// NewWriterTracer creates a WriterTracer writing to w.
func NewWriterTracer(w io.Writer) *WriterTracer {
	return &WriterTracer{w: w}
}

func (t *WriterTracer) Enter(rule string, tok lexer.Token) {
	fmt.Fprintf(t.w, "%s> %s at %s (%s)\n", strings.Repeat("  ", t.depth), rule, tok.Pos, tokenDesc(tok))
	t.depth++
}

func (t *WriterTracer) Exit(rule string, err error) {
	if t.depth > 0 {
		t.depth--
	}
	if err != nil {
		fmt.Fprintf(t.w, "%s< %s: %v\n", strings.Repeat("  ", t.depth), rule, err)
		return
	}
	fmt.Fprintf(t.w, "%s< %s\n", strings.Repeat("  ", t.depth), rule)
}
