package lexer

import (
	"jsopt/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; mapping the kind string to a diagnostic code is
// the adapter's job.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Options configures a Lexer.
type Options struct {
	Reporter Reporter // nil: errors are dropped, lexing continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
