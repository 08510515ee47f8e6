package lexer

import (
	"jsopt/internal/diag"
	"jsopt/internal/source"
)

// ReporterAdapter bridges the lexer's thin Reporter to the diag layer,
// translating kind strings into diagnostic codes.
type ReporterAdapter struct {
	Bag *diag.Bag
}

var codeByKind = map[string]diag.Code{
	"unknown-char":               diag.LexUnknownChar,
	"unterminated-string":        diag.LexUnterminatedString,
	"unterminated-block-comment": diag.LexUnterminatedBlockComment,
	"bad-number":                 diag.LexBadNumber,
	"unterminated-template":      diag.LexUnterminatedTemplate,
	"unterminated-regex":         diag.LexUnterminatedRegex,
	"bad-escape":                 diag.LexBadEscape,
}

// Reporter returns a lexer.Reporter that files diagnostics into the bag.
func (r *ReporterAdapter) Reporter() Reporter {
	return &bagAdapter{bag: r.Bag}
}

type bagAdapter struct {
	bag *diag.Bag
}

func (a *bagAdapter) Report(kind string, span source.Span, msg string) {
	code, ok := codeByKind[kind]
	if !ok {
		code = diag.UnknownCode
	}
	a.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
