package lexer

import "jsopt/internal/node"

// scanString consumes a single- or double-quoted string literal. Escapes are
// consumed but not decoded (the record only carries offsets). An unescaped
// newline or EOF terminates the token with a diagnostic.
func (lx *Lexer) scanString() {
	start := lx.cursor.Off
	startLine := lx.line
	quote := lx.cursor.Bump()

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			lx.report("unterminated-string", lx.span(start, lx.cursor.Off),
				"unterminated string literal")
			break
		}
		b := lx.cursor.Bump()
		if b == quote {
			break
		}
		if b == '\\' {
			// Line continuation keeps the literal going across the newline.
			if lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
				lx.line++
			} else if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		}
	}
	lx.emit(node.StringLit, start, lx.cursor.Off, startLine)
}

// scanTemplate consumes one template fragment. opening means the cursor sits
// on the backtick starting a template; otherwise it sits on the '}' resuming
// one after a substitution. The fragment kind follows from how it began and
// how it ends:
//
//	`...`    TemplateFull     `...${   TemplateHead
//	}...`    TemplateTail     }...${   TemplateMid
func (lx *Lexer) scanTemplate(opening bool) {
	start := lx.cursor.Off
	startLine := lx.line
	lx.cursor.Bump() // '`' or '}'
	if !opening {
		lx.templates = lx.templates[:len(lx.templates)-1]
	}

	closed := false
	substitution := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '`' {
			closed = true
			break
		}
		if b == '$' && lx.cursor.Eat('{') {
			substitution = true
			lx.templates = append(lx.templates, lx.depth)
			break
		}
		if b == '\n' {
			lx.line++
		}
		if b == '\\' && !lx.cursor.EOF() {
			if lx.cursor.Bump() == '\n' {
				lx.line++
			}
		}
	}
	if !closed && !substitution {
		lx.report("unterminated-template", lx.span(start, lx.cursor.Off),
			"unterminated template literal")
	}

	// An unterminated fragment classifies like a closed one; the diagnostic
	// already marks it.
	var kind node.Kind
	if substitution {
		if opening {
			kind = node.TemplateHead
		} else {
			kind = node.TemplateMid
		}
	} else {
		if opening {
			kind = node.TemplateFull
		} else {
			kind = node.TemplateTail
		}
	}
	lx.emit(kind, start, lx.cursor.Off, startLine)
}
