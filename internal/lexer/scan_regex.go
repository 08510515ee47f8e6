package lexer

import "jsopt/internal/node"

// scanRegex consumes a regular-expression literal including its flags.
// '/' inside a character class does not close the literal; a newline or EOF
// before the closing '/' is an error.
func (lx *Lexer) scanRegex() {
	start := lx.cursor.Off
	lx.cursor.Bump() // '/'

	inClass := false
	closed := false
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		b := lx.cursor.Bump()
		switch b {
		case '\\':
			if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				closed = true
			}
		}
		if closed {
			break
		}
	}

	if !closed {
		lx.report("unterminated-regex", lx.span(start, lx.cursor.Off),
			"unterminated regular expression literal")
	} else {
		// Flags.
		for {
			b := lx.cursor.Peek()
			if !isIdentContinueByte(b) && b < 0x80 {
				break
			}
			lx.cursor.Bump()
		}
	}
	lx.emit(node.RegexLit, start, lx.cursor.Off, lx.line)
}
