package lexer

import "jsopt/internal/node"

// scanIdentOrKeyword consumes an identifier and classifies it against the
// reserved-word table. Non-ASCII bytes are accepted as identifier parts;
// full Unicode ID_Start/ID_Continue classification is left to the parser's
// error reporting.
func (lx *Lexer) scanIdentOrKeyword() {
	start := lx.cursor.Off
	for {
		b := lx.cursor.Peek() // 0 at EOF, which breaks the loop
		if !isIdentContinueByte(b) && b < 0x80 {
			break
		}
		lx.cursor.Bump()
	}

	kind := node.Ident
	if k, ok := node.LookupKeyword(lx.cursor.Text(start, lx.cursor.Off)); ok {
		kind = k
	}
	lx.emit(kind, start, lx.cursor.Off, lx.line)
}
