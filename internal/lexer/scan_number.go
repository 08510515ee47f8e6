package lexer

import "jsopt/internal/node"

// scanNumber consumes a numeric literal: decimal with optional fraction and
// exponent, 0x/0o/0b radix forms, '_' digit separators, and a BigInt 'n'
// suffix. Malformed literals are reported but still emitted as NumberLit so
// downstream consumers see a token covering the bad text.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Off
	ok := true

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			ok = lx.digits(isHex)
			lx.bigintSuffix()
			lx.finishNumber(start, ok)
			return
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			ok = lx.digits(isOct)
			lx.bigintSuffix()
			lx.finishNumber(start, ok)
			return
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			ok = lx.digits(isBin)
			lx.bigintSuffix()
			lx.finishNumber(start, ok)
			return
		}
	}

	// Decimal: integer part may be absent for forms like ".5".
	hadInt := isDec(lx.cursor.Peek())
	if hadInt {
		ok = lx.digits(isDec)
	}

	isFloat := false
	if lx.cursor.Peek() == '.' && (hadInt || isDec(lx.cursor.PeekAt(1))) {
		isFloat = true
		lx.cursor.Bump()
		if isDec(lx.cursor.Peek()) {
			ok = lx.digits(isDec) && ok
		} else if !hadInt {
			ok = false // lone "."
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		isFloat = true
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		ok = lx.digits(isDec) && ok
	}

	if !isFloat {
		lx.bigintSuffix()
	}
	lx.finishNumber(start, ok)
}

// digits consumes a run of digits with '_' separators. A separator must sit
// between two digits.
func (lx *Lexer) digits(valid func(byte) bool) bool {
	if !valid(lx.cursor.Peek()) {
		return false
	}
	ok := true
	for {
		b := lx.cursor.Peek()
		switch {
		case valid(b):
			lx.cursor.Bump()
		case b == '_':
			lx.cursor.Bump()
			if !valid(lx.cursor.Peek()) {
				ok = false
			}
		default:
			return ok
		}
	}
}

func (lx *Lexer) bigintSuffix() {
	lx.cursor.Eat('n')
}

func (lx *Lexer) finishNumber(start uint32, ok bool) {
	// A digit run straight into identifier characters ("3in") is malformed;
	// consume the tail so it does not re-lex as a separate token.
	if b := lx.cursor.Peek(); isIdentContinueByte(b) || b >= 0x80 {
		ok = false
		for {
			b := lx.cursor.Peek()
			if !isIdentContinueByte(b) && b < 0x80 {
				break
			}
			lx.cursor.Bump()
		}
	}
	if !ok {
		lx.report("bad-number", lx.span(start, lx.cursor.Off), "malformed numeric literal")
	}
	lx.emit(node.NumberLit, start, lx.cursor.Off, lx.line)
}
