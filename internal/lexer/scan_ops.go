package lexer

import "jsopt/internal/node"

// scanOperatorOrPunct consumes one operator or punctuation token with
// maximal munch. '/' only reaches this scanner when a regex is not allowed,
// and '}' only when it does not resume a template substitution.
func (lx *Lexer) scanOperatorOrPunct() {
	start := lx.cursor.Off
	b := lx.cursor.Bump()

	var kind node.Kind
	switch b {
	case '{':
		kind = node.LBrace
		lx.depth++
	case '}':
		kind = node.RBrace
		if lx.depth > 0 {
			lx.depth--
		}
	case '(':
		kind = node.LParen
	case ')':
		kind = node.RParen
	case '[':
		kind = node.LBracket
	case ']':
		kind = node.RBracket
	case ';':
		kind = node.Semi
	case ',':
		kind = node.Comma
	case ':':
		kind = node.Colon
	case '~':
		kind = node.Tilde

	case '.':
		if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = node.DotDotDot
		} else {
			kind = node.Dot
		}

	case '?':
		switch {
		case lx.cursor.Peek() == '.' && !isDec(lx.cursor.PeekAt(1)):
			// "x?.5:y" lexes '?' then '.5', so '?.' requires a non-digit.
			lx.cursor.Bump()
			kind = node.QuestionDot
		case lx.cursor.Eat('?'):
			if lx.cursor.Eat('=') {
				kind = node.QuestionQuestionEq
			} else {
				kind = node.QuestionQuestion
			}
		default:
			kind = node.Question
		}

	case '=':
		switch {
		case lx.cursor.Eat('='):
			if lx.cursor.Eat('=') {
				kind = node.EqEqEq
			} else {
				kind = node.EqEq
			}
		case lx.cursor.Eat('>'):
			kind = node.Arrow
		default:
			kind = node.Eq
		}

	case '!':
		if lx.cursor.Eat('=') {
			if lx.cursor.Eat('=') {
				kind = node.BangEqEq
			} else {
				kind = node.BangEq
			}
		} else {
			kind = node.Bang
		}

	case '<':
		switch {
		case lx.cursor.Eat('<'):
			if lx.cursor.Eat('=') {
				kind = node.ShlEq
			} else {
				kind = node.Shl
			}
		case lx.cursor.Eat('='):
			kind = node.LtEq
		default:
			kind = node.Lt
		}

	case '>':
		switch {
		case lx.cursor.Peek() == '>' && lx.cursor.PeekAt(1) == '>':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if lx.cursor.Eat('=') {
				kind = node.UShrEq
			} else {
				kind = node.UShr
			}
		case lx.cursor.Eat('>'):
			if lx.cursor.Eat('=') {
				kind = node.ShrEq
			} else {
				kind = node.Shr
			}
		case lx.cursor.Eat('='):
			kind = node.GtEq
		default:
			kind = node.Gt
		}

	case '+':
		switch {
		case lx.cursor.Eat('+'):
			kind = node.PlusPlus
		case lx.cursor.Eat('='):
			kind = node.PlusEq
		default:
			kind = node.Plus
		}

	case '-':
		switch {
		case lx.cursor.Eat('-'):
			kind = node.MinusMinus
		case lx.cursor.Eat('='):
			kind = node.MinusEq
		default:
			kind = node.Minus
		}

	case '*':
		switch {
		case lx.cursor.Eat('*'):
			if lx.cursor.Eat('=') {
				kind = node.StarStarEq
			} else {
				kind = node.StarStar
			}
		case lx.cursor.Eat('='):
			kind = node.StarEq
		default:
			kind = node.Star
		}

	case '/':
		if lx.cursor.Eat('=') {
			kind = node.SlashEq
		} else {
			kind = node.Slash
		}

	case '%':
		if lx.cursor.Eat('=') {
			kind = node.PercentEq
		} else {
			kind = node.Percent
		}

	case '&':
		switch {
		case lx.cursor.Eat('&'):
			if lx.cursor.Eat('=') {
				kind = node.AmpAmpEq
			} else {
				kind = node.AmpAmp
			}
		case lx.cursor.Eat('='):
			kind = node.AmpEq
		default:
			kind = node.Amp
		}

	case '|':
		switch {
		case lx.cursor.Eat('|'):
			if lx.cursor.Eat('=') {
				kind = node.PipePipeEq
			} else {
				kind = node.PipePipe
			}
		case lx.cursor.Eat('='):
			kind = node.PipeEq
		default:
			kind = node.Pipe
		}

	case '^':
		if lx.cursor.Eat('=') {
			kind = node.CaretEq
		} else {
			kind = node.Caret
		}

	default:
		lx.report("unknown-char", lx.span(start, lx.cursor.Off),
			"unexpected character "+string(rune(b)))
		return // no token for stray bytes
	}

	lx.emit(kind, start, lx.cursor.Off, lx.line)
}
