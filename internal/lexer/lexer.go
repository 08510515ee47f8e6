package lexer

import (
	"jsopt/internal/node"
	"jsopt/internal/source"
)

// Lexer scans JavaScript source and appends one token record per significant
// token into a node.Arena, in source order. Trivia (whitespace, comments) is
// skipped; the lexer owns the line counter and passes it on every append.
type Lexer struct {
	file   *source.File
	cursor Cursor
	arena  *node.Arena
	opts   Options

	line uint32 // 1-based line of the cursor position

	// Regex/division disambiguation needs the previous significant token;
	// the arena already remembers it, but tracking the kind here keeps the
	// hot loop off arena reads.
	prev     node.Kind
	havePrev bool

	// Template substitution tracking: depth is the current {} nesting,
	// templates stacks the depth at each open ${.
	depth     uint32
	templates []uint32
}

// New creates a lexer that appends into arena.
func New(file *source.File, arena *node.Arena, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		arena:  arena,
		opts:   opts,
		line:   1,
	}
}

// Run scans the whole file, ending with exactly one EOF token. Lexical
// errors are reported and scanning continues; the token stream is always
// well-terminated.
func (lx *Lexer) Run() {
	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			lx.emit(node.EOF, lx.cursor.Off, lx.cursor.Off, lx.line)
			return
		}

		ch := lx.cursor.Peek()
		switch {
		case isIdentStartByte(ch) || ch >= 0x80:
			lx.scanIdentOrKeyword()

		case isDec(ch):
			lx.scanNumber()

		case ch == '.' && isDec(lx.cursor.PeekAt(1)):
			lx.scanNumber()

		case ch == '"' || ch == '\'':
			lx.scanString()

		case ch == '`':
			lx.scanTemplate(true)

		case ch == '}' && lx.inSubstitution():
			lx.scanTemplate(false)

		case ch == '/' && lx.regexAllowed():
			lx.scanRegex()

		default:
			lx.scanOperatorOrPunct()
		}
	}
}

// emit appends one token record. line is the line of the token's first
// character, captured before any newlines inside the token.
func (lx *Lexer) emit(kind node.Kind, start, end, line uint32) uint32 {
	idx := lx.arena.PushToken(kind, start, end-start, line)
	lx.prev = kind
	lx.havePrev = true
	return idx
}

func (lx *Lexer) span(start, end uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: end}
}

// inSubstitution reports whether the '}' at the cursor closes an open ${.
func (lx *Lexer) inSubstitution() bool {
	return len(lx.templates) > 0 && lx.depth == lx.templates[len(lx.templates)-1]
}

// regexAllowed decides whether a '/' starts a regex literal or a division.
// A regex can follow an operator, a keyword (return /re/), most punctuation,
// or the start of input; it cannot follow a value (identifier, literal,
// closing paren/bracket).
func (lx *Lexer) regexAllowed() bool {
	if !lx.havePrev {
		return true
	}
	switch {
	case lx.prev.IsOperator():
		return true
	case lx.prev.IsKeyword():
		return true
	case lx.prev.IsPunct():
		return lx.prev != node.RParen && lx.prev != node.RBracket
	default:
		// Leaves and EOF: a value just ended, so '/' is division.
		return false
	}
}

// skipTrivia consumes whitespace and comments, counting newlines.
func (lx *Lexer) skipTrivia() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\v', '\f':
			lx.cursor.Bump()

		case '\n':
			lx.cursor.Bump()
			lx.line++

		case '/':
			switch lx.cursor.PeekAt(1) {
			case '/':
				lx.skipLineComment()
			case '*':
				lx.skipBlockComment()
			default:
				return
			}

		default:
			return
		}
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	// The newline itself is handled by skipTrivia.
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Off
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for {
		if lx.cursor.EOF() {
			lx.report("unterminated-block-comment", lx.span(start, lx.cursor.Off),
				"unterminated block comment")
			return
		}
		b := lx.cursor.Bump()
		if b == '\n' {
			lx.line++
		} else if b == '*' && lx.cursor.Eat('/') {
			return
		}
	}
}
