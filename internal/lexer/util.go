package lexer

// ASCII classifiers. Bytes >= 0x80 are routed to the identifier scanner by
// the dispatch loop, so these only need the 7-bit cases.

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isOct(b byte) bool { return b >= '0' && b <= '7' }

func isBin(b byte) bool { return b == '0' || b == '1' }
