package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF rewrites every \r\n to \n, leaving lone \r untouched.
// Reports whether at least one replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) //nolint:gosec // i < len(content), bounded by Load
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// No newlines: the whole file is line 1.
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// Binary search for the last newline strictly before off. An offset
	// sitting on a '\n' belongs to the line that newline terminates.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // index of the last newline strictly before off

	if line < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	startOff := lineIdx[line] + 1
	return LineCol{Line: uint32(line) + 2, Col: off - startOff + 1} //nolint:gosec // line >= 0
}

func normalizePath(p string) string {
	// One canonical form for cross-platform diffs.
	return filepath.ToSlash(filepath.Clean(p))
}
