package diag

import "fmt"

// Code identifies a diagnostic kind. Numbering is grouped by producing
// phase; gaps are reserved.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegex        Code = 1006
	LexBadEscape                Code = 1007

	// I/O (9000-9999)
	IOLoadFileError Code = 9001
)

func (c Code) String() string {
	return fmt.Sprintf("JS%04d", uint16(c))
}
