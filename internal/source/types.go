package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a file was acquired.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF sequences were rewritten to LF.
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file. Content is
// what the lexer scans; byte offsets in node records index into it.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of '\n', for offset -> line/col
	Flags   FileFlags
}

// LineCol is a human-readable position, both components 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}
