package driver

import (
	"jsopt/internal/diag"
	"jsopt/internal/lexer"
	"jsopt/internal/node"
	"jsopt/internal/source"
)

// TokenizeResult bundles everything one tokenized source unit produces.
// The caller owns the arena and must Close it.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Arena   *node.Arena
	Bag     *diag.Bag
}

// Tokenize loads path and scans it into a fresh arena.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

// TokenizeBytes scans in-memory content (stdin, tests) under the given name.
func TokenizeBytes(name string, content []byte, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*TokenizeResult, error) {
	file := fs.Get(fileID)

	arena, err := node.NewArena(0)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	lx := lexer.New(file, arena, lexer.Options{Reporter: reporter})
	lx.Run()

	// Scanning is done; everything below this boundary is tokens.
	arena.TokenEnd = arena.Len()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Arena:   arena,
		Bag:     bag,
	}, nil
}

// Close releases the result's arena.
func (r *TokenizeResult) Close() {
	if r != nil && r.Arena != nil {
		r.Arena.Close()
	}
}
