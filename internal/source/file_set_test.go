package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"jsopt/internal/source"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("let a = 1;\nlet b = 2;\n"))
	f := fs.Get(id)
	if f.Flags&source.FileVirtual == 0 {
		t.Fatal("virtual flag not set")
	}

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{10, 1, 11}, // the '\n' belongs to line 1
		{11, 2, 1},
		{15, 2, 5},
	}
	for _, c := range cases {
		lc := fs.ResolveOffset(id, c.off)
		if lc.Line != c.line || lc.Col != c.col {
			t.Fatalf("offset %d resolved to %d:%d, want %d:%d", c.off, lc.Line, lc.Col, c.line, c.col)
		}
	}

	start, end := fs.Resolve(source.Span{File: id, Start: 4, End: 15})
	if start.Line != 1 || start.Col != 5 || end.Line != 2 || end.Col != 5 {
		t.Fatalf("span resolved to %v..%v", start, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.js", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "one" {
		t.Fatalf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "two" {
		t.Fatalf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "three" {
		t.Fatalf("line 3 = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("line 4 = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Fatalf("line 0 = %q, want empty", got)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("let a;\r\nlet b;\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&source.FileHadBOM == 0 {
		t.Fatal("BOM flag not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Fatal("CRLF flag not set")
	}
	if string(f.Content) != "let a;\nlet b;\n" {
		t.Fatalf("content = %q", f.Content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := source.NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.js")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGetByPathLatestWins(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("x.js", []byte("old"))
	id2 := fs.AddVirtual("x.js", []byte("new"))
	f, ok := fs.GetByPath("x.js")
	if !ok || f.ID != id2 || string(f.Content) != "new" {
		t.Fatalf("GetByPath returned %+v ok=%v", f, ok)
	}
}
