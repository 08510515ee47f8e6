package node_test

import (
	"testing"
	"unsafe"

	"jsopt/internal/node"
)

func TestRecordLayout(t *testing.T) {
	var n node.Node
	if s := unsafe.Sizeof(n); s != 16 {
		t.Fatalf("sizeof(Node) = %d, want 16", s)
	}
	if o := unsafe.Offsetof(n.Kind); o != 0 {
		t.Fatalf("offsetof Kind = %d", o)
	}
	if o := unsafe.Offsetof(n.Flags); o != 1 {
		t.Fatalf("offsetof Flags = %d", o)
	}
	if o := unsafe.Offsetof(n.Op); o != 2 {
		t.Fatalf("offsetof Op = %d", o)
	}
	if o := unsafe.Offsetof(n.Start); o != 4 {
		t.Fatalf("offsetof Start = %d", o)
	}
	if o := unsafe.Offsetof(n.Data); o != 8 {
		t.Fatalf("offsetof Data = %d", o)
	}
}

func TestTokenEndInline(t *testing.T) {
	n := node.Node{Kind: node.Ident, Op: 5, Start: 10}
	if n.End() != 15 {
		t.Fatalf("End() = %d, want 15", n.End())
	}
	if n.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", n.Len())
	}
}

func TestTokenEndOverflow(t *testing.T) {
	n := node.Node{Kind: node.StringLit, Op: node.LenOverflow, Start: 100, Data: [2]uint32{5, 70100}}
	if n.End() != 70100 {
		t.Fatalf("End() = %d, want 70100", n.End())
	}
	if n.Len() != 70000 {
		t.Fatalf("Len() = %d, want 70000", n.Len())
	}
	if n.Line() != 5 {
		t.Fatalf("Line() = %d, want 5", n.Line())
	}
}

func TestFlagsCoverByte(t *testing.T) {
	all := []node.Flags{
		node.FlagAsync, node.FlagGenerator, node.FlagConst, node.FlagLet,
		node.FlagStatic, node.FlagComputed, node.FlagShorthand, node.FlagMethod,
	}
	var or node.Flags
	seen := map[node.Flags]bool{}
	for _, f := range all {
		if f == 0 || f&(f-1) != 0 {
			t.Fatalf("flag %08b is not a single bit", f)
		}
		if seen[f] {
			t.Fatalf("flag %08b duplicated", f)
		}
		seen[f] = true
		or |= f
	}
	if or != 0xFF {
		t.Fatalf("OR of all flags = %#x, want 0xFF", or)
	}
}

func TestFlagsHas(t *testing.T) {
	f := node.FlagAsync | node.FlagGenerator
	if !f.Has(node.FlagAsync) || !f.Has(node.FlagGenerator) || !f.Has(node.FlagAsync|node.FlagGenerator) {
		t.Fatal("Has should report set bits")
	}
	if f.Has(node.FlagStatic) || f.Has(node.FlagAsync|node.FlagStatic) {
		t.Fatal("Has should require every bit of the mask")
	}
}
