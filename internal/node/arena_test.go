package node_test

import (
	"testing"

	"jsopt/internal/node"
)

func newArena(t *testing.T) *node.Arena {
	t.Helper()
	a, err := node.NewArena(64)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestArenaInit(t *testing.T) {
	a := newArena(t)
	if a.Len() != 1 {
		t.Fatalf("count after init = %d, want 1", a.Len())
	}
	if a.Cap() != node.MaxNodes {
		t.Fatalf("capacity = %d, want %d", a.Cap(), node.MaxNodes)
	}
	if a.TokenEnd != 0 || a.Root != 0 {
		t.Fatalf("TokenEnd=%d Root=%d, want 0 0", a.TokenEnd, a.Root)
	}
	sentinel := a.At(node.NullIndex)
	if *sentinel != (node.Node{}) {
		t.Fatalf("null sentinel not zero: %+v", *sentinel)
	}
	if node.Valid(node.NullIndex) {
		t.Fatal("Valid(0) must be false")
	}
	if !node.Valid(1) {
		t.Fatal("Valid(1) must be true")
	}
}

func TestArenaCloseIdempotent(t *testing.T) {
	a, err := node.NewArena(0)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	a.PushToken(node.Ident, 0, 3, 1)
	a.Close()
	if a.Len() != 0 || a.Cap() != 0 || a.TokenEnd != 0 || a.Root != 0 {
		t.Fatalf("arena not zeroed after Close: %+v", a)
	}
	a.Close() // must be a no-op
}

func TestPushTokenSimple(t *testing.T) {
	a := newArena(t)
	idx := a.PushToken(node.Ident, 10, 5, 1)
	if idx != 1 {
		t.Fatalf("first push returned %d, want 1", idx)
	}
	n := a.At(idx)
	if n.Kind != node.Ident || n.Flags != 0 {
		t.Fatalf("kind/flags = %v/%v", n.Kind, n.Flags)
	}
	if n.Op != 5 || n.Start != 10 || n.Data[0] != 1 || n.Data[1] != 0 {
		t.Fatalf("record = %+v", *n)
	}
	if n.End() != 15 || n.Len() != 5 {
		t.Fatalf("End=%d Len=%d", n.End(), n.Len())
	}
	if a.KindAt(idx) != node.Ident {
		t.Fatalf("KindAt = %v", a.KindAt(idx))
	}
}

func TestPushTokenOverflow(t *testing.T) {
	a := newArena(t)
	idx := a.PushToken(node.StringLit, 100, 70000, 5)
	n := a.At(idx)
	if n.Op != node.LenOverflow {
		t.Fatalf("Op = %#x, want overflow sentinel", n.Op)
	}
	if n.Data[1] != 70100 {
		t.Fatalf("Data[1] = %d, want 70100", n.Data[1])
	}
	if n.End() != 70100 || n.Len() != 70000 {
		t.Fatalf("End=%d Len=%d", n.End(), n.Len())
	}
	if n.Line() != 5 {
		t.Fatalf("Line = %d", n.Line())
	}
}

// The inline/overflow boundary sits between 65534 and 65535.
func TestPushTokenLengthBoundaries(t *testing.T) {
	cases := []struct {
		length   uint32
		overflow bool
	}{
		{0, false},
		{1, false},
		{65534, false},
		{65535, true},
		{70000, true},
		{1 << 28, true},
	}
	a := newArena(t)
	for _, c := range cases {
		idx := a.PushToken(node.StringLit, 1000, c.length, 1)
		n := a.At(idx)
		if got := n.Op == node.LenOverflow; got != c.overflow {
			t.Fatalf("len=%d overflow=%v, want %v", c.length, got, c.overflow)
		}
		if n.Len() != c.length {
			t.Fatalf("len=%d round-tripped as %d", c.length, n.Len())
		}
		if n.End() != 1000+c.length {
			t.Fatalf("len=%d End=%d", c.length, n.End())
		}
	}
}

func TestSequentialAppend(t *testing.T) {
	a := newArena(t)
	for i := uint32(0); i < 1000; i++ {
		idx := a.PushToken(node.Ident, i*10, 3, i+1)
		if idx != i+1 {
			t.Fatalf("push %d returned index %d", i, idx)
		}
	}
	if a.Len() != 1001 {
		t.Fatalf("count = %d, want 1001", a.Len())
	}
	for i := uint32(0); i < 1000; i++ {
		n := a.At(i + 1)
		if n.Kind != node.Ident || n.Start != i*10 || n.Line() != i+1 {
			t.Fatalf("record %d corrupt: %+v", i+1, *n)
		}
	}
}

func TestCompoundWithChildren(t *testing.T) {
	a := newArena(t)
	lhs := a.PushToken(node.NumberLit, 0, 1, 1)
	rhs := a.PushToken(node.NumberLit, 4, 1, 1)
	bin := a.Push(node.Binary, 0, uint16(node.Plus), 0, lhs, rhs)
	if bin != 3 {
		t.Fatalf("compound index = %d, want 3", bin)
	}
	n := a.At(bin)
	if n.Kind != node.Binary || node.Kind(n.Op) != node.Plus {
		t.Fatalf("record = %+v", *n)
	}
	if n.Data[0] != lhs || n.Data[1] != rhs {
		t.Fatalf("children = %d,%d want %d,%d", n.Data[0], n.Data[1], lhs, rhs)
	}
}

func TestReserveThenFill(t *testing.T) {
	a := newArena(t)
	first := a.Reserve(5)
	if first != 1 {
		t.Fatalf("first reserved slot = %d, want 1", first)
	}
	if a.Len() != 6 {
		t.Fatalf("count after reserve = %d, want 6", a.Len())
	}
	for i := uint32(0); i < 5; i++ {
		if *a.At(first+i) != (node.Node{}) {
			t.Fatalf("reserved slot %d not zero", first+i)
		}
	}
	next := a.PushToken(node.Ident, 0, 1, 1)
	if next != first+5 {
		t.Fatalf("push after reserve returned %d, want %d", next, first+5)
	}
	// Backfill later, as the parser does for list nodes.
	a.At(first).Kind = node.Array
	a.At(first).Data[0] = next
	if a.KindAt(first) != node.Array {
		t.Fatal("backfilled slot not visible")
	}
}

func TestFlagCombination(t *testing.T) {
	a := newArena(t)
	idx := a.Push(node.FuncDecl, node.FlagAsync|node.FlagGenerator, 0, 0, 0, 0)
	if a.At(idx).Flags != 3 {
		t.Fatalf("flags byte = %d, want 3", a.At(idx).Flags)
	}
	// Flag bits may be toggled after installation.
	a.At(idx).Flags |= node.FlagStatic
	if !a.At(idx).Flags.Has(node.FlagStatic) {
		t.Fatal("flag toggle lost")
	}
}

func TestRefStability(t *testing.T) {
	a := newArena(t)
	idx := a.PushToken(node.Ident, 7, 2, 1)
	p := a.At(idx)
	for i := 0; i < 100000; i++ {
		a.PushToken(node.Ident, uint32(i), 1, 1)
	}
	if p != a.At(idx) {
		t.Fatal("record moved after appends")
	}
	if p.Start != 7 {
		t.Fatalf("record clobbered: %+v", *p)
	}
}

func TestTokenEndAndRootBookkeeping(t *testing.T) {
	a := newArena(t)
	a.PushToken(node.NumberLit, 0, 1, 1)
	a.PushToken(node.EOF, 1, 0, 1)
	a.TokenEnd = a.Len()
	root := a.Push(node.Program, 0, 0, 0, 0, 0)
	a.Root = root
	if a.TokenEnd != 3 || a.Root != 3 {
		t.Fatalf("TokenEnd=%d Root=%d", a.TokenEnd, a.Root)
	}
	if !a.KindAt(a.Root).IsCompound() {
		t.Fatal("root must be a compound")
	}
}
