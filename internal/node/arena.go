package node

import (
	"fmt"
	"os"
)

// MaxNodes is the fixed arena capacity: 2^24 records, a 256 MiB reservation.
// Orders of magnitude beyond any realistic source unit; exceeding it means a
// pathological input or a producer loop bug.
const MaxNodes = 1 << 24

// NullIndex is the reserved index 0, meaning "no node". The record at index 0
// stays all-zero for the life of the arena, which gives freshly reserved
// slots and absent children the same representation.
const NullIndex uint32 = 0

// Valid reports whether idx refers to an actual record rather than the null
// sentinel.
func Valid(idx uint32) bool { return idx != NullIndex }

// Arena is the single flat store shared by the lexer and the parser: the
// lexer appends token records, the parser appends compounds whose Data slots
// index earlier records. Append is monotonic, records never move, and an
// index stays valid until Close. One goroutine owns an arena at a time; run
// parallelism across arenas, not within one.
type Arena struct {
	nodes    []Node
	count    uint32
	capacity uint32

	// TokenEnd is the count boundary separating the lexer-emitted prefix
	// from parser-emitted compounds. Set once scanning finishes.
	TokenEnd uint32
	// Root is the index of the Program node once parsing completes.
	Root uint32

	release func()
}

// NewArena returns an empty arena. capHint is advisory and currently
// ignored: the full MaxNodes backing is reserved up front as zeroed virtual
// memory, so the base address never changes and fresh slots read as zero
// without an explicit fill. The only failure is the OS refusing the
// reservation.
func NewArena(capHint uint32) (*Arena, error) {
	_ = capHint
	nodes, release, err := mapNodes(MaxNodes)
	if err != nil {
		return nil, fmt.Errorf("reserve node arena: %w", err)
	}
	return &Arena{
		nodes:    nodes,
		count:    1, // index 0 is the null sentinel
		capacity: MaxNodes,
		release:  release,
	}, nil
}

// Close releases the backing reservation and zeroes the arena. Safe to call
// more than once; using any other operation after Close is a programming
// error.
func (a *Arena) Close() {
	if a.nodes == nil {
		return
	}
	if a.release != nil {
		a.release()
	}
	*a = Arena{}
}

// PushToken appends a token record and returns its index. This is the
// lexer's inner loop: one bounds check, six field writes, one increment.
// Lengths above maxInlineLen take the overflow encoding with the absolute
// end offset in Data[1].
func (a *Arena) PushToken(kind Kind, start, length, line uint32) uint32 {
	idx := a.count
	if idx >= a.capacity {
		a.limitExceeded()
	}
	n := &a.nodes[idx]
	n.Kind = kind
	n.Flags = 0
	n.Start = start
	n.Data[0] = line
	if length <= maxInlineLen {
		n.Op = uint16(length)
		n.Data[1] = 0
	} else {
		n.Op = LenOverflow
		n.Data[1] = start + length
	}
	a.count = idx + 1
	return idx
}

// Push appends a compound record, writing all six fields verbatim. The
// caller guarantees that child indices in d0/d1 refer to earlier records.
func (a *Arena) Push(kind Kind, flags Flags, op uint16, start, d0, d1 uint32) uint32 {
	idx := a.count
	if idx >= a.capacity {
		a.limitExceeded()
	}
	n := &a.nodes[idx]
	n.Kind = kind
	n.Flags = flags
	n.Op = op
	n.Start = start
	n.Data[0] = d0
	n.Data[1] = d1
	a.count = idx + 1
	return idx
}

// Reserve grabs n consecutive slots and returns the index of the first.
// The slots read as all-zero until overwritten; the parser uses this to lay
// out list-valued nodes before it knows their length.
func (a *Arena) Reserve(n uint32) uint32 {
	if n > a.capacity-a.count {
		a.limitExceeded()
	}
	first := a.count
	a.count += n
	return first
}

// At returns a mutable reference to the record at idx. The pointer stays
// valid until Close. Indices at or beyond Len are the caller's bug; the
// contract does not require detection.
func (a *Arena) At(idx uint32) *Node {
	return &a.nodes[idx]
}

// KindAt returns the kind byte at idx.
func (a *Arena) KindAt(idx uint32) Kind {
	return a.nodes[idx].Kind
}

// Len returns the next free index (record count including the null slot).
func (a *Arena) Len() uint32 { return a.count }

// Cap returns the fixed capacity.
func (a *Arena) Cap() uint32 { return a.capacity }

// limitExceeded aborts the process: recovery would invalidate every index
// already handed to collaborators. Kept out of line so the push fast path
// stays small.
func (a *Arena) limitExceeded() {
	fmt.Fprintf(os.Stderr, "jsopt: node limit exceeded (%d)\n", a.capacity)
	os.Exit(1)
}
