package node

// Node is the 16-byte flat representation of every token and AST node.
// Four records fit in one 64-byte cache line.
//
// Field use depends on the kind:
//
//	tokens:    Op is the source length in bytes (LenOverflow when it does not
//	           fit), Start the byte offset, Data[0] the 1-based line number,
//	           Data[1] the absolute end offset on the overflow path (else 0).
//	compounds: Op holds the operator kind for Binary/Unary/Update/Assign,
//	           Data carries child indices or variant payload; 0 means absent.
type Node struct {
	Kind  Kind
	Flags Flags
	Op    uint16
	Start uint32
	Data  [2]uint32
}

// LenOverflow is the Op sentinel meaning the token length exceeds 16 bits
// and the end offset lives in Data[1].
const LenOverflow = 0xFFFF

// maxInlineLen is the largest token length stored directly in Op.
const maxInlineLen = LenOverflow - 1

// End returns the byte offset one past the token's last character.
// Defined only for records whose kind is in the token range.
func (n *Node) End() uint32 {
	if n.Op == LenOverflow {
		return n.Data[1]
	}
	return n.Start + uint32(n.Op)
}

// Len returns the token's length in bytes. Token records only.
func (n *Node) Len() uint32 {
	return n.End() - n.Start
}

// Line returns the 1-based source line of the token's first character.
// Token records only.
func (n *Node) Line() uint32 {
	return n.Data[0]
}
