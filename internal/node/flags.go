package node

// Flags is a bitset of orthogonal boolean attributes on a node record.
// The producing component sets them after construction; several bits may be
// set on the same record (an async generator method carries three).
type Flags uint8

const (
	// FlagAsync marks async functions, methods, and arrows.
	FlagAsync Flags = 1 << iota
	// FlagGenerator marks generator functions and methods.
	FlagGenerator
	// FlagConst marks const declarations.
	FlagConst
	// FlagLet marks let declarations.
	FlagLet
	// FlagStatic marks static class members.
	FlagStatic
	// FlagComputed marks computed property keys.
	FlagComputed
	// FlagShorthand marks shorthand object properties.
	FlagShorthand
	// FlagMethod marks method-form members.
	FlagMethod
)

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }
