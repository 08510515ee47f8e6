package driver

import "jsopt/internal/node"

// Stats summarizes arena occupancy for one source unit.
type Stats struct {
	Records   uint32 // count including the null slot
	Capacity  uint32
	Tokens    uint32 // lexer-emitted prefix (TokenEnd boundary)
	Compounds uint32

	Leaves    uint32
	Keywords  uint32
	Puncts    uint32
	Operators uint32
}

// CollectStats walks the arena once and counts records per class.
func CollectStats(a *node.Arena) Stats {
	st := Stats{
		Records:  a.Len(),
		Capacity: a.Cap(),
	}
	if a.TokenEnd > 0 {
		st.Tokens = a.TokenEnd - 1
		st.Compounds = a.Len() - a.TokenEnd
	}
	for i := uint32(1); i < a.Len(); i++ {
		k := a.KindAt(i)
		switch {
		case k.IsLeaf():
			st.Leaves++
		case k.IsKeyword():
			st.Keywords++
		case k.IsPunct():
			st.Puncts++
		case k.IsOperator():
			st.Operators++
		}
	}
	return st
}

// Occupancy returns used capacity as a fraction in [0, 1].
func (s Stats) Occupancy() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Records) / float64(s.Capacity)
}
