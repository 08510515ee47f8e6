package diag

import (
	"fmt"
	"math"
	"sort"
)

// Bag accumulates diagnostics up to a cap. Producers keep going after the
// cap is hit; the overflow is simply dropped.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	// Flag values pass through unchecked; clamp rather than panic or wrap.
	if max < 0 {
		max = 0
	}
	if max > math.MaxUint16 {
		max = math.MaxUint16
	}
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max), //nolint:gosec // clamped above
	}
}

// Add appends a diagnostic, honoring the cap. Returns false when dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic is at least a warning.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Items returns the accumulated diagnostics. The slice aliases the bag's
// internal storage; do not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends the diagnostics of another bag, widening the cap if needed.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if newTotal > int(b.max) {
		b.max = uint16(newTotal) //nolint:gosec // bounded by bag caps
	}
	b.items = append(b.items, other.items...)
}

// Sort orders by file, start, end, severity (desc), code for a stable and
// deterministic output order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup drops repeated diagnostics with the same code and primary span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	kept := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Code, d.Primary)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
	}
	b.items = kept
}
