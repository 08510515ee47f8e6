package diag_test

import (
	"testing"

	"jsopt/internal/diag"
	"jsopt/internal/source"
)

func TestBagCapAndQueries(t *testing.T) {
	b := diag.NewBag(2)
	if !b.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.LexBadNumber}) {
		t.Fatal("first add rejected")
	}
	if b.HasErrors() {
		t.Fatal("no errors yet")
	}
	if !b.HasWarnings() {
		t.Fatal("warning not seen")
	}
	b.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar})
	if b.Add(diag.Diagnostic{Severity: diag.SevError}) {
		t.Fatal("add over cap should be dropped")
	}
	if b.Len() != 2 || !b.HasErrors() {
		t.Fatalf("len=%d hasErrors=%v", b.Len(), b.HasErrors())
	}
}

func TestSeverityLabels(t *testing.T) {
	cases := map[diag.Severity]string{
		diag.SevInfo:     "INFO",
		diag.SevWarning:  "WARNING",
		diag.SevError:    "ERROR",
		diag.Severity(9): "UNKNOWN",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
	if !(diag.SevInfo < diag.SevWarning && diag.SevWarning < diag.SevError) {
		t.Fatal("severity values must ascend")
	}
}

func TestBagCapClamped(t *testing.T) {
	// Caps come straight from flags; out-of-range values clamp, not panic.
	b := diag.NewBag(-5)
	if b.Add(diag.Diagnostic{Severity: diag.SevError}) {
		t.Fatal("negative cap should drop everything")
	}
	if b.Len() != 0 {
		t.Fatalf("len = %d, want 0", b.Len())
	}

	big := diag.NewBag(1 << 20)
	if !big.Add(diag.Diagnostic{Severity: diag.SevError}) {
		t.Fatal("oversized cap should still accept")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	sp := func(start uint32) source.Span { return source.Span{Start: start, End: start + 1} }
	b := diag.NewBag(10)
	b.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.LexBadNumber, Primary: sp(9)})
	b.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: sp(2)})
	b.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: sp(2)})
	b.Sort()
	b.Dedup()
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup len = %d", len(items))
	}
	if items[0].Primary.Start != 2 || items[1].Primary.Start != 9 {
		t.Fatalf("not sorted by start: %v, %v", items[0].Primary, items[1].Primary)
	}
}

func TestBagReporter(t *testing.T) {
	b := diag.NewBag(4)
	var r diag.Reporter = &diag.BagReporter{Bag: b}
	r.Report(diag.LexUnterminatedString, diag.SevError, source.Span{Start: 1, End: 4}, "unterminated string", nil)
	if b.Len() != 1 || b.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("bag contents: %+v", b.Items())
	}
	diag.NopReporter{}.Report(diag.UnknownCode, diag.SevInfo, source.Span{}, "", nil)
}
