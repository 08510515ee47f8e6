package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsopt/internal/diag"
	"jsopt/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
)

func severityLabel(sev diag.Severity, useColor bool) string {
	s := sev.String()
	if !useColor {
		return s
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(s)
	case diag.SevWarning:
		return warnColor.Sprint(s)
	default:
		return infoColor.Sprint(s)
	}
}

// Pretty renders diagnostics human-readably, one per block:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// Call bag.Sort() first for deterministic order. The caret line aligns by
// display width, so tabs and wide runes in the prefix do not skew it.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		// Load failures carry no resolvable span.
		if !fs.Has(d.Primary.File) || d.Primary.Empty() && d.Primary.Start == 0 {
			fmt.Fprintf(w, "%s %s: %s\n", severityLabel(d.Severity, opts.Color), d.Code, d.Message)
			continue
		}
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			f.Path, start.Line, start.Col,
			severityLabel(d.Severity, opts.Color), d.Code, d.Message)

		writeContext(w, f, d.Primary, start)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nStart, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", f.Path, nStart.Line, nStart.Col, n.Msg)
			}
		}
	}
}

func writeContext(w io.Writer, f *source.File, span source.Span, start source.LineCol) {
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	if int(start.Col) > len(line)+1 {
		return
	}
	prefix := line[:start.Col-1]
	pad := runewidth.StringWidth(prefix)

	// Underline at most to the end of the line; spans may run further.
	width := int(span.Len())
	if width < 1 {
		width = 1
	}
	if rest := len(line) - len(prefix); width > rest && rest > 0 {
		width = rest
	}
	fmt.Fprintf(w, "    %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}
