package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// MaxTextWidth truncates echoed token text in dumps; 0 means no limit.
	MaxTextWidth int
}
