package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"jsopt/internal/node"
	"jsopt/internal/source"
)

// TokenOutput is the interchange form of one token record for dumps.
type TokenOutput struct {
	Index uint32 `json:"index" msgpack:"index"`
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text,omitempty"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Line  uint32 `json:"line" msgpack:"line"`
}

// TokenDump wraps a whole token stream for structured outputs.
type TokenDump struct {
	Path   string        `json:"path" msgpack:"path"`
	Tokens []TokenOutput `json:"tokens" msgpack:"tokens"`
}

// tokenCount bounds the arena prefix to iterate: prefer the TokenEnd
// boundary when the producer recorded it.
func tokenCount(a *node.Arena) uint32 {
	if a.TokenEnd > 0 {
		return a.TokenEnd
	}
	return a.Len()
}

// echoText reports whether a kind's source text is worth echoing in dumps.
// Punctuation and operators are implied by the kind name.
func echoText(k node.Kind) bool {
	return k.IsLeaf()
}

// CollectTokens converts the arena's token prefix into interchange form.
func CollectTokens(a *node.Arena, f *source.File) TokenDump {
	dump := TokenDump{Path: f.Path}
	for i := uint32(1); i < tokenCount(a); i++ {
		n := a.At(i)
		out := TokenOutput{
			Index: i,
			Kind:  n.Kind.String(),
			Start: n.Start,
			End:   n.End(),
			Line:  n.Line(),
		}
		if echoText(n.Kind) && int(out.End) <= len(f.Content) {
			out.Text = string(f.Content[out.Start:out.End])
		}
		dump.Tokens = append(dump.Tokens, out)
	}
	return dump
}

// FormatTokensPretty writes a line-per-token listing.
func FormatTokensPretty(w io.Writer, a *node.Arena, f *source.File, opts PrettyOpts) error {
	dump := CollectTokens(a, f)
	for _, tok := range dump.Tokens {
		if _, err := fmt.Fprintf(w, "%4d: %-14s", tok.Index, tok.Kind); err != nil {
			return err
		}
		if tok.Text != "" {
			text := tok.Text
			if opts.MaxTextWidth > 0 {
				text = runewidth.Truncate(text, opts.MaxTextWidth, "...")
			}
			fmt.Fprintf(w, " %q", text)
		}
		fmt.Fprintf(w, " @%d:%d-%d\n", tok.Line, tok.Start, tok.End)
	}
	return nil
}

// FormatTokensJSON writes the dump as indented JSON.
func FormatTokensJSON(w io.Writer, a *node.Arena, f *source.File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(CollectTokens(a, f))
}

// FormatTokensMsgpack writes the dump in msgpack for tool-to-tool piping.
// This serializes the listing, never the arena itself.
func FormatTokensMsgpack(w io.Writer, a *node.Arena, f *source.File) error {
	return msgpack.NewEncoder(w).Encode(CollectTokens(a, f))
}
