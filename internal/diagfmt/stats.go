package diagfmt

import (
	"fmt"
	"io"

	"jsopt/internal/driver"
)

// FormatStats writes a per-file occupancy summary.
func FormatStats(w io.Writer, path string, st driver.Stats) {
	fmt.Fprintf(w, "%s:\n", path)
	fmt.Fprintf(w, "  records    %d / %d (%.4f%%)\n", st.Records, st.Capacity, st.Occupancy()*100)
	fmt.Fprintf(w, "  tokens     %d\n", st.Tokens)
	fmt.Fprintf(w, "  compounds  %d\n", st.Compounds)
	fmt.Fprintf(w, "  leaves     %d  keywords %d  puncts %d  operators %d\n",
		st.Leaves, st.Keywords, st.Puncts, st.Operators)
}
