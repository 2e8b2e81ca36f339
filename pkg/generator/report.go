// report.go — size report printed after an export.
package generator

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Report describes a written icon file.
type Report struct {
	Path   string
	Bytes  int64
	Width  int
	Height int
	Format string
	Limit  int64
}

// WithinLimit reports whether the file fits the budget. A file exactly at
// the limit passes.
func (r *Report) WithinLimit() bool {
	return r.Bytes <= r.Limit
}

// KB is the file size in kibibytes.
func (r *Report) KB() float64 {
	return float64(r.Bytes) / 1024
}

// Print writes the human-readable summary. The verdict line is informational
// only; callers do not derive an exit status from it.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "Icon saved as %s\n", r.Path)
	fmt.Fprintf(w, "Size: %s bytes (%.1f KB)\n", humanize.Comma(r.Bytes), r.KB())
	fmt.Fprintf(w, "Dimensions: %dx%d pixels\n", r.Width, r.Height)
	fmt.Fprintf(w, "Format: %s\n", r.Format)

	if r.WithinLimit() {
		fmt.Fprintf(w, "✅ File size within %s limit\n", limitLabel(r.Limit))
	} else {
		fmt.Fprintf(w, "❌ File size exceeds %s limit\n", limitLabel(r.Limit))
	}
}

func limitLabel(limit int64) string {
	if limit == DefaultLimit {
		return "1MB"
	}
	return humanize.IBytes(uint64(limit))
}
