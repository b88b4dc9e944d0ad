package pipeline

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// FprintReport writes the human-readable run summary. The numbers are the
// contract; this block is console convenience on top of them.
func FprintReport(w io.Writer, res Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Power line risk summary ===")
	fmt.Fprintf(w, "Simulations:         %s\n", humanize.Comma(int64(res.Report.Replicates)))
	fmt.Fprintf(w, "Asset cells per sim: %s\n", humanize.Comma(int64(res.Grid.Rows)))
	fmt.Fprintf(w, "Asset column:        %d\n", res.Asset.Column)
	fmt.Fprintf(w, "Asset hit count:     %d\n", res.Report.HitCount)
	fmt.Fprintf(w, "Asset hit rate:      %.2f%%\n", res.Report.HitRate*100)
	fmt.Fprintf(w, "Average asset loss:  %s\n", humanize.CommafWithDigits(res.Report.MeanLoss, 2))
	fmt.Fprintf(w, "Maximum asset loss:  %s\n", humanize.CommafWithDigits(res.Report.MaxLoss, 2))
}
