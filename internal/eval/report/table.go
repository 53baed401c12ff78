package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Subgroup List Evaluation ===\n\n")
	fmt.Fprintf(tw, "Dataset: %s (%d rows, TP=%d, FP=%d)\n", r.Meta.Dataset, r.Meta.Rows, r.Meta.TP, r.Meta.FP)
	fmt.Fprintf(tw, "Target: %s\n", r.Meta.Target)
	fmt.Fprintf(tw, "Quality measure: %s\n\n", r.Meta.Measure)

	header := []string{"Run", "Beta", "Pos", "Neg", "Lists", "Quality", "Coverage", "Mining", "Eval", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Runs {
		status := "OK"
		quality, cov := "N/A", "N/A"
		if e.Error != "" {
			status = "ERR"
		} else {
			quality = fmt.Sprintf("%.4f", e.MeanQuality)
			cov = fmt.Sprintf("%.4f", e.CoverageFraction)
		}
		row := []string{
			e.Name,
			fmt.Sprintf("%g", e.Beta),
			fmt.Sprintf("%g", e.MaxPositiveOverlap),
			fmt.Sprintf("%g", e.MaxNegativeOverlap),
			fmt.Sprintf("%d", len(e.Lists)),
			quality,
			cov,
			fmtDuration(e.MiningTime),
			fmtDuration(e.EvaluateTime),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)

	for _, e := range r.Runs {
		if e.Error != "" {
			fmt.Fprintf(tw, "%s: %s\n", e.Name, e.Error)
		}
	}

	tw.Flush()
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
