package suite

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// WriteSummary prints one row per case followed by aggregate latency.
func WriteSummary(s *Summary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", s.Name)

	header := []string{"Case", "Status", "Outputs", "Class", "p50", "Details"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, r := range s.Results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		details := strings.Join(r.Failures, "; ")
		if details == "" && r.Error != "" {
			details = r.Error
		}
		row := []string{
			r.ID,
			status,
			orDash(r.Outputs),
			orDash(string(r.Classification)),
			fmtDuration(r.Latency.P50),
			details,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed in %s (p50 %s, p99 %s over %d runs)\n",
		s.Passed, s.Failed, fmtDuration(s.Duration),
		fmtDuration(s.Latency.P50), fmtDuration(s.Latency.P99), s.Latency.Samples)

	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
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
