package cli

import (
	"sort"
	"strconv"

	"github.com/AndreyAkinshin/jobsummary/internal/output"
	"github.com/AndreyAkinshin/jobsummary/internal/summarize"
	"github.com/AndreyAkinshin/jobsummary/internal/warnings"
)

// maxTopWarnings bounds the warning table printed to the console.
const maxTopWarnings = 10

// printSummary prints a short console digest of a finished run.
func printSummary(w *output.Writer, reportPath string, result *summarize.Result) {
	w.Heading("Job Summary")

	w.Metric("Warnings", strconv.Itoa(result.Histogram.Total()), output.Neutral)
	w.Metric("Distinct", strconv.Itoa(result.Histogram.Len()), output.Neutral)

	if top := topWarnings(result.Histogram, maxTopWarnings); len(top) > 0 {
		w.Blank()
		w.Label("Top warnings:")
		rows := make([][]string, 0, len(top))
		for _, e := range top {
			rows = append(rows, []string{e.ID, strconv.Itoa(e.Count)})
		}
		w.Table([]string{"Warning", "Count"}, rows)
	}

	counts := result.Counts
	w.Blank()
	if counts.Parsed {
		w.Metric("Passed", strconv.Itoa(counts.Passed), output.Good)
		if counts.Failed > 0 {
			w.Metric("Failed", strconv.Itoa(counts.Failed), output.Bad)
		}
		if counts.Skipped > 0 {
			w.Metric("Skipped", strconv.Itoa(counts.Skipped), output.Neutral)
		}
		w.Metric("Total", strconv.Itoa(counts.Total), output.Neutral)
	} else {
		w.Metric("Tests", "no CTest results found", output.Neutral)
	}

	if len(counts.FailedTests) > 0 {
		w.Blank()
		w.Label("Failed tests:")
		for _, ft := range counts.FailedTests {
			w.Metric("  "+ft.Name, ft.Reason, output.Bad)
		}
	}

	w.Done("Report written to %s", reportPath)
}

// topWarnings returns up to n entries ordered by descending count.
// Ties keep first-seen order.
func topWarnings(h *warnings.Histogram, n int) []warnings.Entry {
	entries := h.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
