package renderer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
)

const dateLayout = "2006-01-02"

// writeConsole renders a human-readable listing per repository followed by
// the headline statistics, in minutes and hours.
func writeConsole(w io.Writer, reports []*domain.RepositoryReport) error {
	for _, report := range reports {
		fmt.Fprintf(w, "Repository: %s\n", report.RepositoryName)
		fmt.Fprintf(w, "Window:     %s to %s\n", report.WindowStart.Format(dateLayout), report.WindowEnd.Format(dateLayout))
		fmt.Fprintf(w, "Merged pull requests: %d\n", len(report.PullRequests))

		if len(report.PullRequests) == 0 {
			fmt.Fprintln(w)
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  NUMBER\tTITLE\tTIME TO MERGE (MIN)\tADDED\tDELETED")
		for _, pr := range report.PullRequests {
			fmt.Fprintf(tw, "  #%d\t%s\t%.2f\t%d\t%d\n", pr.Number, pr.Title, pr.TimeToMergeMinutes, pr.LinesAdded, pr.LinesDeleted)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(w, "Average time to merge: %.2f minutes (%.2f hours)\n", report.AverageTimeToMerge, report.AverageTimeToMerge/60)
		fmt.Fprintf(w, "Min/Max time to merge: %.2f / %.2f minutes\n", report.MinTimeToMerge, report.MaxTimeToMerge)
		fmt.Fprintf(w, "Deviation from average: -%.2f / +%.2f minutes\n", report.DeviationMinFromAverage, report.DeviationMaxFromAverage)
		fmt.Fprintf(w, "Lines changed: avg %d, min %d, max %d\n", report.AverageLinesChanged, report.MinLinesChanged, report.MaxLinesChanged)
		fmt.Fprintln(w)
	}
	return nil
}
