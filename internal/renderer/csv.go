package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
)

// csvHeader keeps the historical column names, including the capitalization
// of the last one; downstream consumers parse this header verbatim.
const csvHeader = "repository_name,starttime,endtime,number_of_prs,average_time_to_merge,min_time_to_merge,max_time_to_merge,average_lines_changed,min_lines_changed,max_lines_Changed"

// writeCSV emits one row per repository. Fields are joined with commas and
// intentionally not quoted or escaped, matching the established file format.
func writeCSV(w io.Writer, reports []*domain.RepositoryReport) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for _, report := range reports {
		row := []string{
			report.RepositoryName,
			report.WindowStart.Format(dateLayout),
			report.WindowEnd.Format(dateLayout),
			fmt.Sprintf("%d", len(report.PullRequests)),
			fmt.Sprintf("%.2f", report.AverageTimeToMerge),
			fmt.Sprintf("%.2f", report.MinTimeToMerge),
			fmt.Sprintf("%.2f", report.MaxTimeToMerge),
			fmt.Sprintf("%d", report.AverageLinesChanged),
			fmt.Sprintf("%d", report.MinLinesChanged),
			fmt.Sprintf("%d", report.MaxLinesChanged),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return err
		}
	}
	return nil
}
