package usecase

import (
	"context"
	"log"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
	"github.com/lechnerc77/github-pr-analytics/internal/gateway"
)

// Analyzer is the use case for building per-repository merge statistics.
// It orchestrates the fetching and aggregation of pull request data.
type Analyzer struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(fetcher gateway.Fetcher, logger *log.Logger) *Analyzer {
	return &Analyzer{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Analyze builds the report for a single repository: it fetches all merged
// pull requests, keeps the ones merged inside the window, fetches the
// change-size detail for each survivor, and aggregates the timing and size
// statistics. Every remote call is awaited before the next one starts.
func (a *Analyzer) Analyze(ctx context.Context, repo domain.Repository, window domain.Window) (*domain.RepositoryReport, error) {
	summaries, err := a.fetcher.FetchMergedPullRequests(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, err
	}

	report := &domain.RepositoryReport{
		RepositoryName: repo.FullName(),
		WindowStart:    window.Start,
		WindowEnd:      window.End,
		PullRequests:   []domain.PullRequestReport{},
	}

	var mergeMinutes, linesChanged []float64
	for _, pr := range summaries {
		// The listing query is restricted to merged pull requests, but a nil
		// merge timestamp must be skipped rather than crash the run.
		if pr.MergedAt == nil || pr.MergedAt.Before(window.Start) {
			continue
		}

		detail, err := a.fetcher.FetchPullRequestDetail(ctx, repo.Owner, repo.Name, pr.Number)
		if err != nil {
			return nil, err
		}

		minutes := pr.MergedAt.Sub(pr.CreatedAt).Minutes()
		report.PullRequests = append(report.PullRequests, domain.PullRequestReport{
			Number:             pr.Number,
			Title:              pr.Title,
			TimeToMergeMinutes: round2(minutes),
			LinesAdded:         detail.Additions,
			LinesDeleted:       detail.Deletions,
		})
		mergeMinutes = append(mergeMinutes, minutes)
		linesChanged = append(linesChanged, float64(detail.LinesChanged()))
	}

	// With no qualifying pull requests every aggregate stays at its zero
	// value; an empty PullRequests slice marks the report as "no data".
	if len(mergeMinutes) == 0 {
		a.logger.Printf("No pull requests merged in %s since %s.\n", repo.FullName(), window.Start.Format("2006-01-02"))
		return report, nil
	}

	// The stats functions only error on empty input, which is excluded above.
	minMinutes, _ := stats.Min(mergeMinutes)
	maxMinutes, _ := stats.Max(mergeMinutes)
	avgMinutes, _ := stats.Mean(mergeMinutes)
	minLines, _ := stats.Min(linesChanged)
	maxLines, _ := stats.Max(linesChanged)
	avgLines, _ := stats.Mean(linesChanged)

	report.AverageTimeToMerge = round2(avgMinutes)
	report.MinTimeToMerge = round2(minMinutes)
	report.MaxTimeToMerge = round2(maxMinutes)
	report.DeviationMinFromAverage = round2(avgMinutes - minMinutes)
	report.DeviationMaxFromAverage = round2(maxMinutes - avgMinutes)
	report.AverageLinesChanged = int(math.Round(avgLines))
	report.MinLinesChanged = int(minLines)
	report.MaxLinesChanged = int(maxLines)

	return report, nil
}

// AnalyzeAll processes the repositories strictly in order. A repository
// whose analysis fails is logged and skipped; the remaining repositories
// are still processed and included in the result.
func (a *Analyzer) AnalyzeAll(ctx context.Context, repos []domain.Repository, window domain.Window) []*domain.RepositoryReport {
	reports := make([]*domain.RepositoryReport, 0, len(repos))
	for _, repo := range repos {
		report, err := a.Analyze(ctx, repo, window)
		if err != nil {
			a.logger.Printf("Skipping %s: %v\n", repo.FullName(), err)
			continue
		}
		reports = append(reports, report)
	}
	return reports
}

func round2(value float64) float64 {
	rounded, err := stats.Round(value, 2)
	if err != nil {
		return 0
	}
	return rounded
}
