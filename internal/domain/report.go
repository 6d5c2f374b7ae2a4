package domain

import "time"

// Window is the half-open time range a report covers. A pull request
// qualifies when its merge timestamp is not before Start.
type Window struct {
	Start time.Time
	End   time.Time
}

// PullRequestReport is one analyzed pull request inside a RepositoryReport.
type PullRequestReport struct {
	Number             int     `json:"number"`
	Title              string  `json:"title"`
	TimeToMergeMinutes float64 `json:"timeToMergeMinutes"`
	LinesAdded         int     `json:"linesAdded"`
	LinesDeleted       int     `json:"linesDeleted"`
}

// RepositoryReport holds the aggregated merge statistics for a single
// repository over a time window. It is constructed once per repository and
// never mutated afterwards; callers collect the reports into an ordered list.
//
// When no pull request qualifies, all aggregate fields are zero. The
// deviation fields are then zero as well, which is indistinguishable from
// "zero deviation" - PullRequests being empty is the signal for "no data".
type RepositoryReport struct {
	RepositoryName          string              `json:"repositoryName"`
	WindowStart             time.Time           `json:"windowStart"`
	WindowEnd               time.Time           `json:"windowEnd"`
	PullRequests            []PullRequestReport `json:"pullRequests"`
	AverageTimeToMerge      float64             `json:"averageTimeToMerge"`
	MinTimeToMerge          float64             `json:"minTimeToMerge"`
	MaxTimeToMerge          float64             `json:"maxTimeToMerge"`
	DeviationMinFromAverage float64             `json:"deviationMinFromAverage"`
	DeviationMaxFromAverage float64             `json:"deviationMaxFromAverage"`
	AverageLinesChanged     int                 `json:"averageLinesChanged"`
	MinLinesChanged         int                 `json:"minLinesChanged"`
	MaxLinesChanged         int                 `json:"maxLinesChanged"`
}
