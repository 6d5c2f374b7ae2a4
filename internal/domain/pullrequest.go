// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// PullRequestState mirrors the state enum reported by the GitHub API.
type PullRequestState string

const (
	StateOpen   PullRequestState = "OPEN"
	StateClosed PullRequestState = "CLOSED"
	StateMerged PullRequestState = "MERGED"
)

// PullRequestSummary is a single pull request as returned by the paginated
// listing query. MergedAt is nil for pull requests that were never merged;
// the listing is restricted to merged state upstream, but consumers must not
// rely on that.
type PullRequestSummary struct {
	Number    int
	Title     string
	CreatedAt time.Time
	MergedAt  *time.Time
	State     PullRequestState
}

// PullRequestDetail holds the change-size counters for one pull request.
// It is fetched lazily, one API call per pull request.
type PullRequestDetail struct {
	Additions int
	Deletions int
}

// LinesChanged is the total diff size of the pull request.
func (d PullRequestDetail) LinesChanged() int {
	return d.Additions + d.Deletions
}
