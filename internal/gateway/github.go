// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching pull request
// information from GitHub.
type Fetcher interface {
	// FetchMergedPullRequests returns every merged pull request of the
	// repository, following cursor pagination until exhausted. The slice
	// preserves server order.
	FetchMergedPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequestSummary, error)
	// FetchPullRequestDetail retrieves the change-size counters for a single
	// pull request. One API call per invocation.
	FetchPullRequestDetail(ctx context.Context, owner, repo string, number int) (domain.PullRequestDetail, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// mergedPullRequestsQuery pages through a repository's merged pull requests.
// Page size 100 is the API maximum for this connection.
type mergedPullRequestsQuery struct {
	Repository struct {
		PullRequests struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Edges []struct {
				Node struct {
					Number    int
					Title     string
					CreatedAt githubv4.DateTime
					MergedAt  *githubv4.DateTime
					State     string
				}
			}
		} `graphql:"pullRequests(states: [MERGED], first: 100, after: $cursor, orderBy: {field: CREATED_AT, direction: DESC})"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchMergedPullRequests pages through the repository's merged pull requests
// with the GraphQL API until hasNextPage reports false.
func (g *GitHubGateway) FetchMergedPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequestSummary, error) {
	g.logger.Printf("Fetching merged pull requests for %s/%s...\n", owner, repo)

	variables := map[string]interface{}{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"cursor": (*githubv4.String)(nil),
	}

	var summaries []domain.PullRequestSummary
	for {
		var q mergedPullRequestsQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for merged pull requests of %s/%s: %w", owner, repo, err)
		}

		for _, edge := range q.Repository.PullRequests.Edges {
			node := edge.Node
			summary := domain.PullRequestSummary{
				Number:    node.Number,
				Title:     node.Title,
				CreatedAt: node.CreatedAt.Time,
				State:     domain.PullRequestState(node.State),
			}
			if node.MergedAt != nil {
				mergedAt := node.MergedAt.Time
				summary.MergedAt = &mergedAt
			}
			summaries = append(summaries, summary)
		}

		if !q.Repository.PullRequests.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Repository.PullRequests.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of merged pull requests...")
	}
	g.logger.Printf("Completed fetching %d merged pull requests for %s/%s.\n", len(summaries), owner, repo)
	return summaries, nil
}

// FetchPullRequestDetail looks up a single pull request with the REST API and
// returns its additions/deletions counters.
func (g *GitHubGateway) FetchPullRequestDetail(ctx context.Context, owner, repo string, number int) (domain.PullRequestDetail, error) {
	pr, _, err := g.restClient.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return domain.PullRequestDetail{}, fmt.Errorf("failed to fetch detail for pull request %s/%s#%d: %w", owner, repo, number, err)
	}
	return domain.PullRequestDetail{
		Additions: pr.GetAdditions(),
		Deletions: pr.GetDeletions(),
	}, nil
}
