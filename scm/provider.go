// Package scm defines the forge provider capability used by the request
// synchronizer, along with the shared request and discussion models.
package scm

import (
	"context"
	"fmt"
)

var providerFactories = make(map[string]ProviderFactory)

// ProviderFactory builds a Provider bound to the given target repository.
type ProviderFactory func(ctx context.Context, target Repo) Provider

// Provider is the forge capability for listing, fetching and mutating remote
// review requests. Implementations translate transport-level not-found and
// 4xx responses into the scm error taxonomy at this boundary; genuinely
// unexpected errors (network failure, 5xx) propagate unmodified.
type Provider interface {
	// ConfigureAccess establishes an authenticated session, triggering the
	// authorization sub-flow when credentials are absent. May persist new
	// settings as a side effect.
	ConfigureAccess() error

	// RequestExists fetches one request by identifier. It returns (nil, nil)
	// if the remote reports not-found, or if the fetched state does not match
	// the given state filter (empty state matches any). Callers needing to
	// disambiguate "absent" from "wrong state" must re-fetch without a filter.
	RequestExists(id int, state string) (*Request, error)

	// RequestExistsForBranch reports whether any request targeting the bound
	// repository has the given source branch. Linear scan over all requests.
	RequestExistsForBranch(branch string) (bool, error)

	// CurrentRequests lists all open requests for the bound repository,
	// traversing every result page.
	CurrentRequests() ([]*Request, error)

	// CurrentRequestsFull fetches full detail for every open request
	// concurrently. Output order is not guaranteed to match input order;
	// all results are present or the call fails with the first observed
	// error after every fetch has completed.
	CurrentRequestsFull() ([]*Request, error)

	// OpenRequest creates a new request from the given source repository and
	// branch into the bound repository's target branch.
	OpenRequest(source Repo, sourceBranch, targetBranch, title, body string) error

	// AcceptRequest merges the request.
	AcceptRequest(id int) error
	// DeclineRequest closes the request without merging.
	DeclineRequest(id int) error

	// CommitDiscussion returns the formatted commit-thread segment of the
	// request's discussion: one header per commit followed by its comments,
	// in server order.
	CommitDiscussion(id int) ([]string, error)
	// IssueDiscussion returns the formatted issue and review comment segment,
	// issue comments first.
	IssueDiscussion(id int) ([]string, error)
	// Discussion returns the full discussion: the commit segment followed by
	// the issue segment. The two segments are never interleaved by timestamp.
	Discussion(id int) ([]string, error)

	// CommentsCount sums issue comments, review comments and per-commit
	// comment counts for the request.
	CommentsCount(req *Request) (int, error)

	// LatestRequestNumber returns the maximum identifier among all known
	// requests, or 0 if none exist.
	LatestRequestNumber() (int, error)

	// RequestNumberByTitle returns the number of the first request (in
	// server-returned order) whose title exactly matches, or 0 if none does.
	RequestNumberByTitle(title string) (int, error)
}

// Get retrieves a registered provider by name.
// If the provider is not registered, it panics.
func Get(ctx context.Context, name string, target Repo) Provider {
	if factory, exists := providerFactories[name]; exists {
		return factory(ctx, target)
	}

	panic(fmt.Sprintf("SCM provider %s not registered", name))
}

// Register a new provider factory by name.
func Register(name string, factory ProviderFactory) {
	if _, exists := providerFactories[name]; !exists {
		providerFactories[name] = factory
	}
}
