package github

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-github/v74/github"
	"golang.org/x/sync/semaphore"

	"github.com/criteo/git-review/config"
	"github.com/criteo/git-review/scm"
)

// RequestExists fetches one request by identifier, returning (nil, nil) when
// the remote reports not-found or when the fetched state does not match the
// given filter.
func (g *Github) RequestExists(id int, state string) (*scm.Request, error) {
	resp, _, err := g.client.PullRequests.Get(g.ctx, g.target.Owner, g.target.Name, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get request #%d: %w", id, err)
	}

	req := parseRequest(resp)
	if state != "" && req.State != state {
		return nil, nil
	}

	return req, nil
}

// RequestExistsForBranch reports whether any open request targeting the
// bound repository has the given source branch. This is a linear scan over
// every request; there is no server-side filter to lean on.
func (g *Github) RequestExistsForBranch(branch string) (bool, error) {
	requests, err := g.CurrentRequests()
	if err != nil {
		return false, err
	}

	branches := mapset.NewSet[string]()
	for _, req := range requests {
		branches.Add(req.SourceBranch)
	}

	return branches.Contains(branch), nil
}

// CurrentRequests lists all open requests for the bound repository,
// traversing every result page.
func (g *Github) CurrentRequests() ([]*scm.Request, error) {
	output := make([]*scm.Request, 0)
	opt := &github.PullRequestListOptions{
		State:       scm.StateOpen,
		ListOptions: github.ListOptions{PerPage: 50},
	}

	for {
		resp, page, err := g.client.PullRequests.List(g.ctx, g.target.Owner, g.target.Name, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list requests: %w", err)
		}

		for _, pr := range resp {
			output = append(output, parseRequest(pr))
		}

		if page.NextPage == 0 {
			break
		}

		opt.Page = page.NextPage
	}

	return output, nil
}

// CurrentRequestsFull fetches full detail for every open request, one
// concurrent fetch per request with a bounded fan-out. Results are collected
// keyed by identifier because completion order is not request order; callers
// apply output ordering downstream. All fetches run to completion, then the
// first observed error (if any) is returned.
func (g *Github) CurrentRequestsFull() ([]*scm.Request, error) {
	requests, err := g.CurrentRequests()
	if err != nil {
		return nil, err
	}

	concurrency := config.Viper(g.ctx).GetInt(config.RequestConcurrency)
	if concurrency <= 0 {
		concurrency = 1
	}

	var (
		mu       sync.Mutex
		firstErr error
		results  = make(map[int]*scm.Request, len(requests))
	)

	sem := semaphore.NewWeighted(int64(concurrency))
	wg := new(sync.WaitGroup)

	for _, req := range requests {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()

			if err := sem.Acquire(g.ctx, 1); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()

				return
			}
			defer sem.Release(1)

			full, _, err := g.client.PullRequests.Get(g.ctx, g.target.Owner, g.target.Name, id)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to get request #%d: %w", id, err)
				}

				return
			}

			results[id] = parseRequest(full)
		}(req.Number)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	output := make([]*scm.Request, 0, len(results))
	for _, req := range requests {
		if full, ok := results[req.Number]; ok {
			output = append(output, full)
		}
	}

	return output, nil
}

// OpenRequest creates a new request from the given source repository and
// branch into the bound repository's target branch.
func (g *Github) OpenRequest(source scm.Repo, sourceBranch, targetBranch, title, body string) error {
	head := sourceBranch
	if source.Owner != g.target.Owner {
		// cross-repository request from a fork
		head = fmt.Sprintf("%s:%s", source.Owner, sourceBranch)
	}

	_, _, err := g.client.PullRequests.Create(g.ctx, g.target.Owner, g.target.Name, &github.NewPullRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
		Head:  github.Ptr(head),
		Base:  github.Ptr(targetBranch),
	})
	if err != nil {
		return fmt.Errorf("failed to open request: %w", err)
	}

	return nil
}

// AcceptRequest merges the request.
func (g *Github) AcceptRequest(id int) error {
	_, _, err := g.client.PullRequests.Merge(g.ctx, g.target.Owner, g.target.Name, id, "", nil)
	if err != nil {
		return fmt.Errorf("failed to merge request #%d: %w", id, err)
	}

	return nil
}

// DeclineRequest closes the request without merging.
func (g *Github) DeclineRequest(id int) error {
	_, _, err := g.client.PullRequests.Edit(g.ctx, g.target.Owner, g.target.Name, id, &github.PullRequest{
		State: github.Ptr(scm.StateClosed),
	})
	if err != nil {
		return fmt.Errorf("failed to close request #%d: %w", id, err)
	}

	return nil
}

// LatestRequestNumber returns the maximum identifier among all known
// requests, or 0 for an empty repository.
func (g *Github) LatestRequestNumber() (int, error) {
	requests, err := g.CurrentRequests()
	if err != nil {
		return 0, err
	}

	return scm.LatestNumber(requests), nil
}

// RequestNumberByTitle returns the number of the first request whose title
// exactly matches, in server-returned order, or 0 if none does.
func (g *Github) RequestNumberByTitle(title string) (int, error) {
	requests, err := g.CurrentRequests()
	if err != nil {
		return 0, err
	}

	for _, req := range requests {
		if req.Title == title {
			return req.Number, nil
		}
	}

	return 0, nil
}

func parseRequest(pr *github.PullRequest) *scm.Request {
	state := pr.GetState()
	if pr.GetMerged() || !pr.GetMergedAt().IsZero() {
		state = scm.StateMerged
	}

	return &scm.Request{
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		Body:           pr.GetBody(),
		State:          state,
		SourceBranch:   pr.GetHead().GetRef(),
		TargetBranch:   pr.GetBase().GetRef(),
		SourceRepo:     parseRepo(pr.GetHead().GetRepo()),
		TargetRepo:     parseRepo(pr.GetBase().GetRepo()),
		Comments:       pr.GetComments(),
		ReviewComments: pr.GetReviewComments(),
		HTMLURL:        pr.GetHTMLURL(),
		CreatedAt:      pr.GetCreatedAt().Time,
		UpdatedAt:      pr.GetUpdatedAt().Time,
	}
}

func parseRepo(repo *github.Repository) scm.Repo {
	return scm.Repo{
		Owner: repo.GetOwner().GetLogin(),
		Name:  repo.GetName(),
	}
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}

	return false
}
