// Package fake implements an in-memory scm.Provider for testing.
package fake

import (
	"context"

	"github.com/criteo/git-review/scm"
)

var _ scm.Provider = new(Fake)

func init() {
	// Register the fake provider factory
	scm.Register("fake", New)
}

// OpenCall records one OpenRequest invocation.
type OpenCall struct {
	Source       scm.Repo
	SourceBranch string
	TargetBranch string
	Title        string
	Body         string
}

// Fake is a configurable in-memory provider. Requests holds every known
// request regardless of state; CurrentRequests filters to open ones.
type Fake struct {
	Target   scm.Repo
	Requests []*scm.Request

	// Discussion segments keyed by request number.
	CommitLines map[int][]string
	IssueLines  map[int][]string

	// Per-commit comment totals keyed by request number, added on top of the
	// request's own counters by CommentsCount.
	CommitCommentTotals map[int]int

	// AutoCreate makes OpenRequest append a new open request numbered
	// NextNumber, so that creation verification succeeds.
	AutoCreate bool
	NextNumber int

	Opened     []OpenCall
	Configured bool
	Errors     map[string]error
}

// New creates an empty fake provider bound to the given target repository.
func New(_ context.Context, target scm.Repo) scm.Provider {
	return NewFake(target)
}

// NewFake creates an empty fake provider with direct access to its fields.
func NewFake(target scm.Repo) *Fake {
	return &Fake{
		Target:              target,
		Requests:            make([]*scm.Request, 0),
		CommitLines:         make(map[int][]string),
		IssueLines:          make(map[int][]string),
		CommitCommentTotals: make(map[int]int),
		Errors:              make(map[string]error),
	}
}

// SetError configures the provider to return an error for a specific method.
func (f *Fake) SetError(method string, err error) {
	f.Errors[method] = err
}

func (f *Fake) ConfigureAccess() error {
	if err := f.Errors["ConfigureAccess"]; err != nil {
		return err
	}

	f.Configured = true

	return nil
}

func (f *Fake) RequestExists(id int, state string) (*scm.Request, error) {
	if err := f.Errors["RequestExists"]; err != nil {
		return nil, err
	}

	for _, req := range f.Requests {
		if req.Number != id {
			continue
		}

		if state != "" && req.State != state {
			return nil, nil
		}

		copied := *req

		return &copied, nil
	}

	return nil, nil
}

func (f *Fake) RequestExistsForBranch(branch string) (bool, error) {
	if err := f.Errors["RequestExistsForBranch"]; err != nil {
		return false, err
	}

	for _, req := range f.Requests {
		if req.State == scm.StateOpen && req.SourceBranch == branch {
			return true, nil
		}
	}

	return false, nil
}

func (f *Fake) CurrentRequests() ([]*scm.Request, error) {
	if err := f.Errors["CurrentRequests"]; err != nil {
		return nil, err
	}

	output := make([]*scm.Request, 0)
	for _, req := range f.Requests {
		if req.State == scm.StateOpen {
			copied := *req
			output = append(output, &copied)
		}
	}

	return output, nil
}

func (f *Fake) CurrentRequestsFull() ([]*scm.Request, error) {
	if err := f.Errors["CurrentRequestsFull"]; err != nil {
		return nil, err
	}

	return f.CurrentRequests()
}

func (f *Fake) OpenRequest(source scm.Repo, sourceBranch, targetBranch, title, body string) error {
	if err := f.Errors["OpenRequest"]; err != nil {
		return err
	}

	f.Opened = append(f.Opened, OpenCall{
		Source:       source,
		SourceBranch: sourceBranch,
		TargetBranch: targetBranch,
		Title:        title,
		Body:         body,
	})

	if f.AutoCreate {
		f.Requests = append(f.Requests, &scm.Request{
			Number:       f.NextNumber,
			Title:        title,
			Body:         body,
			State:        scm.StateOpen,
			SourceBranch: sourceBranch,
			TargetBranch: targetBranch,
			SourceRepo:   source,
			TargetRepo:   f.Target,
		})
	}

	return nil
}

func (f *Fake) AcceptRequest(id int) error {
	if err := f.Errors["AcceptRequest"]; err != nil {
		return err
	}

	return f.setState(id, scm.StateMerged)
}

func (f *Fake) DeclineRequest(id int) error {
	if err := f.Errors["DeclineRequest"]; err != nil {
		return err
	}

	return f.setState(id, scm.StateClosed)
}

func (f *Fake) setState(id int, state string) error {
	for _, req := range f.Requests {
		if req.Number == id {
			req.State = state
			return nil
		}
	}

	return scm.ErrNotFound
}

func (f *Fake) CommitDiscussion(id int) ([]string, error) {
	if err := f.Errors["CommitDiscussion"]; err != nil {
		return nil, err
	}

	return append([]string{}, f.CommitLines[id]...), nil
}

func (f *Fake) IssueDiscussion(id int) ([]string, error) {
	if err := f.Errors["IssueDiscussion"]; err != nil {
		return nil, err
	}

	return append([]string{}, f.IssueLines[id]...), nil
}

func (f *Fake) Discussion(id int) ([]string, error) {
	commitLines, err := f.CommitDiscussion(id)
	if err != nil {
		return nil, err
	}

	issueLines, err := f.IssueDiscussion(id)
	if err != nil {
		return nil, err
	}

	return append(commitLines, issueLines...), nil
}

func (f *Fake) CommentsCount(req *scm.Request) (int, error) {
	if err := f.Errors["CommentsCount"]; err != nil {
		return 0, err
	}

	return req.Comments + req.ReviewComments + f.CommitCommentTotals[req.Number], nil
}

func (f *Fake) LatestRequestNumber() (int, error) {
	if err := f.Errors["LatestRequestNumber"]; err != nil {
		return 0, err
	}

	requests, err := f.CurrentRequests()
	if err != nil {
		return 0, err
	}

	return scm.LatestNumber(requests), nil
}

func (f *Fake) RequestNumberByTitle(title string) (int, error) {
	if err := f.Errors["RequestNumberByTitle"]; err != nil {
		return 0, err
	}

	for _, req := range f.Requests {
		if req.State == scm.StateOpen && req.Title == title {
			return req.Number, nil
		}
	}

	return 0, nil
}
