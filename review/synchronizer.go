// Package review implements the request synchronizer: it drives every
// lifecycle operation over the forge provider and the local repository,
// and enforces consistency between the two. The provider and the local
// repository never talk to each other directly; every cross-reference
// passes through the synchronizer.
package review

import (
	"fmt"
	"io"

	"github.com/criteo/git-review/output"
	"github.com/criteo/git-review/scm"
)

// LocalRepository is the slice of the local git adapter the synchronizer
// depends on.
type LocalRepository interface {
	CurrentBranch() (string, error)
	TargetBranch() string
	Checkout(ref string) error
	CheckoutRequest(req *scm.Request) error
	TitleAndBody(target string) (string, string, error)
}

// Synchronizer reconciles local branch state with the remote request
// lifecycle. It holds only transient copies of remote state; the provider
// remains authoritative.
type Synchronizer struct {
	provider scm.Provider
	repo     LocalRepository
	source   scm.Repo
	out      io.Writer
	styles   output.Styles
	open     func(url string) error
}

// New builds a Synchronizer over the given provider and local repository.
// The source repository identity is used when creating requests from a fork.
func New(provider scm.Provider, repo LocalRepository, source scm.Repo, out io.Writer, styles output.Styles) *Synchronizer {
	return &Synchronizer{
		provider: provider,
		repo:     repo,
		source:   source,
		out:      out,
		styles:   styles,
		open:     output.OpenBrowser,
	}
}

// WithOpener replaces the browser opener used by Browse. Intended for tests.
func (s *Synchronizer) WithOpener(open func(url string) error) *Synchronizer {
	s.open = open
	return s
}

// List prints all open requests, newest first, or oldest first when reverse
// is set. A pure projection over fetched requests; remote state is never
// mutated.
func (s *Synchronizer) List(reverse bool) error {
	requests, err := s.provider.CurrentRequestsFull()
	if err != nil {
		return err
	}

	if len(requests) == 0 {
		fmt.Fprintln(s.out, "No open requests")
		return nil
	}

	scm.SortByDate(requests, reverse)

	for _, req := range requests {
		fmt.Fprintln(s.out, s.styles.RequestLine(req))
	}

	return nil
}

// Requests fetches the open requests with full detail, sorted for display.
// Used by the interactive picker.
func (s *Synchronizer) Requests(reverse bool) ([]*scm.Request, error) {
	requests, err := s.provider.CurrentRequestsFull()
	if err != nil {
		return nil, err
	}

	scm.SortByDate(requests, reverse)

	return requests, nil
}

// Show prints one open request in detail. With full set, the aggregated
// discussion is printed as well.
func (s *Synchronizer) Show(id int, full bool) error {
	req, err := s.provider.RequestExists(id, scm.StateOpen)
	if err != nil {
		return err
	}

	if req == nil {
		return fmt.Errorf("no open request #%d", id)
	}

	comments, err := s.provider.CommentsCount(req)
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, s.styles.RequestDetail(req, comments))

	if !full {
		return nil
	}

	discussion, err := s.provider.Discussion(id)
	if err != nil {
		return err
	}

	if len(discussion) > 0 {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, s.styles.Header("Discussion"))

		for _, line := range discussion {
			fmt.Fprintln(s.out, line)
		}
	}

	return nil
}

// Browse opens the request's page in the browser.
func (s *Synchronizer) Browse(id int) error {
	req, err := s.provider.RequestExists(id, scm.StateOpen)
	if err != nil {
		return err
	}

	if req == nil {
		return fmt.Errorf("no open request #%d", id)
	}

	return s.open(req.HTMLURL)
}

// Checkout switches the working tree to the request's source branch. Not a
// lifecycle transition: the request does not need to be open, remote state
// is only read.
func (s *Synchronizer) Checkout(id int) error {
	req, err := s.provider.RequestExists(id, "")
	if err != nil {
		return err
	}

	if req == nil {
		return fmt.Errorf("request #%d does not exist", id)
	}

	if err := s.repo.CheckoutRequest(req); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Checked out request #%d (%s)\n", req.Number, req.SourceBranch)

	return nil
}

// Accept merges the request, transitioning it from open to merged. The
// transition is confirmed by re-fetching the request and checking its state.
func (s *Synchronizer) Accept(id int) error {
	req, err := s.provider.RequestExists(id, scm.StateOpen)
	if err != nil {
		return err
	}

	if req == nil {
		return fmt.Errorf("no open request #%d", id)
	}

	if err := s.provider.AcceptRequest(id); err != nil {
		return err
	}

	merged, err := s.provider.RequestExists(id, scm.StateMerged)
	if err != nil {
		return err
	}

	if merged == nil {
		return fmt.Errorf("merge of request #%d could not be confirmed", id)
	}

	fmt.Fprintf(s.out, "Request #%d merged\n", id)

	return nil
}

// Decline closes the request without merging, transitioning it from open to
// closed.
func (s *Synchronizer) Decline(id int) error {
	req, err := s.provider.RequestExists(id, scm.StateOpen)
	if err != nil {
		return err
	}

	if req == nil {
		return fmt.Errorf("no open request #%d", id)
	}

	if err := s.provider.DeclineRequest(id); err != nil {
		return err
	}

	closed, err := s.provider.RequestExists(id, scm.StateClosed)
	if err != nil {
		return err
	}

	if closed == nil {
		return fmt.Errorf("decline of request #%d could not be confirmed", id)
	}

	fmt.Fprintf(s.out, "Request #%d declined\n", id)

	return nil
}

// Create opens a new request for the current branch. The title and body are
// derived from the commit range against the target branch, the working tree
// is switched back to the target branch, and creation is verified by
// searching for a request with the submitted title and a number above the
// pre-creation latest. Absence after creation means failure and is reported,
// never silently retried.
func (s *Synchronizer) Create() error {
	branch, err := s.repo.CurrentBranch()
	if err != nil {
		return err
	}

	target := s.repo.TargetBranch()
	if branch == target {
		return fmt.Errorf("current branch %s is the target branch; nothing to request", branch)
	}

	exists, err := s.provider.RequestExistsForBranch(branch)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("a request already exists for branch %s", branch)
	}

	title, body, err := s.repo.TitleAndBody(target)
	if err != nil {
		return err
	}

	if title == "" {
		return fmt.Errorf("no commits between %s and %s to build a request from", target, branch)
	}

	latest, err := s.provider.LatestRequestNumber()
	if err != nil {
		return err
	}

	if err := s.provider.OpenRequest(s.source, branch, target, title, body); err != nil {
		return err
	}

	if err := s.repo.Checkout(target); err != nil {
		return err
	}

	// Creation APIs do not reliably return an identifier, so verification is
	// part of the contract: the new request must carry the submitted title
	// and a number above the pre-creation latest.
	number, err := s.provider.RequestNumberByTitle(title)
	if err != nil {
		return err
	}

	if number <= latest {
		return &scm.VerificationError{Title: title}
	}

	fmt.Fprintf(s.out, "Request #%d created: %s\n", number, title)

	return nil
}
