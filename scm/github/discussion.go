package github

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v74/github"

	"github.com/criteo/git-review/scm"
)

// CommitDiscussion returns the commit-thread segment of the request's
// discussion: one header per commit, then that commit's comments, in server
// order.
func (g *Github) CommitDiscussion(id int) ([]string, error) {
	commits, err := g.listCommits(id)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0)

	for _, commit := range commits {
		lines = append(lines, formatCommitHeader(commit))

		comments, _, err := g.client.Repositories.ListCommitComments(g.ctx, g.target.Owner, g.target.Name, commit.GetSHA(), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for commit %s: %w", commit.GetSHA(), err)
		}

		for _, comment := range comments {
			lines = append(lines, formatEntry(scm.DiscussionEntry{
				Author:    comment.GetUser().GetLogin(),
				Body:      comment.GetBody(),
				CommitSHA: comment.GetCommitID(),
				CreatedAt: comment.GetCreatedAt().Time,
			}))
		}
	}

	return lines, nil
}

// IssueDiscussion returns the issue and review comment segment of the
// discussion, issue comments first, each stream in server order.
func (g *Github) IssueDiscussion(id int) ([]string, error) {
	lines := make([]string, 0)

	issueComments, _, err := g.client.Issues.ListComments(g.ctx, g.target.Owner, g.target.Name, id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list issue comments for #%d: %w", id, err)
	}

	for _, comment := range issueComments {
		lines = append(lines, formatEntry(scm.DiscussionEntry{
			Author:    comment.GetUser().GetLogin(),
			Body:      comment.GetBody(),
			CreatedAt: comment.GetCreatedAt().Time,
		}))
	}

	reviewComments, _, err := g.client.PullRequests.ListComments(g.ctx, g.target.Owner, g.target.Name, id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list review comments for #%d: %w", id, err)
	}

	for _, comment := range reviewComments {
		lines = append(lines, formatEntry(scm.DiscussionEntry{
			Author:    comment.GetUser().GetLogin(),
			Body:      comment.GetBody(),
			CommitSHA: comment.GetCommitID(),
			CreatedAt: comment.GetCreatedAt().Time,
		}))
	}

	return lines, nil
}

// Discussion returns the full discussion: the commit segment followed by the
// issue segment. The two segments are concatenated, never interleaved by
// timestamp; downstream display formatting relies on this structure.
func (g *Github) Discussion(id int) ([]string, error) {
	commitLines, err := g.CommitDiscussion(id)
	if err != nil {
		return nil, err
	}

	issueLines, err := g.IssueDiscussion(id)
	if err != nil {
		return nil, err
	}

	return append(commitLines, issueLines...), nil
}

// CommentsCount sums issue comments, review comments and per-commit comment
// counts for the request. The three counters describe different objects, so
// they combine additively with no deduplication.
func (g *Github) CommentsCount(req *scm.Request) (int, error) {
	count := req.Comments + req.ReviewComments

	commits, err := g.listCommits(req.Number)
	if err != nil {
		return 0, err
	}

	for _, commit := range commits {
		count += commit.GetCommit().GetCommentCount()
	}

	return count, nil
}

func (g *Github) listCommits(id int) ([]*github.RepositoryCommit, error) {
	output := make([]*github.RepositoryCommit, 0)
	opt := &github.ListOptions{PerPage: 50}

	for {
		commits, page, err := g.client.PullRequests.ListCommits(g.ctx, g.target.Owner, g.target.Name, id, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list commits for #%d: %w", id, err)
		}

		output = append(output, commits...)

		if page.NextPage == 0 {
			break
		}

		opt.Page = page.NextPage
	}

	return output, nil
}

func formatCommitHeader(commit *github.RepositoryCommit) string {
	sha := commit.GetSHA()
	if len(sha) > 7 {
		sha = sha[:7]
	}

	author := commit.GetAuthor().GetLogin()
	if author == "" {
		author = commit.GetCommit().GetAuthor().GetName()
	}

	subject, _ := firstLine(commit.GetCommit().GetMessage())

	return fmt.Sprintf("commit %s  %s  %s", sha, author, subject)
}

func formatEntry(entry scm.DiscussionEntry) string {
	when := entry.CreatedAt.Format("2006-01-02 15:04")
	body, more := firstLine(entry.Body)

	if more {
		body += " ..."
	}

	if entry.CommitSHA != "" {
		sha := entry.CommitSHA
		if len(sha) > 7 {
			sha = sha[:7]
		}

		return fmt.Sprintf("  %s  %s  [%s]  %s", when, entry.Author, sha, body)
	}

	return fmt.Sprintf("  %s  %s  %s", when, entry.Author, body)
}

// firstLine returns the first line of s and whether more lines follow.
func firstLine(s string) (string, bool) {
	first, _, more := strings.Cut(s, "\n")
	return first, more
}
