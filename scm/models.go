package scm

import (
	"fmt"
	"sort"
	"time"
)

// Request states as reported by the forge.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateMerged = "merged"
)

// Repo identifies a remote repository by owner and name.
type Repo struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

func (r Repo) String() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// IsZero reports whether the repository identity could not be determined.
func (r Repo) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// Request is a transient, non-authoritative copy of a remote review unit.
// The numeric identifier is server-assigned and immutable once assigned.
type Request struct {
	Number         int       `json:"number"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	State          string    `json:"state"`
	SourceBranch   string    `json:"source_branch"`
	TargetBranch   string    `json:"target_branch"`
	SourceRepo     Repo      `json:"source_repo"`
	TargetRepo     Repo      `json:"target_repo"`
	Comments       int       `json:"comments"`
	ReviewComments int       `json:"review_comments"`
	HTMLURL        string    `json:"html_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DiscussionEntry is one comment or commit annotation within a request's
// discussion. CommitSHA is empty for issue-level and review-level comments.
type DiscussionEntry struct {
	Author    string     `json:"author"`
	Body      string     `json:"body"`
	CommitSHA string     `json:"commit_sha,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SortByDate orders requests by creation date, newest first. When reverse is
// set the order is flipped (oldest first). Sorting is applied downstream of
// any concurrent fetch, which makes no ordering guarantees of its own.
func SortByDate(requests []*Request, reverse bool) {
	sort.SliceStable(requests, func(i, j int) bool {
		if reverse {
			return requests[i].CreatedAt.Before(requests[j].CreatedAt)
		}

		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

// LatestNumber returns the maximum request identifier among the given
// requests, or 0 if there are none.
func LatestNumber(requests []*Request) int {
	var latest int
	for _, req := range requests {
		if req.Number > latest {
			latest = req.Number
		}
	}

	return latest
}
