// Package gitrepo reads and mutates local git state: branches, remotes,
// commit ranges and configuration. Checkout is the only working-tree
// mutation performed here.
package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/criteo/git-review/config"
	"github.com/criteo/git-review/scm"
)

// Repository is a handle on the local working copy. State derived from it is
// recomputed on demand and never cached across operations, since the working
// tree can change between commands.
type Repository struct {
	ctx context.Context
	dir string
}

// New creates a Repository rooted at dir. An empty dir uses the process
// working directory.
func New(ctx context.Context, dir string) *Repository {
	return &Repository{ctx: ctx, dir: dir}
}

// CurrentBranch returns the name of the currently checked out branch.
func (r *Repository) CurrentBranch() (string, error) {
	return r.git("rev-parse", "--abbrev-ref", "HEAD")
}

// HeadCommit returns the SHA of the current HEAD commit.
func (r *Repository) HeadCommit() (string, error) {
	return r.git("rev-parse", "HEAD")
}

// TargetBranch returns the review base branch: the configured target branch
// if set, otherwise the remote HEAD branch, falling back to "master".
func (r *Repository) TargetBranch() string {
	viper := config.Viper(r.ctx)

	if branch := viper.GetString(config.GitTargetBranch); branch != "" {
		return branch
	}

	remote := viper.GetString(config.GitRemote)
	if ref, err := r.git("symbolic-ref", "--short", "refs/remotes/"+remote+"/HEAD"); err == nil {
		// output is "origin/main" - strip the remote prefix
		if _, after, ok := strings.Cut(ref, "/"); ok {
			return after
		}
	}

	return "master"
}

// Checkout switches the working tree to the given ref.
func (r *Repository) Checkout(ref string) error {
	if _, err := r.git("checkout", ref); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", ref, err)
	}

	return nil
}

// CheckoutRequest fetches the configured remote and checks out the request's
// source branch into a dedicated local review branch. A head living in a fork
// rather than the configured remote is fetched through its pull ref. The
// request does not need to be open; this is a read-only use of remote data.
func (r *Repository) CheckoutRequest(req *scm.Request) error {
	remote := config.Viper(r.ctx).GetString(config.GitRemote)
	local := fmt.Sprintf("review_%d_%s", req.Number, req.SourceBranch)

	if _, err := r.git("fetch", remote); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}

	if _, err := r.git("checkout", "-b", local, remote+"/"+req.SourceBranch); err == nil {
		return nil
	}

	// A request from a fork has no branch in the configured remote, but the
	// forge publishes its head under pull/<number>/head.
	if _, err := r.git("fetch", remote, fmt.Sprintf("pull/%d/head", req.Number)); err == nil {
		if _, err := r.git("checkout", "-b", local, "FETCH_HEAD"); err == nil {
			return nil
		}
	}

	// The review branch may already exist from a previous checkout.
	return r.Checkout(local)
}

// RemoteURL returns the URL configured for the given remote, or an empty
// string if the remote does not exist.
func (r *Repository) RemoteURL(remote string) string {
	url, err := r.git("config", "--get", "remote."+remote+".url")
	if err != nil {
		return ""
	}

	return url
}

// ConfigGet reads a single git configuration value, returning an empty
// string when unset.
func (r *Repository) ConfigGet(key string) string {
	value, err := r.git("config", "--get", key)
	if err != nil {
		return ""
	}

	return value
}

// Commits returns the subjects of the commits unique to the current branch
// relative to the target branch, oldest first.
func (r *Repository) Commits(target string) ([]string, error) {
	out, err := r.git("log", "--reverse", "--pretty=format:%s", target+"..HEAD")
	if err != nil {
		return nil, fmt.Errorf("failed to list commits against %s: %w", target, err)
	}

	if out == "" {
		return []string{}, nil
	}

	return strings.Split(out, "\n"), nil
}

// TitleAndBody derives a request title and body from the commit range
// between the current branch and the target branch. A single commit
// contributes its subject and body directly; multiple commits produce a
// title from the branch name and a bulleted list of subjects.
func (r *Repository) TitleAndBody(target string) (string, string, error) {
	subjects, err := r.Commits(target)
	if err != nil {
		return "", "", err
	}

	switch len(subjects) {
	case 0:
		// Nothing unique to the branch, so there is no request to derive.
		return "", "", nil
	case 1:
		body, _ := r.git("log", "-1", "--pretty=format:%b")
		return subjects[0], body, nil
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		return "", "", err
	}

	return humanize(branch), bulleted(subjects), nil
}

func bulleted(subjects []string) string {
	bullets := make([]string, len(subjects))
	for i, subject := range subjects {
		bullets[i] = "- " + subject
	}

	return strings.Join(bullets, "\n")
}

// humanize turns a branch name like "fix/login-timeout" into "Fix login timeout".
func humanize(branch string) string {
	name := branch
	if _, after, ok := strings.Cut(branch, "/"); ok {
		name = after
	}

	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	if name == "" {
		return branch
	}

	first, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToUpper(first)) + name[size:]
}

func (r *Repository) git(args ...string) (string, error) {
	cmd := exec.CommandContext(r.ctx, "git", args...)
	cmd.Dir = r.dir

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return strings.TrimSpace(string(output)), nil
}
