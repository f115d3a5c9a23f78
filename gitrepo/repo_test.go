package gitrepo

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/criteo/git-review/scm"
	testhelper "github.com/criteo/git-review/utils/testing"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{"fix/login-timeout", "Login timeout"},
		{"feature/add_retry", "Add retry"},
		{"cleanup", "Cleanup"},
		{"a", "A"},
		{"éviter/ajout-câble", "Ajout câble"},
		{"équipe_fix", "Équipe fix"},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			if got := humanize(tt.branch); got != tt.want {
				t.Errorf("humanize(%q) = %q, want %q", tt.branch, got, tt.want)
			}
		})
	}
}

func TestTitleAndBodyEmptyRange(t *testing.T) {
	dir := initRepo(t)
	runGit(t, dir, "checkout", "-b", "feature/empty")

	repo := New(context.Background(), dir)

	title, body, err := repo.TitleAndBody("master")
	if err != nil {
		t.Fatalf("TitleAndBody() failed: %v", err)
	}

	// a branch with no commits of its own yields no title, so callers can
	// tell there is nothing to request
	if title != "" || body != "" {
		t.Errorf("Expected empty title and body, got %q / %q", title, body)
	}
}

func TestTitleAndBodyMultipleCommits(t *testing.T) {
	dir := initRepo(t)
	runGit(t, dir, "checkout", "-b", "fix/login-timeout")
	runGit(t, dir, "commit", "--allow-empty", "-m", "Add retry loop")
	runGit(t, dir, "commit", "--allow-empty", "-m", "Extend timeout")

	repo := New(context.Background(), dir)

	title, body, err := repo.TitleAndBody("master")
	if err != nil {
		t.Fatalf("TitleAndBody() failed: %v", err)
	}

	if title != "Login timeout" {
		t.Errorf("Expected branch-derived title, got %q", title)
	}

	if body != "- Add retry loop\n- Extend timeout" {
		t.Errorf("Unexpected body %q", body)
	}
}

func TestCheckoutRequestForkFallback(t *testing.T) {
	origin := initRepo(t)
	runGit(t, origin, "checkout", "-b", "feature/fork")
	runGit(t, origin, "commit", "--allow-empty", "-m", "fork change")
	runGit(t, origin, "update-ref", "refs/pull/7/head", "HEAD")
	runGit(t, origin, "checkout", "master")
	runGit(t, origin, "branch", "-D", "feature/fork")

	work := t.TempDir()
	runGit(t, work, "clone", origin, ".")

	repo := New(testhelper.NewContext(t), work)

	// the source branch only exists as a pull ref, as for a request opened
	// from a fork
	req := &scm.Request{Number: 7, SourceBranch: "feature/fork"}
	if err := repo.CheckoutRequest(req); err != nil {
		t.Fatalf("CheckoutRequest() failed: %v", err)
	}

	branch, err := repo.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch() failed: %v", err)
	}

	if branch != "review_7_feature/fork" {
		t.Errorf("Expected review branch, got %q", branch)
	}
}

// initRepo creates a repository with a single commit on master.
func initRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "review@example.com")
	runGit(t, dir, "config", "user.name", "Review Test")
	runGit(t, dir, "commit", "--allow-empty", "-m", "initial commit")
	runGit(t, dir, "branch", "-M", "master")

	return dir
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}

	return strings.TrimSpace(string(out))
}
