package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-github/v74/github"

	"github.com/criteo/git-review/prompt"
	"github.com/criteo/git-review/scm"
	testhelper "github.com/criteo/git-review/utils/testing"
)

// newTestGithub creates a Github provider configured to use a test server
func newTestGithub(t *testing.T, server *httptest.Server) *Github {
	t.Helper()

	client := github.NewClient(http.DefaultClient)
	client.BaseURL, _ = client.BaseURL.Parse(server.URL + "/")

	return &Github{
		ctx:      testhelper.NewContext(t),
		client:   client,
		target:   scm.Repo{Owner: "test-org", Name: "test-repo"},
		prompter: prompt.Static("octocat", "secret"),
		authURL:  server.URL + "/authorizations",
	}
}

// writeJSON encodes v to the response writer
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("Failed to encode response: %v", err)
	}
}

// decodeBody decodes the request body into v
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// mockRepo builds a repository identity with the given owner
func mockRepo(owner string) scm.Repo {
	return scm.Repo{Owner: owner, Name: "test-repo"}
}

// mockRequest builds a GitHub pull request API object
func mockRequest(number int, title, state, branch, created string, merged bool) map[string]any {
	return map[string]any{
		"number":          number,
		"title":           title,
		"body":            "body of " + title,
		"state":           state,
		"merged":          merged,
		"comments":        0,
		"review_comments": 0,
		"created_at":      created,
		"updated_at":      created,
		"html_url":        "https://github.com/test-org/test-repo/pull/42",
		"head": map[string]any{
			"ref": branch,
			"repo": map[string]any{
				"name":  "test-repo",
				"owner": map[string]any{"login": "test-org"},
			},
		},
		"base": map[string]any{
			"ref": "master",
			"repo": map[string]any{
				"name":  "test-repo",
				"owner": map[string]any{"login": "test-org"},
			},
		},
	}
}

func TestNew(t *testing.T) {
	ctx := testhelper.NewContext(t)
	provider := New(ctx, scm.Repo{Owner: "test-org", Name: "test-repo"})

	if provider == nil {
		t.Fatal("Expected non-nil provider")
	}

	g, ok := provider.(*Github)
	if !ok {
		t.Fatalf("Expected *Github provider, got %T", provider)
	}

	if g.target.Owner != "test-org" || g.target.Name != "test-repo" {
		t.Errorf("Expected test-org/test-repo, got %v", g.target)
	}

	if g.authURL != "https://api.github.com/authorizations" {
		t.Errorf("Unexpected auth URL %q", g.authURL)
	}
}

func TestGithubProviderRegistration(t *testing.T) {
	ctx := testhelper.NewContext(t)
	provider := scm.Get(ctx, "github", scm.Repo{Owner: "test-org", Name: "test-repo"})

	if _, ok := provider.(*Github); !ok {
		t.Errorf("Expected *Github provider, got %T", provider)
	}
}

func TestParseRequestMergedState(t *testing.T) {
	merged := github.Ptr(true)
	pr := &github.PullRequest{
		Number: github.Ptr(7),
		State:  github.Ptr("closed"),
		Merged: merged,
	}

	if req := parseRequest(pr); req.State != scm.StateMerged {
		t.Errorf("Expected merged state, got %s", req.State)
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{})
	}))
	defer server.Close()

	g := newTestGithub(t, server)

	ctx, cancel := context.WithCancel(g.ctx)
	cancel()
	g.ctx = ctx

	if _, err := g.CurrentRequests(); err == nil {
		t.Error("Expected error from cancelled context")
	}
}
