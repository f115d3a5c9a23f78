// Package github implements the scm.Provider capability against the GitHub
// REST API.
package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v74/github"

	"github.com/criteo/git-review/config"
	"github.com/criteo/git-review/prompt"
	"github.com/criteo/git-review/scm"
)

func init() {
	// Register the GitHub provider factory
	scm.Register("github", New)
}

// New builds a GitHub provider bound to the given target repository, using
// the host and token from the configuration.
func New(ctx context.Context, target scm.Repo) scm.Provider {
	viper := config.Viper(ctx)

	g := &Github{
		ctx:      ctx,
		target:   target,
		prompter: prompt.NewTerminal(),
		authURL:  "https://api.github.com/authorizations",
	}

	client := github.NewClient(http.DefaultClient).WithAuthToken(viper.GetString(config.AuthToken))

	if host := viper.GetString(config.GitHubHost); host != "" && host != "github.com" {
		enterprise, err := client.WithEnterpriseURLs(
			fmt.Sprintf("https://%s/api/v3/", host),
			fmt.Sprintf("https://%s/api/uploads/", host),
		)
		if err == nil {
			client = enterprise
			g.authURL = fmt.Sprintf("https://%s/api/v3/authorizations", host)
		}
	}

	g.client = client

	return g
}

// Github is an scm.Provider backed by the GitHub REST API. The client
// session is read-shared across concurrent fetches and never mutated by
// them; only the synchronous authorization flow replaces it.
type Github struct {
	ctx      context.Context
	client   *github.Client
	target   scm.Repo
	prompter prompt.Prompter
	authURL  string
}
