package github

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/go-github/v74/github"

	"github.com/criteo/git-review/config"
	"github.com/criteo/git-review/prompt"
	"github.com/criteo/git-review/scm"
)

// ConfigureAccess establishes an authenticated session. When no token is
// configured it runs the authorization exchange, retrying once on bad
// credentials, and persists the resulting settings. The password is only
// ever used for the exchange itself.
func (g *Github) ConfigureAccess() error {
	viper := config.Viper(g.ctx)

	if viper.GetString(config.AuthToken) != "" {
		return nil
	}

	token, err := g.authorize()
	if err != nil {
		var authErr *scm.AuthenticationError
		if !errors.As(err, &authErr) {
			return err
		}

		fmt.Fprintln(os.Stderr, authErr.Error())

		if token, err = g.authorize(); err != nil {
			return err
		}
	}

	viper.Set(config.AuthToken, token)

	if err := config.Save(g.ctx); err != nil {
		return err
	}

	g.client = g.client.WithAuthToken(token)

	return nil
}

// authorizationRequest is the payload of the token-minting exchange. The
// requested scope is "repo", enough for request CRUD and discussion reads.
type authorizationRequest struct {
	Scopes []string `json:"scopes"`
	Note   string   `json:"note"`
}

type authorizationResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// authorize prompts for username and password and exchanges them for a
// scoped OAuth token. The go-github client does not cover this endpoint, so
// the exchange is a plain HTTP call with basic auth.
func (g *Github) authorize() (string, error) {
	username, err := g.prompter.Username()
	if err != nil {
		return "", err
	}

	password, err := g.prompter.Password()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(authorizationRequest{
		Scopes: []string{"repo"},
		Note:   "git-review",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(g.ctx, http.MethodPost, g.authURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	req.SetBasicAuth(username, password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("authorization request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read authorization response: %w", err)
	}

	var parsed authorizationResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse authorization response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		config.Viper(g.ctx).Set(config.GitHubUser, username)
		return parsed.Token, nil
	case http.StatusUnauthorized:
		return "", &scm.AuthenticationError{Message: parsed.Message}
	default:
		return "", &scm.UnprocessableError{Message: parsed.Message}
	}
}

// WithPrompter replaces the credential prompter. Intended for tests and for
// callers that manage their own terminal interaction.
func (g *Github) WithPrompter(p prompt.Prompter) *Github {
	g.prompter = p
	return g
}

// WithClient replaces the underlying API client. Intended for tests.
func (g *Github) WithClient(client *github.Client) *Github {
	g.client = client
	return g
}
