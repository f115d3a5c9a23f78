package scm

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a remote object as absent. It is mapped to nil/false at
// the provider edges and never surfaces as a crash.
var ErrNotFound = errors.New("remote object not found")

// ErrAmbiguousRepository is returned when the repository identity cannot be
// determined from the configured remotes. Fatal for any operation that
// needs it.
var ErrAmbiguousRepository = errors.New("cannot determine repository identity from remote URL")

// AuthenticationError reports bad credentials during the token exchange.
// Recoverable by re-prompting; the current attempt aborts.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// UnprocessableError reports an unexpected response from the authorization
// endpoint. Fatal: the caller prints the server's message and exits non-zero.
type UnprocessableError struct {
	Message string
}

func (e *UnprocessableError) Error() string {
	return fmt.Sprintf("unprocessable authorization response: %s", e.Message)
}

// VerificationError reports that the post-creation check found no matching
// higher-numbered request. Reported, never retried automatically.
type VerificationError struct {
	Title string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("could not verify creation of request titled %q", e.Title)
}
