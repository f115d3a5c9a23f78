// Package prompt provides interactive credential prompting with masked
// password input. It is injected into the provider so that the
// authorization flow stays testable without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for forge credentials. The password is used only
// for the token exchange and is never stored.
type Prompter interface {
	Username() (string, error)
	Password() (string, error)
}

// NewTerminal returns a Prompter reading from stdin, with the password
// masked via the terminal raw mode.
func NewTerminal() Prompter {
	return &terminal{in: os.Stdin, out: os.Stderr}
}

type terminal struct {
	in  *os.File
	out io.Writer
}

func (t *terminal) Username() (string, error) {
	fmt.Fprint(t.out, "Username: ")

	line, err := bufio.NewReader(t.in).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read username: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (t *terminal) Password() (string, error) {
	fmt.Fprint(t.out, "Password: ")

	password, err := term.ReadPassword(int(t.in.Fd()))
	fmt.Fprintln(t.out)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}

// Static returns a Prompter that always answers with the given credentials.
// Intended for tests.
func Static(username, password string) Prompter {
	return &static{username: username, password: password}
}

type static struct {
	username string
	password string
}

func (s *static) Username() (string, error) { return s.username, nil }
func (s *static) Password() (string, error) { return s.password, nil }
