package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestAddListCmd(t *testing.T) {
	cmd := addListCmd()

	if cmd.Flags().Lookup(reverseFlag) == nil {
		t.Error("reverse flag not found")
	}

	if cmd.Flags().Lookup(interactiveFlag) == nil {
		t.Error("interactive flag not found")
	}

	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Error("Expected list to reject positional arguments")
	}
}

func TestAddShowCmd(t *testing.T) {
	cmd := addShowCmd()

	if cmd.Flags().Lookup(fullFlag) == nil {
		t.Error("full flag not found")
	}

	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("Expected show to require an identifier")
	}

	if err := cmd.Args(cmd, []string{"42"}); err != nil {
		t.Errorf("Expected show to accept one identifier, got %v", err)
	}
}

func TestAddCreateCmd(t *testing.T) {
	cmd := addCreateCmd()

	if cmd.Flags().Lookup(upstreamFlag) == nil {
		t.Error("upstream flag not found")
	}
}

func TestIdentifierCommandsRequireOneArg(t *testing.T) {
	commands := []*cobra.Command{
		addBrowseCmd(),
		addCheckoutCmd(),
		addAcceptCmd(),
		addDeclineCmd(),
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if err := cmd.Args(cmd, []string{}); err == nil {
				t.Error("Expected an identifier to be required")
			}

			if err := cmd.Args(cmd, []string{"7"}); err != nil {
				t.Errorf("Expected a single identifier to be accepted, got %v", err)
			}
		})
	}
}
