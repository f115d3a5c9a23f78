package cmd

import (
	"github.com/spf13/cobra"

	"github.com/criteo/git-review/output"
)

// addListCmd initializes the list command
func addListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list [--reverse] [--interactive]",
		Short: "List open review requests",
		Long: `List all open review requests for the repository, newest first.

With --reverse the order is flipped (oldest first). With --interactive a
picker is shown instead, and the selected request is displayed in detail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reverse, _ := cmd.Flags().GetBool(reverseFlag)
			interactive, _ := cmd.Flags().GetBool(interactiveFlag)

			sync, err := newSynchronizer(cmd, false)
			if err != nil {
				return err
			}

			if !interactive {
				return sync.List(reverse)
			}

			requests, err := sync.Requests(reverse)
			if err != nil {
				return err
			}

			choice, err := output.Pick(requests)
			if err != nil || choice == nil {
				return err
			}

			return sync.Show(choice.Number, false)
		},
	}

	listCmd.Flags().Bool(reverseFlag, false, "list oldest requests first")
	listCmd.Flags().BoolP(interactiveFlag, "i", false, "pick a request interactively")

	return listCmd
}
