package cmd

import (
	"github.com/spf13/cobra"
)

// addShowCmd initializes the show command
func addShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <id> [--full]",
		Short: "Show details of one review request",
		Long: `Show the details of one open review request.

With --full the aggregated discussion is printed as well: the commit
threads first, then the issue and review comments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requestID(args[0])
			if err != nil {
				return err
			}

			full, _ := cmd.Flags().GetBool(fullFlag)

			sync, err := newSynchronizer(cmd, false)
			if err != nil {
				return err
			}

			return sync.Show(id, full)
		},
	}

	showCmd.Flags().BoolP(fullFlag, "f", false, "include the full discussion")

	return showCmd
}
