package cmd

import (
	"github.com/spf13/cobra"
)

// addCreateCmd initializes the create command
func addCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create [--upstream]",
		Short: "Create a review request for the current branch",
		Long: `Create a review request for the current branch.

The title and body are derived from the commits unique to the current
branch relative to the target branch. After creation the working tree is
switched back to the target branch and the creation is verified against
the remote; a failed verification is reported with a non-zero exit.

With --upstream the request targets the repository behind the "upstream"
remote instead of "origin" (fork workflow).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			toUpstream, _ := cmd.Flags().GetBool(upstreamFlag)

			sync, err := newSynchronizer(cmd, toUpstream)
			if err != nil {
				return err
			}

			return sync.Create()
		},
	}

	createCmd.Flags().BoolP(upstreamFlag, "u", false, "target the upstream remote's repository")

	return createCmd
}
