package cmd

import (
	"github.com/spf13/cobra"
)

// addAcceptCmd initializes the accept command
func addAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <id>",
		Short: "Merge an open review request",
		Long: `Merge an open review request. The transition is confirmed by
re-fetching the request and checking that it reports the merged state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requestID(args[0])
			if err != nil {
				return err
			}

			sync, err := newSynchronizer(cmd, false)
			if err != nil {
				return err
			}

			return sync.Accept(id)
		},
	}
}
