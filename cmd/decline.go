package cmd

import (
	"github.com/spf13/cobra"
)

// addDeclineCmd initializes the decline command
func addDeclineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decline <id>",
		Short: "Close an open review request without merging",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requestID(args[0])
			if err != nil {
				return err
			}

			sync, err := newSynchronizer(cmd, false)
			if err != nil {
				return err
			}

			return sync.Decline(id)
		},
	}
}
