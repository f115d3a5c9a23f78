package cmd

import (
	"github.com/spf13/cobra"
)

// addBrowseCmd initializes the browse command
func addBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <id>",
		Short: "Open a review request in the browser",
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

			return sync.Browse(id)
		},
	}
}
