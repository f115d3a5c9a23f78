package cmd

import (
	"github.com/spf13/cobra"
)

// addCheckoutCmd initializes the checkout command
func addCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <id>",
		Short: "Check out a request's source branch locally",
		Long: `Check out the source branch of a review request into a local
review branch. The request does not need to be open.`,
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

			return sync.Checkout(id)
		},
	}
}
