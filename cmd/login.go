package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/criteo/git-review/config"
	"github.com/criteo/git-review/gitrepo"
	"github.com/criteo/git-review/scm"
)

// addLoginCmd initializes the login command
func addLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize git-review against the forge",
		Long: `Run the authorization flow ahead of time: exchange username and
password for a scoped OAuth token and persist it to the settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			repo := gitrepo.New(ctx, "")

			applyGitConfig(ctx, repo)

			target, err := repo.SourceRepo()
			if err != nil {
				return err
			}

			provider := scm.Get(ctx, "github", target)
			if err := provider.ConfigureAccess(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Authorized as %s\n", config.Viper(ctx).GetString(config.GitHubUser))

			return nil
		},
	}
}
