// Package cmd wires the cobra command surface: one subcommand per
// synchronizer operation.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"github.com/criteo/git-review/config"
	"github.com/criteo/git-review/gitrepo"
	"github.com/criteo/git-review/output"
	"github.com/criteo/git-review/review"
	"github.com/criteo/git-review/scm"

	// Register the SCM providers
	_ "github.com/criteo/git-review/scm/github"
)

const (
	configFlag      = "config"
	styleFlag       = "style"
	reverseFlag     = "reverse"
	fullFlag        = "full"
	upstreamFlag    = "upstream"
	interactiveFlag = "interactive"
)

// RootCmd configures the top-level root command along with all subcommands and flags
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-review",
		Short: "Manage code review requests from the command line",
		Long: `Manage code review requests from the command line.

This tool keeps local git branch state synchronized with the remote
pull-request lifecycle: listing, inspecting, checking out, accepting,
declining and creating review requests.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper := config.Viper(cmd.Context())

			viper.BindPFlag(config.OutputStyle, cmd.Flags().Lookup(styleFlag))

			if style := viper.GetString(config.OutputStyle); !mapset.NewSet(output.AvailableStyles...).Contains(style) {
				return fmt.Errorf("invalid output style: %q (expected one of %v)", style, output.AvailableStyles)
			}

			return nil
		},
		Version: config.Version,
	}

	// Add all subcommands to the root
	rootCmd.AddCommand(
		addListCmd(),
		addShowCmd(),
		addBrowseCmd(),
		addCheckoutCmd(),
		addAcceptCmd(),
		addDeclineCmd(),
		addCreateCmd(),
		addLoginCmd(),
	)

	rootCmd.PersistentFlags().StringVar(&config.CfgFile, configFlag, "", "config file (default is git-review.yaml)")
	rootCmd.PersistentFlags().String(styleFlag, output.StyleColor, fmt.Sprintf("output style: \"%v\"", strings.Join(output.AvailableStyles, "\", \"")))

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx := config.Init(context.Background())

	if err := RootCmd().ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newSynchronizer resolves the local repository, applies git-config fallback
// settings, builds the provider bound to the resolved target repository and
// establishes the authenticated session.
func newSynchronizer(cmd *cobra.Command, toUpstream bool) (*review.Synchronizer, error) {
	ctx := cmd.Context()
	repo := gitrepo.New(ctx, "")

	applyGitConfig(ctx, repo)

	source, err := repo.SourceRepo()
	if err != nil {
		return nil, err
	}

	target := source
	if toUpstream {
		if target, err = repo.UpstreamRepo(); err != nil {
			return nil, err
		}
	}

	provider := scm.Get(ctx, "github", target)
	if err := provider.ConfigureAccess(); err != nil {
		return nil, err
	}

	styles := output.NewStyles(config.Viper(ctx).GetString(config.OutputStyle))

	return review.New(provider, repo, source, cmd.OutOrStdout(), styles), nil
}

// applyGitConfig fills unset credential settings from the local git
// configuration (github.user, github.token, github.host).
func applyGitConfig(ctx context.Context, repo *gitrepo.Repository) {
	viper := config.Viper(ctx)

	if viper.GetString(config.AuthToken) == "" {
		if token := repo.ConfigGet("github.token"); token != "" {
			viper.Set(config.AuthToken, token)
		}
	}

	if viper.GetString(config.GitHubUser) == "" {
		if user := repo.ConfigGet("github.user"); user != "" {
			viper.Set(config.GitHubUser, user)
		}
	}

	if viper.GetString(config.GitHubHost) == "github.com" {
		if host := repo.ConfigGet("github.host"); host != "" {
			viper.Set(config.GitHubHost, host)
		}
	}
}

// requestID parses the numeric request identifier argument.
func requestID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid request identifier %q", arg)
	}

	return id, nil
}
