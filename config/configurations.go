// Package config provides viper-backed configuration for git-review,
// including the persisted credential settings (forge host, username and
// OAuth token).
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	CfgFile string

	// Version is dynamically set at build time using the -X linker flag.
	// Default value is used for testing and development builds.
	Version = "dev"
)

const (
	GitHubHost = "github.host"
	GitHubUser = "github.user"
	AuthToken  = "auth-token"

	GitRemote       = "git.remote"
	GitUpstream     = "git.upstream"
	GitTargetBranch = "git.target-branch"

	OutputStyle        = "output.style"
	RequestConcurrency = "requests.concurrency"

	configName = "git-review"
)

// Init loads the configuration file and environment variables into a fresh
// Viper instance, saved into the returned context. Settings are loaded once
// here and mutated only by the authorization flow.
func Init(ctx context.Context) context.Context {
	v := New()

	if CfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(CfgFile)
	} else {
		v.SetConfigName(configName)

		// Search in the working directory
		v.AddConfigPath(".")

		// Search in the user's config directory
		if usrConfig, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(usrConfig)
		}

		// Prefer XDG_CONFIG_HOME from the command line, falling back to ~/.config
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			v.AddConfigPath(xdgConfigHome)
		} else if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config"))
		}
	}

	// A missing config file is fine - settings may come from git config or env.
	_ = v.ReadInConfig()

	return SetViper(ctx, v)
}

// Save persists the current settings back to disk. It is called exactly once
// per token acquisition, from the (synchronous) authorization flow, and must
// never race with concurrent fetches.
func Save(ctx context.Context) error {
	v := Viper(ctx)

	if err := v.WriteConfig(); err == nil {
		return nil
	}

	// No config file existed yet - create one in the user config directory.
	dir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("failed to locate config directory: %w", err)
	}

	path := filepath.Join(dir, configName+".yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write settings to %s: %w", path, err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(GitHubHost, "github.com")
	v.SetDefault(GitRemote, "origin")
	v.SetDefault(GitUpstream, "upstream")
	v.SetDefault(OutputStyle, "color")
	v.SetDefault(RequestConcurrency, 8)
}
