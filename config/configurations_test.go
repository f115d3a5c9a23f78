package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	v := New()

	tests := map[string]string{
		GitHubHost:  "github.com",
		GitRemote:   "origin",
		GitUpstream: "upstream",
		OutputStyle: "color",
	}

	for key, want := range tests {
		if got := v.GetString(key); got != want {
			t.Errorf("Expected default %s=%q, got %q", key, want, got)
		}
	}

	if v.GetInt(RequestConcurrency) <= 0 {
		t.Error("Expected a positive default concurrency")
	}
}

func TestViperContextRoundTrip(t *testing.T) {
	v := New()
	v.Set(GitHubUser, "octocat")

	ctx := SetViper(context.Background(), v)

	if got := Viper(ctx).GetString(GitHubUser); got != "octocat" {
		t.Errorf("Expected octocat from context viper, got %q", got)
	}
}

func TestSaveWritesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "git-review.yaml")

	v := New()
	v.SetConfigFile(path)
	v.Set(AuthToken, "minted-token")

	ctx := SetViper(context.Background(), v)

	if err := Save(ctx); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected settings file to exist: %v", err)
	}

	if len(content) == 0 {
		t.Error("Expected settings file to have content")
	}
}

func TestInitReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	if err := os.WriteFile(path, []byte("auth-token: from-file\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	CfgFile = path
	t.Cleanup(func() { CfgFile = "" })

	ctx := Init(context.Background())

	if got := Viper(ctx).GetString(AuthToken); got != "from-file" {
		t.Errorf("Expected token from config file, got %q", got)
	}
}
