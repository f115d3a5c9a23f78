// Package testing provides utility functions for testing purposes across multiple packages.
package testing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/criteo/git-review/config"
)

// NewContext returns a context carrying a fresh Viper instance with default
// configuration, backed by a config file in a temporary directory so that
// settings persistence stays isolated to the test.
func NewContext(t *testing.T) context.Context {
	t.Helper()

	v := config.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "git-review.yaml"))

	return config.SetViper(context.Background(), v)
}
