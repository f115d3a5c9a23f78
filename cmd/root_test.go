package cmd

import (
	"testing"
)

func TestRootCmd(t *testing.T) {
	cmd := RootCmd()

	if cmd == nil {
		t.Fatal("RootCmd() returned nil")
	}

	if cmd.Use != "git-review" {
		t.Errorf("Expected Use to be 'git-review', got %s", cmd.Use)
	}

	want := []string{"list", "show", "browse", "checkout", "accept", "decline", "create", "login"}

	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := RootCmd()

	if cmd.PersistentFlags().Lookup(configFlag) == nil {
		t.Error("config flag not found")
	}

	if cmd.PersistentFlags().Lookup(styleFlag) == nil {
		t.Error("style flag not found")
	}
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := requestID(tt.arg)

			if (err != nil) != tt.wantErr {
				t.Fatalf("requestID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("requestID(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}
