package main

import (
	"testing"

	"github.com/layerlint/layerlint/internal/version"
)

func TestVersion(t *testing.T) {
	if version.Short() == "" {
		t.Error("version should not be empty")
	}

	if version.Short() != "dev" && version.Short() != "unknown" {
		t.Logf("Version is set to: %s", version.Short())
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "layerlint" {
		t.Errorf("expected Use to be 'layerlint', got %s", rootCmd.Use)
	}

	found := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		found[cmd.Name()] = true
	}
	for _, name := range []string{"check", "version"} {
		if !found[name] {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}
