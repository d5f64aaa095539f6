package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersion(t *testing.T) {
	assert.Equal(t, "dev", buildVersion())

	commit = "abcdef1234567890"
	date = "2026-01-01"
	t.Cleanup(func() {
		commit = "none"
		date = "unknown"
	})

	assert.Equal(t, "dev (abcdef1, 2026-01-01)", buildVersion())
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"resolve", "head", "remotes", "config", "tags", "default-branch"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotEqual(t, cmd, sub, name)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"git-dir", "work-tree", "root"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}
